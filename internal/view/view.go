// Package view derives the one sanitized projection the core exposes
// outward: a per-viewer copy of the match state in which
// the opponent's concealed zones are redacted. It is a pure function of
// (state, viewer index); it never mutates the authoritative state and it
// is the only package outside internal/match allowed to read a
// match.State field by field for presentation purposes.
package view

import "laneclash/internal/match"

// Unit is the sanitized, presentation-facing view of a match.Unit.
type Unit struct {
	InstanceID       string         `json:"instanceId"`
	CardID           string         `json:"cardId"`
	Life             int            `json:"life"`
	MaxLife          int            `json:"maxLife"`
	Attack           int            `json:"attack"`
	Lane             int            `json:"lane"`
	Shield           int            `json:"shield"`
	Gauge            float64        `json:"gauge"`
	AttackIntervalMs int            `json:"attackIntervalMs"`
	Status           map[string]int `json:"status,omitempty"`
	Halted           bool           `json:"halted"`
	Sealed           bool           `json:"sealed"`
}

// Player is the sanitized view of one side. For the viewer's own side every
// field is populated; for the opponent's side Hand is replaced by a
// same-length slice of empty placeholders and Deck by its length only.
type Player struct {
	PlayerID      string   `json:"playerId"`
	HeroID        string   `json:"heroId"`
	Life          int      `json:"life"`
	MaxLife       int      `json:"maxLife"`
	Mana          float64  `json:"mana"`
	MaxMana       float64  `json:"maxMana"`
	BlueMana      float64  `json:"blueMana"`
	AbilityPoints int      `json:"abilityPoints"`
	HandSize      int      `json:"handSize"`
	Hand          []string `json:"hand,omitempty"` // opponent's side gets same-length empty placeholders
	DeckSize      int      `json:"deckSize"`
	Graveyard     []string `json:"graveyard"`
	EXSize        int      `json:"exSize"`
	EX            []string `json:"ex,omitempty"` // populated only for the viewer's own side
	Units         []Unit   `json:"units"`
}

// ActiveResponse is the sanitized view of the shared priority window. The
// stack's card identifiers are public once played, so nothing is redacted.
type ActiveResponse struct {
	Active   bool            `json:"active"`
	Priority int             `json:"priority"`
	TimerMs  int             `json:"timerMs"`
	Stack    []match.AREntry `json:"stack"`
}

// State is the complete sanitized projection handed to one viewer.
type State struct {
	MatchID string         `json:"matchId"`
	Tick    uint64         `json:"tick"`
	Phase   string         `json:"phase"`
	Viewer  int            `json:"viewer"`
	Players [2]Player      `json:"players"`
	AR      ActiveResponse `json:"activeResponse"`
	Winner  int            `json:"winner"`
}

func phaseName(p match.Phase) string {
	switch p {
	case match.PhaseMulligan:
		return "mulligan"
	case match.PhasePlaying:
		return "playing"
	case match.PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Sanitize builds the State a single viewer is allowed to see: the
// viewer's own hand and EX in full, the opponent's hand reduced to its
// length and the opponent's deck reduced to its length.
func Sanitize(st *match.State, viewer int) State {
	out := State{
		MatchID: st.MatchID,
		Tick:    st.Tick,
		Phase:   phaseName(st.Phase),
		Viewer:  viewer,
		Winner:  st.Winner,
		AR: ActiveResponse{
			Active:   st.AR.Active,
			Priority: st.AR.Priority,
			TimerMs:  st.AR.TimerMs,
			Stack:    st.AR.Stack,
		},
	}
	for side := 0; side < 2; side++ {
		out.Players[side] = sanitizePlayer(&st.Players[side], side == viewer)
	}
	return out
}

func sanitizePlayer(p *match.PlayerState, isViewer bool) Player {
	out := Player{
		PlayerID:      p.PlayerID,
		HeroID:        p.Hero.ID,
		Life:          p.Life,
		MaxLife:       p.MaxLife,
		Mana:          p.Mana,
		MaxMana:       p.MaxMana,
		BlueMana:      p.BlueMana,
		AbilityPoints: p.AbilityPoints,
		HandSize:      len(p.Hand),
		DeckSize:      len(p.Deck),
		Graveyard:     append([]string(nil), p.Graveyard...),
		EXSize:        len(p.EX),
	}
	if isViewer {
		out.Hand = append([]string(nil), p.Hand...)
		out.EX = append([]string(nil), p.EX...)
	} else {
		out.Hand = make([]string, len(p.Hand))
	}
	for lane := 0; lane < 3; lane++ {
		u, ok := p.Field[lane]
		if !ok {
			continue
		}
		out.Units = append(out.Units, sanitizeUnit(u))
	}
	return out
}

func sanitizeUnit(u *match.Unit) Unit {
	status := make(map[string]int, len(u.Status)+len(u.TempStatus))
	for k, v := range u.Status {
		status[k] = v
	}
	for k, v := range u.TempStatus {
		status[k] = v
	}
	return Unit{
		InstanceID:       u.InstanceID,
		CardID:           u.SourceCardID,
		Life:             u.Life,
		MaxLife:          u.MaxLife,
		Attack:           u.EffectiveAttack(),
		Lane:             u.Lane,
		Shield:           u.Shield,
		Gauge:            u.Gauge,
		AttackIntervalMs: u.AttackIntervalMs,
		Status:           status,
		Halted:           u.HaltMs > 0,
		Sealed:           u.Sealed,
	}
}
