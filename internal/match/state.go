// Package match defines the pure value types of the simulation's data
// model: the match state, player state, unit state, and the
// Active Response record. Cross-references are expressed only through
// stable identifiers — player index, lane index, unit instance
// id, card id — never through parent back-pointers.
package match

import (
	"time"

	"laneclash/internal/hero"
	"laneclash/internal/rng"
)

// Phase is the coarse match lifecycle state.
type Phase uint8

const (
	PhaseMulligan Phase = iota
	PhasePlaying
	PhaseEnded
)

// OpeningHandSize is the number of cards dealt to each side before mulligan.
const OpeningHandSize = 5

// InitialLife is both the starting and the default maximum hero life.
const InitialLife = 30

// MaxAbilityPoints caps the ability-point counter.
const MaxAbilityPoints = 10

// MaxEXCapacity bounds the EX pocket.
const MaxEXCapacity = 2

// NoWinner marks State.Winner when the match has not ended.
const NoWinner = -1

// State is the authoritative, value-oriented representation of one match.
// The tick counter increments once per engine call; it is
// not a wall-clock measure.
type State struct {
	MatchID       string
	Tick          uint64
	Phase         Phase
	AR            ActiveResponse
	Players       [2]PlayerState
	Seed          int64
	StartedAt     time.Time
	LastUpdatedAt time.Time
	Winner        int // NoWinner until Phase == PhaseEnded
	EndCause      string

	// RNG is the single deterministic random source shared by every part
	// of the engine that needs one: deck shuffles, revenge re-insertion,
	// "choose a random enemy" effects. Never read directly by presentation.
	RNG *rng.Source `json:"-"`
}

// Opponent returns the other player index (0<->1).
func Opponent(side int) int { return 1 - side }

// PlayerState is one side's complete game state.
type PlayerState struct {
	PlayerID string
	Hero     hero.Hero

	Life    int
	MaxLife int

	Mana     float64
	MaxMana  float64
	BlueMana float64

	AbilityPoints int

	Hand      []string // card identifiers, possibly overlaid
	Deck      []string // top is index 0
	Graveyard []string // base card identifiers, arrival order
	EX        []string // capacity MaxEXCapacity

	Field map[int]*Unit // lane -> unit, sparse

	// Counters tracks per-match trigger bookkeeping, e.g.
	// "action_cards_played", "friendly_unit_enters".
	Counters map[string]int

	// LaneLock maps a locked lane to its remaining lock duration in ms.
	LaneLock map[int]int
}

// NewPlayerState builds an empty player state for a fresh match.
func NewPlayerState(playerID string, h hero.Hero, deck []string, maxMana float64) PlayerState {
	return PlayerState{
		PlayerID:  playerID,
		Hero:      h,
		Life:      InitialLife,
		MaxLife:   InitialLife,
		Mana:      minFloat(4, maxMana),
		MaxMana:   maxMana,
		BlueMana:  0,
		Hand:      make([]string, 0, OpeningHandSize),
		Deck:      append([]string(nil), deck...),
		Graveyard: nil,
		EX:        nil,
		Field:     make(map[int]*Unit, 3),
		Counters:  make(map[string]int),
		LaneLock:  make(map[int]int),
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// LiveUnits returns the player's units in ascending lane order. Callers
// that iterate targets while units may be destroyed mid-iteration must
// snapshot this slice first; the field itself may be mutated underneath
// a held reference.
func (p *PlayerState) LiveUnits() []*Unit {
	out := make([]*Unit, 0, len(p.Field))
	for lane := 0; lane < 3; lane++ {
		if u, ok := p.Field[lane]; ok {
			out = append(out, u)
		}
	}
	return out
}

// FindUnit locates a unit by instance id across this player's three lanes,
// or returns nil. There is no id->unit index; the field is small enough
// that a linear scan is simpler and cheap.
func (p *PlayerState) FindUnit(instanceID string) *Unit {
	for lane := 0; lane < 3; lane++ {
		if u, ok := p.Field[lane]; ok && u.InstanceID == instanceID {
			return u
		}
	}
	return nil
}

// ContainsInOrigin reports whether cardID is present in hand or EX,
// matching the exact (possibly overlaid) identifier string.
func (p *PlayerState) ContainsInOrigin(fromEX bool, cardID string) bool {
	origin := p.Hand
	if fromEX {
		origin = p.EX
	}
	for _, id := range origin {
		if id == cardID {
			return true
		}
	}
	return false
}

// RemoveFromOrigin deletes exactly one occurrence of cardID from hand or EX,
// returning true if found. Matches the exact (possibly overlaid) string.
func (p *PlayerState) RemoveFromOrigin(fromEX bool, cardID string) bool {
	origin := &p.Hand
	if fromEX {
		origin = &p.EX
	}
	for i, id := range *origin {
		if id == cardID {
			*origin = append((*origin)[:i], (*origin)[i+1:]...)
			return true
		}
	}
	return false
}

// DrawOne moves the top deck card to hand, returning the drawn id and
// whether a card was available.
func (p *PlayerState) DrawOne() (string, bool) {
	if len(p.Deck) == 0 {
		return "", false
	}
	card := p.Deck[0]
	p.Deck = p.Deck[1:]
	p.Hand = append(p.Hand, card)
	return card, true
}

// AppendGraveyard appends a base card identifier to the graveyard.
func (p *PlayerState) AppendGraveyard(baseCardID string) {
	p.Graveyard = append(p.Graveyard, baseCardID)
}

// AppendEX appends cardID to the EX pocket if capacity allows, returning
// whether it was added.
func (p *PlayerState) AppendEX(cardID string) bool {
	if len(p.EX) >= MaxEXCapacity {
		return false
	}
	p.EX = append(p.EX, cardID)
	return true
}

// InsertDeckAt inserts cardID into the deck at idx (clamped into range),
// used by the revenge recycling path.
func (p *PlayerState) InsertDeckAt(idx int, cardID string) {
	if idx < 0 {
		idx = 0
	}
	if idx > len(p.Deck) {
		idx = len(p.Deck)
	}
	p.Deck = append(p.Deck, "")
	copy(p.Deck[idx+1:], p.Deck[idx:])
	p.Deck[idx] = cardID
}

// CreditAbilityPoints adds n ability points, capped at MaxAbilityPoints.
func (p *PlayerState) CreditAbilityPoints(n int) {
	p.AbilityPoints += n
	if p.AbilityPoints > MaxAbilityPoints {
		p.AbilityPoints = MaxAbilityPoints
	}
	if p.AbilityPoints < 0 {
		p.AbilityPoints = 0
	}
}

// SpendMana deducts cost, drawing from blue mana first, then regular mana.
// Caller must have already validated sufficiency.
func (p *PlayerState) SpendMana(cost float64) {
	fromBlue := minFloat(p.BlueMana, cost)
	p.BlueMana -= fromBlue
	cost -= fromBlue
	p.Mana -= cost
	if p.Mana < 0 {
		p.Mana = 0
	}
	if p.BlueMana < 0 {
		p.BlueMana = 0
	}
}

// AvailableMana is the total mana (blue + regular) a player may spend.
func (p *PlayerState) AvailableMana() float64 {
	return p.Mana + p.BlueMana
}
