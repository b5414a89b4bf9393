package match

import "encoding/json"

// EventKind enumerates the typed, append-only event stream the engine emits.
// This is the wire-level replication contract: new kinds
// must be additive, and unknown kinds must be safely ignorable by
// consumers.
type EventKind uint8

const (
	EventUnknown EventKind = iota
	EventUnitAttack
	EventUnitDamage
	EventUnitDestroyed
	EventPlayerDamage
	EventManaRecovered
	EventCardPlayed
	EventCardDrawn
	EventCardToGraveyard
	EventActiveResponseStarted
	EventActiveResponseResolved
	EventHeroArtInvoked
	EventGameEnded
)

// EventVersion lets consumers detect payload schema drift across releases.
const EventVersion uint8 = 1

func (k EventKind) String() string {
	switch k {
	case EventUnitAttack:
		return "unit_attack"
	case EventUnitDamage:
		return "unit_damage"
	case EventUnitDestroyed:
		return "unit_destroyed"
	case EventPlayerDamage:
		return "player_damage"
	case EventManaRecovered:
		return "mana_recovered"
	case EventCardPlayed:
		return "card_played"
	case EventCardDrawn:
		return "card_drawn"
	case EventCardToGraveyard:
		return "card_sent_to_graveyard"
	case EventActiveResponseStarted:
		return "active_response_started"
	case EventActiveResponseResolved:
		return "active_response_resolved"
	case EventHeroArtInvoked:
		return "hero_art_invoked"
	case EventGameEnded:
		return "game_ended"
	default:
		return "unknown"
	}
}

// Event is one emission in the ordered event stream an engine call returns.
type Event struct {
	Version  uint8     `json:"version"`
	Kind     EventKind `json:"kind"`
	Tick     uint64    `json:"tick"`
	Sequence uint64    `json:"sequence"`
	Payload  []byte    `json:"payload"`
}

// --- typed payloads -------------------------------------------------------

type UnitAttackPayload struct {
	AttackerSide int    `json:"attackerSide"`
	AttackerID   string `json:"attackerId"`
	DefenderKind string `json:"defenderKind"` // "unit" or "hero"
	DefenderSide int    `json:"defenderSide"`
	DefenderID   string `json:"defenderId,omitempty"`
	Damage       int    `json:"damage"`
}

type UnitDamagePayload struct {
	Side    int    `json:"side"`
	UnitID  string `json:"unitId"`
	Damage  int    `json:"damage"`
	NewLife int    `json:"newLife"`
}

type UnitDestroyedPayload struct {
	Side     int    `json:"side"`
	UnitID   string `json:"unitId"`
	CardID   string `json:"cardId"`
	KillerID string `json:"killerId,omitempty"`
	Revenged bool   `json:"revenged"`
	Reason   string `json:"reason"`
}

type PlayerDamagePayload struct {
	Side    int `json:"side"`
	Damage  int `json:"damage"`
	NewLife int `json:"newLife"`
}

type ManaRecoveredPayload struct {
	Side    int     `json:"side"`
	NewMana float64 `json:"newMana"`
}

type CardPlayedPayload struct {
	Side   int    `json:"side"`
	CardID string `json:"cardId"`
	Origin string `json:"origin"` // "hand" or "ex"
	Lane   int    `json:"lane,omitempty"`
}

type CardDrawnPayload struct {
	Side   int    `json:"side"`
	CardID string `json:"cardId"`
}

type CardToGraveyardPayload struct {
	Side   int    `json:"side"`
	CardID string `json:"cardId"`
	Reason string `json:"reason"`
}

type ActiveResponseStartedPayload struct {
	BySide int    `json:"bySide"`
	CardID string `json:"cardId"`
}

type ActiveResponseResolvedPayload struct {
	Stack []AREntry `json:"stack"`
}

type HeroArtInvokedPayload struct {
	Side   int    `json:"side"`
	HeroID string `json:"heroId"`
}

type GameEndedPayload struct {
	Winner int    `json:"winner"`
	Cause  string `json:"cause"`
}

// EncodePayload marshals a payload struct to JSON. A marshal failure
// (impossible for these types, but handled defensively anyway) yields a
// nil payload rather than panicking.
func EncodePayload(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}

// Emitter accumulates events for a single engine call, assigning each a
// monotonically increasing sequence number.
type Emitter struct {
	tick  uint64
	seq   uint64
	items []Event
}

// NewEmitter starts a fresh event buffer for the given tick.
func NewEmitter(tick uint64) *Emitter {
	return &Emitter{tick: tick}
}

// Emit appends one event with the given kind and payload.
func (e *Emitter) Emit(kind EventKind, payload interface{}) {
	e.items = append(e.items, Event{
		Version:  EventVersion,
		Kind:     kind,
		Tick:     e.tick,
		Sequence: e.seq,
		Payload:  EncodePayload(payload),
	})
	e.seq++
}

// Events returns the accumulated, chronologically ordered event slice.
func (e *Emitter) Events() []Event {
	return e.items
}
