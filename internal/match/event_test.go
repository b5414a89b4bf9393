package match

import (
	"encoding/json"
	"testing"
)

func TestEventKindString(t *testing.T) {
	cases := map[EventKind]string{
		EventUnitAttack: "unit_attack",
		EventGameEnded:  "game_ended",
		EventKind(200):   "unknown",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}

func TestEmitAssignsSequenceAndTick(t *testing.T) {
	e := NewEmitter(7)
	e.Emit(EventCardDrawn, CardDrawnPayload{Side: 0, CardID: "fireball"})
	e.Emit(EventManaRecovered, ManaRecoveredPayload{Side: 0, NewMana: 5})

	events := e.Events()
	if len(events) != 2 {
		t.Fatalf("len = %d, want 2", len(events))
	}
	if events[0].Sequence != 0 || events[1].Sequence != 1 {
		t.Fatalf("sequences = %d, %d, want 0, 1", events[0].Sequence, events[1].Sequence)
	}
	if events[0].Tick != 7 || events[1].Tick != 7 {
		t.Fatalf("tick not carried through: %d, %d", events[0].Tick, events[1].Tick)
	}
	if events[0].Version != EventVersion {
		t.Fatalf("Version = %d, want %d", events[0].Version, EventVersion)
	}

	var payload CardDrawnPayload
	if err := json.Unmarshal(events[0].Payload, &payload); err != nil {
		t.Fatalf("payload did not round-trip: %v", err)
	}
	if payload.CardID != "fireball" {
		t.Fatalf("CardID = %q, want fireball", payload.CardID)
	}
}

func TestEmptyEmitterReturnsEmptySlice(t *testing.T) {
	e := NewEmitter(1)
	if len(e.Events()) != 0 {
		t.Fatal("fresh emitter should have no events")
	}
}
