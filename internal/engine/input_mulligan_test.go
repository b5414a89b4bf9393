package engine

import (
	"testing"

	"laneclash/internal/hero"
	"laneclash/internal/match"
)

func freshMulliganState() *match.State {
	h1 := hero.Table["ember_warden"]
	h2 := hero.Table["verdant_keeper"]
	cat := testCatalog()
	return InitialState("m1", "alice", "bob", h1, h2, testDeck(20, "ember_scout"), testDeck(20, "verdant_sprout"), 11, cat)
}

func TestApplyMulliganKeepsNamedCardsOnly(t *testing.T) {
	st := freshMulliganState()
	keep := st.Players[0].Hand[0]

	applyMulligan(st, &Input{Kind: InputMulligan, Player: 0, KeptCards: []string{keep}})

	p := &st.Players[0]
	if len(p.Hand) != match.OpeningHandSize {
		t.Fatalf("Hand size after mulligan = %d, want %d", len(p.Hand), match.OpeningHandSize)
	}
	if p.Hand[0] != keep {
		t.Fatalf("kept card should stay first in hand, got %q", p.Hand[0])
	}
	if p.Counters["mulligan_used"] != 1 {
		t.Fatal("mulligan_used counter should be set after mulligan")
	}
}

func TestApplyMulliganSecondAttemptIsNoOp(t *testing.T) {
	st := freshMulliganState()
	applyMulligan(st, &Input{Kind: InputMulligan, Player: 0, KeptCards: nil})
	handAfterFirst := append([]string(nil), st.Players[0].Hand...)

	applyMulligan(st, &Input{Kind: InputMulligan, Player: 0, KeptCards: []string{"ember_scout"}})

	if len(st.Players[0].Hand) != len(handAfterFirst) {
		t.Fatal("second mulligan attempt should not change hand size")
	}
}

func TestApplyMulliganTransitionsPhaseOnceBothSidesDone(t *testing.T) {
	st := freshMulliganState()
	applyMulligan(st, &Input{Kind: InputMulligan, Player: 0})
	if st.Phase != match.PhaseMulligan {
		t.Fatal("phase should stay Mulligan until both sides have mulliganed")
	}
	applyMulligan(st, &Input{Kind: InputMulligan, Player: 1})
	if st.Phase != match.PhasePlaying {
		t.Fatal("phase should flip to Playing once both sides have mulliganed")
	}
}

func TestApplyInputRejectsMulliganOutsideMulliganPhase(t *testing.T) {
	st := freshMulliganState()
	st.Phase = match.PhasePlaying

	var reasons []string
	old := Diagnose
	Diagnose = func(r string) { reasons = append(reasons, r) }
	defer func() { Diagnose = old }()

	ApplyInput(st, testCatalog(), match.NewEmitter(0), &Input{Kind: InputMulligan, Player: 0})
	if len(reasons) != 1 || reasons[0] != ReasonIllegalPhase {
		t.Fatalf("reasons = %v, want [%s]", reasons, ReasonIllegalPhase)
	}
}

func TestApplyInputNilIsNoOp(t *testing.T) {
	st := freshMulliganState()
	before := st.Tick
	ApplyInput(st, testCatalog(), match.NewEmitter(0), nil)
	if st.Tick != before {
		t.Fatal("nil input must not mutate state")
	}
}
