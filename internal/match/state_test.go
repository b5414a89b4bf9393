package match

import (
	"testing"

	"laneclash/internal/hero"
)

func TestOpponent(t *testing.T) {
	if Opponent(0) != 1 || Opponent(1) != 0 {
		t.Fatal("Opponent must swap 0<->1")
	}
}

func TestNewPlayerStateCapsOpeningMana(t *testing.T) {
	p := NewPlayerState("alice", hero.Hero{ID: "ember_warden"}, []string{"a", "b"}, 2)
	if p.Mana != 2 {
		t.Fatalf("Mana = %v, want 2 (capped by MaxMana)", p.Mana)
	}

	p2 := NewPlayerState("bob", hero.Hero{ID: "ember_warden"}, nil, 10)
	if p2.Mana != 4 {
		t.Fatalf("Mana = %v, want 4 (opening default)", p2.Mana)
	}
	if len(p2.Deck) != 0 {
		t.Fatalf("Deck copy should be empty, got %d", len(p2.Deck))
	}
}

func TestDrawOne(t *testing.T) {
	p := NewPlayerState("alice", hero.Hero{}, []string{"a", "b", "c"}, 10)

	card, ok := p.DrawOne()
	if !ok || card != "a" {
		t.Fatalf("DrawOne() = (%q, %v), want (a, true)", card, ok)
	}
	if len(p.Deck) != 2 || len(p.Hand) != 1 {
		t.Fatalf("unexpected deck/hand sizes: %d/%d", len(p.Deck), len(p.Hand))
	}

	p.Deck = nil
	if _, ok := p.DrawOne(); ok {
		t.Fatal("DrawOne on empty deck should report false")
	}
}

func TestRemoveFromOrigin(t *testing.T) {
	p := NewPlayerState("alice", hero.Hero{}, nil, 10)
	p.Hand = []string{"fireball", "ember_scout"}
	p.EX = []string{"rune"}

	if !p.RemoveFromOrigin(false, "fireball") {
		t.Fatal("expected fireball removal from hand to succeed")
	}
	if len(p.Hand) != 1 || p.Hand[0] != "ember_scout" {
		t.Fatalf("Hand = %v, want [ember_scout]", p.Hand)
	}
	if p.RemoveFromOrigin(false, "fireball") {
		t.Fatal("second removal of an already-removed card should fail")
	}
	if !p.RemoveFromOrigin(true, "rune") {
		t.Fatal("expected rune removal from EX to succeed")
	}
}

func TestAppendEXRespectsCapacity(t *testing.T) {
	p := NewPlayerState("alice", hero.Hero{}, nil, 10)
	for i := 0; i < MaxEXCapacity; i++ {
		if !p.AppendEX("card") {
			t.Fatalf("AppendEX should succeed within capacity at i=%d", i)
		}
	}
	if p.AppendEX("overflow") {
		t.Fatal("AppendEX should fail once EX is at capacity")
	}
}

func TestInsertDeckAtClampsRange(t *testing.T) {
	p := NewPlayerState("alice", hero.Hero{}, []string{"a", "b"}, 10)

	p.InsertDeckAt(-5, "x")
	if p.Deck[0] != "x" {
		t.Fatalf("negative index should clamp to front, got %v", p.Deck)
	}

	p.InsertDeckAt(100, "y")
	if p.Deck[len(p.Deck)-1] != "y" {
		t.Fatalf("oversized index should clamp to end, got %v", p.Deck)
	}
}

func TestCreditAbilityPointsCaps(t *testing.T) {
	p := NewPlayerState("alice", hero.Hero{}, nil, 10)
	p.CreditAbilityPoints(MaxAbilityPoints + 5)
	if p.AbilityPoints != MaxAbilityPoints {
		t.Fatalf("AbilityPoints = %d, want capped at %d", p.AbilityPoints, MaxAbilityPoints)
	}
	p.CreditAbilityPoints(-100)
	if p.AbilityPoints != 0 {
		t.Fatalf("AbilityPoints = %d, want floored at 0", p.AbilityPoints)
	}
}

func TestSpendManaDrawsBlueFirst(t *testing.T) {
	p := NewPlayerState("alice", hero.Hero{}, nil, 10)
	p.Mana = 3
	p.BlueMana = 2

	p.SpendMana(4)

	if p.BlueMana != 0 {
		t.Fatalf("BlueMana = %v, want 0 (spent first)", p.BlueMana)
	}
	if p.Mana != 1 {
		t.Fatalf("Mana = %v, want 1 (remaining cost after blue)", p.Mana)
	}
}

func TestAvailableMana(t *testing.T) {
	p := NewPlayerState("alice", hero.Hero{}, nil, 10)
	p.Mana = 3
	p.BlueMana = 2
	if got := p.AvailableMana(); got != 5 {
		t.Fatalf("AvailableMana() = %v, want 5", got)
	}
}

func TestLiveUnitsAndFindUnit(t *testing.T) {
	p := NewPlayerState("alice", hero.Hero{}, nil, 10)
	p.Field[0] = &Unit{InstanceID: "u1", Lane: 0}
	p.Field[2] = &Unit{InstanceID: "u2", Lane: 2}

	units := p.LiveUnits()
	if len(units) != 2 || units[0].InstanceID != "u1" || units[1].InstanceID != "u2" {
		t.Fatalf("LiveUnits() = %+v, want ascending lane order", units)
	}

	if p.FindUnit("u2") == nil {
		t.Fatal("expected FindUnit(u2) to locate the unit")
	}
	if p.FindUnit("missing") != nil {
		t.Fatal("expected FindUnit(missing) to return nil")
	}
}

func TestContainsInOrigin(t *testing.T) {
	p := NewPlayerState("alice", hero.Hero{}, nil, 10)
	p.Hand = []string{"fireball@cost=1"}
	if !p.ContainsInOrigin(false, "fireball@cost=1") {
		t.Fatal("expected exact overlaid id match")
	}
	if p.ContainsInOrigin(false, "fireball") {
		t.Fatal("base id without overlay should not match the overlaid hand entry")
	}
}
