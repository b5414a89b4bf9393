package effect

import (
	"testing"

	"laneclash/internal/hero"
	"laneclash/internal/match"
	"laneclash/internal/rng"
)

func freshState() *match.State {
	st := &match.State{RNG: rng.New(1)}
	st.Players[0] = match.NewPlayerState("p1", hero.Hero{ID: "ember_warden"}, nil, 10)
	st.Players[1] = match.NewPlayerState("p2", hero.Hero{ID: "verdant_keeper"}, nil, 10)
	return st
}

func TestDamageUnitVeiled(t *testing.T) {
	st := freshState()
	u := &match.Unit{InstanceID: "u1", Life: 5, MaxLife: 5, Lane: 0}
	u.SetStatus("veil", 0)
	st.Players[0].Field[0] = u

	dealt, died := DamageUnit(st, nil, nil, 0, u, 3, "")
	if dealt != 0 || died {
		t.Fatalf("veiled unit should take no damage: dealt=%d died=%v", dealt, died)
	}
	if u.Life != 5 {
		t.Fatalf("Life = %d, want unchanged at 5", u.Life)
	}
}

func TestDamageUnitShieldAbsorbsOneHit(t *testing.T) {
	st := freshState()
	u := &match.Unit{InstanceID: "u1", Life: 5, MaxLife: 5, Lane: 0, Shield: 1}
	st.Players[0].Field[0] = u

	dealt, died := DamageUnit(st, nil, nil, 0, u, 4, "")
	if dealt != 0 || died {
		t.Fatalf("shielded hit should deal 0: dealt=%d died=%v", dealt, died)
	}
	if u.Shield != 0 {
		t.Fatalf("Shield = %d, want consumed to 0", u.Shield)
	}
	if u.Life != 5 {
		t.Fatalf("Life = %d, want unchanged", u.Life)
	}
}

func TestDamageUnitLethalRoutesToGraveyard(t *testing.T) {
	st := freshState()
	u := &match.Unit{InstanceID: "u1", BaseCardID: "ember_scout", Life: 3, MaxLife: 3, Lane: 1, Cost: 2}
	st.Players[0].Field[1] = u

	emit := match.NewEmitter(1)
	dealt, died := DamageUnit(st, nil, emit, 0, u, 3, "killer1")
	if dealt != 3 || !died {
		t.Fatalf("expected lethal hit: dealt=%d died=%v", dealt, died)
	}
	if _, ok := st.Players[0].Field[1]; ok {
		t.Fatal("unit should be removed from the field")
	}
	if len(st.Players[0].Graveyard) != 1 || st.Players[0].Graveyard[0] != "ember_scout" {
		t.Fatalf("Graveyard = %v, want [ember_scout]", st.Players[0].Graveyard)
	}

	events := emit.Events()
	if len(events) != 1 || events[0].Kind != match.EventUnitDestroyed {
		t.Fatalf("events = %+v, want one EventUnitDestroyed", events)
	}
}

func TestDamageUnitLethalWithRevengeRecyclesToDeck(t *testing.T) {
	st := freshState()
	u := &match.Unit{InstanceID: "u1", BaseCardID: "ember_scout", Life: 1, MaxLife: 1, Lane: 0, Cost: 3}
	u.SetStatus("revenge", 0)
	st.Players[0].Field[0] = u
	st.Players[0].Deck = []string{"a", "b"}

	_, died := DamageUnit(st, nil, nil, 0, u, 1, "")
	if !died {
		t.Fatal("expected the unit to die")
	}
	if len(st.Players[0].Graveyard) != 0 {
		t.Fatal("a revenged unit must not enter the graveyard")
	}
	if len(st.Players[0].Deck) != 3 {
		t.Fatalf("Deck len = %d, want 3 (original 2 plus the recycled card)", len(st.Players[0].Deck))
	}
}

func TestDamageUnitNonLethalEmitsDamageEvent(t *testing.T) {
	st := freshState()
	u := &match.Unit{InstanceID: "u1", Life: 5, MaxLife: 5, Lane: 0}
	st.Players[0].Field[0] = u

	emit := match.NewEmitter(1)
	dealt, died := DamageUnit(st, nil, emit, 0, u, 2, "")
	if dealt != 2 || died {
		t.Fatalf("expected non-lethal 2 damage: dealt=%d died=%v", dealt, died)
	}
	if u.Life != 3 {
		t.Fatalf("Life = %d, want 3", u.Life)
	}
	events := emit.Events()
	if len(events) != 1 || events[0].Kind != match.EventUnitDamage {
		t.Fatalf("events = %+v, want one EventUnitDamage", events)
	}
}

func TestDamageHeroAtZeroLifeIsNoop(t *testing.T) {
	st := freshState()
	st.Players[1].Life = 0

	dealt, zero := DamageHero(st, nil, 1, 5)
	if dealt != 0 || !zero {
		t.Fatalf("dead hero should take no further damage: dealt=%d zero=%v", dealt, zero)
	}
}

func TestDamageHeroReducesLife(t *testing.T) {
	st := freshState()
	dealt, zero := DamageHero(st, nil, 1, 10)
	if dealt != 10 || zero {
		t.Fatalf("dealt=%d zero=%v, want 10, false", dealt, zero)
	}
	if st.Players[1].Life != 20 {
		t.Fatalf("Life = %d, want 20", st.Players[1].Life)
	}
}

func TestDamageHeroClampsAtZero(t *testing.T) {
	st := freshState()
	st.Players[1].Life = 5
	dealt, zero := DamageHero(st, nil, 1, 50)
	if dealt != 5 || !zero {
		t.Fatalf("dealt=%d zero=%v, want 5, true", dealt, zero)
	}
	if st.Players[1].Life != 0 {
		t.Fatalf("Life = %d, want 0", st.Players[1].Life)
	}
}
