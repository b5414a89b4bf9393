package effect

import (
	"testing"

	"laneclash/internal/match"
)

func TestHandlerMPGainCapsAtMax(t *testing.T) {
	st := freshState()
	ctx := &Context{State: st, Source: 0, RNG: st.RNG, TargetPlayer: -1}

	handlerMPGain(3, ctx)
	if st.Players[0].Mana != 7 {
		t.Fatalf("Mana = %v, want 7", st.Players[0].Mana)
	}

	handlerMPGain(10, ctx)
	if st.Players[0].Mana != st.Players[0].MaxMana {
		t.Fatalf("Mana = %v, want capped at MaxMana %v", st.Players[0].Mana, st.Players[0].MaxMana)
	}
}

func TestHandlerHealHeroCapsAtMaxLife(t *testing.T) {
	st := freshState()
	st.Players[0].Life = 28
	ctx := &Context{State: st, Source: 0, RNG: st.RNG, TargetPlayer: -1}

	handlerHealHero(10, ctx)
	if st.Players[0].Life != st.Players[0].MaxLife {
		t.Fatalf("Life = %d, want capped at MaxLife %d", st.Players[0].Life, st.Players[0].MaxLife)
	}
}

func TestHandlerDrawToEXMovesTopCardAndRespectsCapacity(t *testing.T) {
	st := freshState()
	st.Players[0].Deck = []string{"a", "b"}
	ctx := &Context{State: st, Source: 0, RNG: st.RNG, TargetPlayer: -1}

	handlerDrawToEX(0, ctx)
	if len(st.Players[0].EX) != 1 || st.Players[0].EX[0] != "a" {
		t.Fatalf("EX = %v, want [a]", st.Players[0].EX)
	}
	if len(st.Players[0].Deck) != 1 || st.Players[0].Deck[0] != "b" {
		t.Fatalf("Deck = %v, want [b]", st.Players[0].Deck)
	}

	handlerDrawToEX(0, ctx) // fills EX to capacity
	handlerDrawToEX(0, ctx) // deck now empty or EX full; must not panic or misbehave
	if len(st.Players[0].EX) > match.MaxEXCapacity {
		t.Fatalf("EX len = %d, exceeds capacity %d", len(st.Players[0].EX), match.MaxEXCapacity)
	}
}

func TestHandlerDamageEnemyHero(t *testing.T) {
	st := freshState()
	emit := match.NewEmitter(1)
	ctx := &Context{State: st, Source: 0, Emit: emit, RNG: st.RNG, TargetPlayer: -1}

	handlerDamageEnemyHero(5, ctx)
	if st.Players[1].Life != 25 {
		t.Fatalf("Life = %d, want 25", st.Players[1].Life)
	}
}

func TestHandlerDamageFrontUnit(t *testing.T) {
	st := freshState()
	attacker := &match.Unit{InstanceID: "a", Lane: 1}
	defender := &match.Unit{InstanceID: "d", Life: 5, MaxLife: 5, Lane: 1}
	st.Players[0].Field[1] = attacker
	st.Players[1].Field[1] = defender

	ctx := &Context{State: st, Source: 0, SourceUnit: attacker, RNG: st.RNG, TargetPlayer: -1}
	handlerDamageFrontUnit(3, ctx)

	if defender.Life != 2 {
		t.Fatalf("defender.Life = %d, want 2", defender.Life)
	}
}

func TestHandlerBuffSelfAttackAndHP(t *testing.T) {
	u := &match.Unit{Attack: 2, Life: 3, MaxLife: 3}
	ctx := &Context{SourceUnit: u}

	handlerBuffSelfAttackHP(2, ctx)
	if u.Attack != 4 || u.Life != 5 || u.MaxLife != 5 {
		t.Fatalf("unit after buff = %+v, want Attack=4 Life=5 MaxLife=5", u)
	}
}

func TestClampAttackNeverNegative(t *testing.T) {
	u := &match.Unit{Attack: 1}
	clampAttack(u, -5)
	if u.Attack != 0 {
		t.Fatalf("Attack = %d, want floored at 0", u.Attack)
	}
}

func TestTargetSideResolvesOwnership(t *testing.T) {
	st := freshState()
	mine := &match.Unit{InstanceID: "mine", Lane: 0}
	theirs := &match.Unit{InstanceID: "theirs", Lane: 0}
	st.Players[0].Field[0] = mine
	st.Players[1].Field[0] = theirs

	ctx := &Context{State: st, Source: 0}

	ctx.TargetUnit = mine
	if got := targetSide(ctx); got != 0 {
		t.Fatalf("targetSide(mine) = %d, want 0", got)
	}

	ctx.TargetUnit = theirs
	if got := targetSide(ctx); got != 1 {
		t.Fatalf("targetSide(theirs) = %d, want 1", got)
	}
}
