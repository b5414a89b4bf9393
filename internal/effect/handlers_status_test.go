package effect

import (
	"testing"

	"laneclash/internal/match"
)

func testUnit() *match.Unit {
	return &match.Unit{InstanceID: "u1", BaseCardID: "scout", Life: 4, MaxLife: 4, Lane: 0}
}

func TestGrantAgilityHalvesIntervalOnceOnly(t *testing.T) {
	u := testUnit()
	u.AttackIntervalMs = 2000

	grantAgility(u)
	if u.AttackIntervalMs != 1000 {
		t.Fatalf("AttackIntervalMs = %d, want 1000 after first grant", u.AttackIntervalMs)
	}

	grantAgility(u) // already has agility; must not halve again
	if u.AttackIntervalMs != 1000 {
		t.Fatalf("AttackIntervalMs = %d, want unchanged at 1000 on a repeat grant", u.AttackIntervalMs)
	}
}

func TestGrantAgilityClampsToFloor(t *testing.T) {
	u := testUnit()
	u.AttackIntervalMs = 600

	grantAgility(u)
	if u.AttackIntervalMs != MinAgilityIntervalMs {
		t.Fatalf("AttackIntervalMs = %d, want floor %d", u.AttackIntervalMs, MinAgilityIntervalMs)
	}
}

func TestHandlerGrantShieldSelfDefaultsToOne(t *testing.T) {
	u := testUnit()
	ctx := &Context{SourceUnit: u}

	handlerGrantShieldSelf(0, ctx)
	if u.Shield != 1 {
		t.Fatalf("Shield = %d, want 1 for a zero/negative value", u.Shield)
	}

	handlerGrantShieldSelf(3, ctx)
	if u.Shield != 4 {
		t.Fatalf("Shield = %d, want 4 after +3", u.Shield)
	}
}

func TestHandlerRemoveFlightClearsPermanentAndTempStatus(t *testing.T) {
	u := testUnit()
	u.SetStatus("flight", 1)
	u.TempStatus = map[string]int{"flight": 1}
	ctx := &Context{TargetUnit: u}

	handlerRemoveFlight(0, ctx)

	if u.HasStatus("flight") {
		t.Fatal("flight should be cleared from both Status and TempStatus")
	}
}

func TestHandlerGrantAgilityTargetNoOpWithoutTarget(t *testing.T) {
	ctx := &Context{TargetUnit: nil}
	handlerGrantAgilityTarget(0, ctx) // must not panic
}
