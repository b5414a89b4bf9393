package match

import "testing"

func TestHasStatusPermanentAndTemp(t *testing.T) {
	u := &Unit{}
	if u.HasStatus("rush") {
		t.Fatal("fresh unit should have no statuses")
	}

	u.SetStatus("rush", 0)
	if !u.HasStatus("rush") {
		t.Fatal("expected rush to be set")
	}

	u.TempStatus = map[string]int{"combo": 1}
	if !u.HasStatus("combo") {
		t.Fatal("expected temp status combo to count")
	}
}

func TestSetStatusDefaultsToOne(t *testing.T) {
	u := &Unit{}
	u.SetStatus("flight", 0)
	if u.Status["flight"] != 1 {
		t.Fatalf("Status[flight] = %d, want 1", u.Status["flight"])
	}

	u.SetStatus("mp_boost", 25)
	if u.Status["mp_boost"] != 25 {
		t.Fatalf("Status[mp_boost] = %d, want 25", u.Status["mp_boost"])
	}
}

func TestEffectiveAttackFloorsAtZero(t *testing.T) {
	u := &Unit{Attack: 2, TempAttackDelta: -5}
	if got := u.EffectiveAttack(); got != 0 {
		t.Fatalf("EffectiveAttack() = %d, want 0", got)
	}

	u2 := &Unit{Attack: 2, TempAttackDelta: 3}
	if got := u2.EffectiveAttack(); got != 5 {
		t.Fatalf("EffectiveAttack() = %d, want 5", got)
	}
}

func TestClearTempBuffs(t *testing.T) {
	u := &Unit{TempAttackDelta: 4, TempStatus: map[string]int{"combo": 1}}
	u.ClearTempBuffs()
	if u.TempAttackDelta != 0 || u.TempStatus != nil {
		t.Fatalf("ClearTempBuffs left state: delta=%d status=%v", u.TempAttackDelta, u.TempStatus)
	}
}

func TestMPBoost(t *testing.T) {
	u := &Unit{}
	if u.MPBoost() != 0 {
		t.Fatal("expected 0 with no status map")
	}
	u.SetStatus("mp_boost", 15)
	if u.MPBoost() != 15 {
		t.Fatalf("MPBoost() = %d, want 15", u.MPBoost())
	}
}
