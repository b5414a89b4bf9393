package catalog

import "testing"

func testCatalog() *Catalog {
	return New(map[string]CardDefinition{
		"ember_scout": {
			BaseID:    "ember_scout", Name: "Ember Scout", Cost: 3, Type: TypeUnit, Color: ColorRed,
			UnitStats: &UnitStats{Life: 4, Attack: 2, AttackIntervalMs: 1200, DefaultLane: 0},
			Script:    "on_play:draw_card:1;revenge",
		},
		"fireball": {
			BaseID: "fireball", Name: "Fireball", Cost: 2, Type: TypeAction, Color: ColorRed,
			Script: "damage_unit:3",
		},
	})
}

func TestLookup(t *testing.T) {
	cat := testCatalog()

	if _, ok := cat.Lookup("fireball"); !ok {
		t.Fatal("expected fireball to resolve")
	}
	if _, ok := cat.Lookup("does_not_exist"); ok {
		t.Fatal("expected unknown id to miss")
	}
}

func TestResolveAppliesCostOverlay(t *testing.T) {
	cat := testCatalog()

	def, ok := cat.Resolve("ember_scout@cost=1")
	if !ok {
		t.Fatal("expected ember_scout@cost=1 to resolve")
	}
	if def.Cost != 1 {
		t.Fatalf("Cost = %d, want 1", def.Cost)
	}
	if def.BaseID != "ember_scout" {
		t.Fatalf("BaseID = %q, want %q (overlay must not become part of identity)", def.BaseID, "ember_scout")
	}

	base, ok := cat.Lookup("ember_scout")
	if !ok || base.Cost != 3 {
		t.Fatalf("overlay mutated the catalog's own copy: Cost = %d, want 3", base.Cost)
	}
}

func TestResolveAppliesNoRevengeOverlay(t *testing.T) {
	cat := testCatalog()

	def, ok := cat.Resolve("ember_scout@no_revenge=1")
	if !ok {
		t.Fatal("expected resolve to succeed")
	}
	if def.Script != "on_play:draw_card:1" {
		t.Fatalf("Script = %q, want revenge token stripped", def.Script)
	}
}

func TestResolveUnknownBase(t *testing.T) {
	cat := testCatalog()
	if _, ok := cat.Resolve("ghost@cost=1"); ok {
		t.Fatal("expected unknown base id to miss even with overlays")
	}
}

func TestStripOverlays(t *testing.T) {
	cases := map[string]string{
		"fireball":               "fireball",
		"fireball@cost=2":        "fireball",
		"ember_scout@no_revenge=1@cost=1": "ember_scout",
	}
	for in, want := range cases {
		if got := StripOverlays(in); got != want {
			t.Errorf("StripOverlays(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBuildOverlayRoundTrips(t *testing.T) {
	cost := 5
	id := BuildOverlay("ember_scout", &cost, true)

	cat := testCatalog()
	def, ok := cat.Resolve(id)
	if !ok {
		t.Fatalf("BuildOverlay produced unresolvable id %q", id)
	}
	if def.Cost != 5 {
		t.Fatalf("Cost = %d, want 5", def.Cost)
	}
	if def.Script != "on_play:draw_card:1" {
		t.Fatalf("Script = %q, want revenge stripped", def.Script)
	}
}

func TestBuildOverlayNoOptions(t *testing.T) {
	if got := BuildOverlay("fireball", nil, false); got != "fireball" {
		t.Fatalf("BuildOverlay with no options = %q, want %q", got, "fireball")
	}
}
