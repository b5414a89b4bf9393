package effect

import (
	"testing"

	"laneclash/internal/dsl"
	"laneclash/internal/match"
)

func TestLookupKnownAndUnknown(t *testing.T) {
	if _, ok := Lookup("heal_hero"); !ok {
		t.Fatal("expected heal_hero to resolve")
	}
	if _, ok := Lookup("not_a_real_effect"); ok {
		t.Fatal("expected unknown name to miss")
	}
}

func TestFireTriggeredOnlyFiresMatchingTrigger(t *testing.T) {
	st := freshState()
	ctx := &Context{State: st, Source: 0, Emit: match.NewEmitter(1), RNG: st.RNG, TargetPlayer: -1}

	diags := FireTriggered("death:heal_hero:3;play:mp_gain:2", dsl.TriggerDeath, ctx)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if st.Players[0].Life != 23 {
		t.Fatalf("Life = %v, want 23 (only the death-triggered heal should fire)", st.Players[0].Life)
	}
	if st.Players[0].Mana != 4 {
		t.Fatalf("Mana = %v, want unchanged at 4 (play-triggered token should not fire)", st.Players[0].Mana)
	}
}

func TestFireTriggeredSkipsStatusAndMarkerTokens(t *testing.T) {
	st := freshState()
	ctx := &Context{State: st, Source: 0, Emit: match.NewEmitter(1), RNG: st.RNG, TargetPlayer: -1}

	diags := FireTriggered("play:rush:0;play:action_effect:0;play:mp_gain:1", dsl.TriggerPlay, ctx)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if st.Players[0].Mana != 5 {
		t.Fatalf("Mana = %v, want 5 (status/marker tokens should be skipped, not looked up)", st.Players[0].Mana)
	}
}

func TestFireTriggeredReportsUnknownEffectName(t *testing.T) {
	st := freshState()
	ctx := &Context{State: st, Source: 0, Emit: match.NewEmitter(1), RNG: st.RNG, TargetPlayer: -1}

	diags := FireTriggered("play:totally_bogus_effect:1", dsl.TriggerPlay, ctx)
	if len(diags) != 1 {
		t.Fatalf("diags = %v, want one unknown-effect diagnostic", diags)
	}
}

func TestIsActionEffectDeferred(t *testing.T) {
	if !IsActionEffectDeferred("action_effect;damage_target:3") {
		t.Fatal("expected action_effect marker to be detected")
	}
	if IsActionEffectDeferred("damage_target:3") {
		t.Fatal("expected no marker to be detected")
	}
}

func TestFireAllNonStatusIgnoresTrigger(t *testing.T) {
	st := freshState()
	ctx := &Context{State: st, Source: 0, Emit: match.NewEmitter(1), RNG: st.RNG, TargetPlayer: -1}

	FireAllNonStatus("death:heal_hero:2;attack:mp_gain:1;rush", ctx)
	if st.Players[0].Life != 22 {
		t.Fatalf("Life = %v, want 22 (both non-status tokens should fire regardless of trigger)", st.Players[0].Life)
	}
	if st.Players[0].Mana != 5 {
		t.Fatalf("Mana = %v, want 5", st.Players[0].Mana)
	}
}
