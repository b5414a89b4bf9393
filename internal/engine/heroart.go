package engine

import (
	"laneclash/internal/catalog"
	"laneclash/internal/effect"
	"laneclash/internal/match"
)

// heroUltimates maps a hero id to the effect script its Art resolves
// against the caster. Keeping ultimates as ordinary DSL scripts
// means the resolver's existing handler table is the only place that
// actually mutates state, and a hero's kit can be re-tuned without adding
// a new Go function.
var heroUltimates = map[string]string{
	"ember_warden":   "damage_all_enemy_units_each:4",
	"verdant_keeper": "heal_hero:6;draw_to_ex:1",
	"arcane_seer":    "mp_gain:3;draw_to_ex:1",
	"dread_marshal":  "destroy_random_enemy:1;revive_from_graveyard:1",
}

// applyHeroArt fires a hero's ultimate: once the caster's ability-point
// counter meets their hero's threshold, it is zeroed and the hero's
// ultimate script resolves immediately against the caster's own board.
func applyHeroArt(st *match.State, cat *catalog.Catalog, emit *match.Emitter, in *Input) {
	p := &st.Players[in.Player]

	if p.AbilityPoints < p.Hero.Threshold() {
		diagnose(ReasonInsufficientMana)
		return
	}

	script, ok := heroUltimates[p.Hero.ID]
	if !ok {
		return
	}

	p.AbilityPoints = 0
	emit.Emit(match.EventHeroArtInvoked, match.HeroArtInvokedPayload{Side: in.Player, HeroID: p.Hero.ID})

	ctx := &effect.Context{
		State:        st, Catalog: cat,
		Source:       in.Player,
		Emit:         emit, RNG: st.RNG,
		TargetPlayer: match.NoPriority,
	}
	effect.FireAllNonStatus(script, ctx)
}
