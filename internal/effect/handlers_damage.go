package effect

import "laneclash/internal/match"

// frontUnit returns the opposing unit sharing the source unit's lane, if any.
func (c *Context) frontUnit() *match.Unit {
	if c.SourceUnit == nil {
		return nil
	}
	return c.Opp().Field[c.SourceUnit.Lane]
}

// liveEnemyUnits snapshots the caster's opponent's units in lane order.
func (c *Context) liveEnemyUnits() []*match.Unit {
	return c.Opp().LiveUnits()
}

// liveFriendlyUnits snapshots the caster's own units in lane order.
func (c *Context) liveFriendlyUnits() []*match.Unit {
	return c.Me().LiveUnits()
}

func handlerDamageFrontUnit(value int, ctx *Context) {
	u := ctx.frontUnit()
	if u == nil {
		return
	}
	DamageUnit(ctx.State, ctx.Catalog, ctx.Emit, ctx.OppIndex(), u, value, "")
}

func handlerDamageRandomEnemy(value int, ctx *Context) {
	units := ctx.liveEnemyUnits()
	idx := ctx.RNG.PickIndex(len(units))
	if idx < 0 {
		return
	}
	DamageUnit(ctx.State, ctx.Catalog, ctx.Emit, ctx.OppIndex(), units[idx], value, "")
}

func handlerDamageEnemyHero(value int, ctx *Context) {
	DamageHero(ctx.State, ctx.Emit, ctx.OppIndex(), value)
}

func handlerDamageTarget(value int, ctx *Context) {
	if ctx.TargetUnit != nil {
		DamageUnit(ctx.State, ctx.Catalog, ctx.Emit, targetSide(ctx), ctx.TargetUnit, value, "")
		return
	}
	if ctx.TargetPlayer != match.NoPriority {
		DamageHero(ctx.State, ctx.Emit, ctx.TargetPlayer, value)
	}
}

func handlerPierceDamageTarget(value int, ctx *Context) {
	if ctx.TargetUnit == nil {
		if ctx.TargetPlayer != match.NoPriority {
			DamageHero(ctx.State, ctx.Emit, ctx.TargetPlayer, value)
		}
		return
	}
	damageUnitIgnoringShield(ctx.State, ctx.Emit, targetSide(ctx), ctx.TargetUnit, value)
}

func handlerDamageLowestHPEnemy(value int, ctx *Context) {
	units := ctx.liveEnemyUnits()
	if len(units) == 0 {
		return
	}
	lowest := units[0].Life
	var candidates []*match.Unit
	for _, u := range units {
		if u.Life < lowest {
			lowest = u.Life
			candidates = candidates[:0]
			candidates = append(candidates, u)
		} else if u.Life == lowest {
			candidates = append(candidates, u)
		}
	}
	idx := ctx.RNG.PickIndex(len(candidates))
	if idx < 0 {
		return
	}
	DamageUnit(ctx.State, ctx.Catalog, ctx.Emit, ctx.OppIndex(), candidates[idx], value, "")
}

func handlerDamageSelf(value int, ctx *Context) {
	if ctx.SourceUnit != nil {
		DamageUnit(ctx.State, ctx.Catalog, ctx.Emit, ctx.Source, ctx.SourceUnit, value, "")
		return
	}
	DamageHero(ctx.State, ctx.Emit, ctx.Source, value)
}

// --- area damage -----------------------------------------------------------

func handlerDamageAllUnits(value int, ctx *Context) {
	for _, u := range ctx.liveFriendlyUnits() {
		DamageUnit(ctx.State, ctx.Catalog, ctx.Emit, ctx.Source, u, value, "")
	}
	for _, u := range ctx.liveEnemyUnits() {
		DamageUnit(ctx.State, ctx.Catalog, ctx.Emit, ctx.OppIndex(), u, value, "")
	}
}

func handlerDamageAllEnemyUnitsEach(value int, ctx *Context) {
	for _, u := range ctx.liveEnemyUnits() {
		DamageUnit(ctx.State, ctx.Catalog, ctx.Emit, ctx.OppIndex(), u, value, "")
	}
}

func handlerDamageAllUnitsAndHeroes(value int, ctx *Context) {
	handlerDamageAllUnits(value, ctx)
	DamageHero(ctx.State, ctx.Emit, ctx.Source, value)
	DamageHero(ctx.State, ctx.Emit, ctx.OppIndex(), value)
}

func handlerDamageHaltedEnemies(value int, ctx *Context) {
	for _, u := range ctx.liveEnemyUnits() {
		if u.HaltMs > 0 {
			DamageUnit(ctx.State, ctx.Catalog, ctx.Emit, ctx.OppIndex(), u, value, "")
		}
	}
}

func handlerDamageFlightUnits(value int, ctx *Context) {
	for _, u := range ctx.liveEnemyUnits() {
		if u.HasStatus("flight") {
			DamageUnit(ctx.State, ctx.Catalog, ctx.Emit, ctx.OppIndex(), u, value, "")
		}
	}
}

// --- split damage ------------------------------------------------------------

// splitOverEnemies distributes n points one at a time over a live list,
// re-snapshotting after each point so a point landing on the last survivor
// empties the list for subsequent draws.
func splitOverEnemies(ctx *Context, points int, apply func(u *match.Unit, amount int)) {
	for i := 0; i < points; i++ {
		units := ctx.liveEnemyUnits()
		idx := ctx.RNG.PickIndex(len(units))
		if idx < 0 {
			return // list emptied mid-distribution: remaining points are lost
		}
		apply(units[idx], 1)
	}
}

func splitOverFriendlies(ctx *Context, points int, apply func(u *match.Unit, amount int)) {
	for i := 0; i < points; i++ {
		units := ctx.liveFriendlyUnits()
		idx := ctx.RNG.PickIndex(len(units))
		if idx < 0 {
			return
		}
		apply(units[idx], 1)
	}
}

func handlerSplitDamageAllEnemyUnits(value int, ctx *Context) {
	splitOverEnemies(ctx, value, func(u *match.Unit, amount int) {
		DamageUnit(ctx.State, ctx.Catalog, ctx.Emit, ctx.OppIndex(), u, amount, "")
	})
}

func handlerSplitHealFriendly(value int, ctx *Context) {
	splitOverFriendlies(ctx, value, func(u *match.Unit, amount int) {
		healUnit(u, amount)
	})
}

// targetSide returns the side index that owns ctx.TargetUnit. Units carry
// no owner back-pointer, so resolve it by membership.
func targetSide(ctx *Context) int {
	if ctx.TargetUnit == nil {
		return ctx.Source
	}
	if ctx.Me().Field[ctx.TargetUnit.Lane] == ctx.TargetUnit {
		return ctx.Source
	}
	return ctx.OppIndex()
}

func healUnit(u *match.Unit, amount int) {
	u.Life += amount
	if u.Life > u.MaxLife {
		u.Life = u.MaxLife
	}
}

// damageUnitIgnoringShield is the pierce_damage_target variant of the
// shielded-damage primitive: the shield step is skipped entirely, veil
// still applies.
func damageUnitIgnoringShield(st *match.State, emit *match.Emitter, side int, u *match.Unit, amount int) {
	if u.HasStatus("veil") {
		return
	}
	newHP := u.Life - amount
	if newHP < 0 {
		newHP = 0
	}
	dealt := u.Life - newHP
	if newHP == 0 {
		removeUnit(st, emit, side, u, "")
		return
	}
	u.Life = newHP
	if emit != nil {
		emit.Emit(match.EventUnitDamage, match.UnitDamagePayload{Side: side, UnitID: u.InstanceID, Damage: dealt, NewLife: u.Life})
	}
}
