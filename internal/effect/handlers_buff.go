package effect

import "laneclash/internal/match"

func clampAttack(u *match.Unit, delta int) {
	u.Attack += delta
	if u.Attack < 0 {
		u.Attack = 0
	}
}

func buffHP(u *match.Unit, delta int) {
	u.Life += delta
	u.MaxLife += delta
	if u.MaxLife < 1 {
		u.MaxLife = 1
	}
	if u.Life > u.MaxLife {
		u.Life = u.MaxLife
	}
	if u.Life < 0 {
		u.Life = 0
	}
}

func handlerBuffSelfAttack(value int, ctx *Context) {
	if ctx.SourceUnit != nil {
		clampAttack(ctx.SourceUnit, value)
	}
}

func handlerBuffSelfHP(value int, ctx *Context) {
	if ctx.SourceUnit != nil {
		buffHP(ctx.SourceUnit, value)
	}
}

func handlerBuffSelfAttackHP(value int, ctx *Context) {
	if ctx.SourceUnit != nil {
		clampAttack(ctx.SourceUnit, value)
		buffHP(ctx.SourceUnit, value)
	}
}

func handlerBuffAllFriendlyAttack(value int, ctx *Context) {
	for _, u := range ctx.liveFriendlyUnits() {
		clampAttack(u, value)
	}
}

func handlerBuffAllFriendlyHP(value int, ctx *Context) {
	for _, u := range ctx.liveFriendlyUnits() {
		buffHP(u, value)
	}
}

func handlerBuffAllFriendlyAttackHP(value int, ctx *Context) {
	for _, u := range ctx.liveFriendlyUnits() {
		clampAttack(u, value)
		buffHP(u, value)
	}
}

func handlerBuffRandomFriendlyAttack(value int, ctx *Context) {
	units := ctx.liveFriendlyUnits()
	if idx := ctx.RNG.PickIndex(len(units)); idx >= 0 {
		clampAttack(units[idx], value)
	}
}

func handlerBuffRandomFriendlyHP(value int, ctx *Context) {
	units := ctx.liveFriendlyUnits()
	if idx := ctx.RNG.PickIndex(len(units)); idx >= 0 {
		buffHP(units[idx], value)
	}
}

func handlerBuffTargetAttack(value int, ctx *Context) {
	if ctx.TargetUnit != nil {
		clampAttack(ctx.TargetUnit, value)
	}
}

func handlerBuffTargetHP(value int, ctx *Context) {
	if ctx.TargetUnit != nil {
		buffHP(ctx.TargetUnit, value)
	}
}

func handlerDebuffRandomEnemyAttack(value int, ctx *Context) {
	units := ctx.liveEnemyUnits()
	if idx := ctx.RNG.PickIndex(len(units)); idx >= 0 {
		clampAttack(units[idx], -value)
	}
}

func handlerDebuffAllEnemyAttack(value int, ctx *Context) {
	for _, u := range ctx.liveEnemyUnits() {
		clampAttack(u, -value)
	}
}

// --- temporary buffs: revert on the unit's next completed attack ----------

func grantTempStatus(u *match.Unit, name string) {
	if u.TempStatus == nil {
		u.TempStatus = make(map[string]int)
	}
	u.TempStatus[name] = 1
}

func handlerBuffSelfAttackTemp(value int, ctx *Context) {
	if ctx.SourceUnit != nil {
		ctx.SourceUnit.TempAttackDelta += value
	}
}

func handlerBuffAllFriendlyAttackTemp(value int, ctx *Context) {
	for _, u := range ctx.liveFriendlyUnits() {
		u.TempAttackDelta += value
	}
}

func handlerBuffTargetAttackTemp(value int, ctx *Context) {
	if ctx.TargetUnit != nil {
		ctx.TargetUnit.TempAttackDelta += value
	}
}

func handlerGrantCrushAllFriendlyTemp(value int, ctx *Context) {
	for _, u := range ctx.liveFriendlyUnits() {
		grantTempStatus(u, "crush")
	}
}

func handlerGrantComboSelfTemp(value int, ctx *Context) {
	if ctx.SourceUnit != nil {
		grantTempStatus(ctx.SourceUnit, "combo")
	}
}

func handlerDebuffAllEnemyAttackTemp(value int, ctx *Context) {
	for _, u := range ctx.liveEnemyUnits() {
		u.TempAttackDelta -= value
	}
}
