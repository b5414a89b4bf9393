package effect

import "laneclash/internal/match"

// MinAgilityIntervalMs is the floor agility clamps a unit's attack interval
// to.
const MinAgilityIntervalMs = 500

// grantAgility halves u's attack interval, but only the first time agility
// is granted.
func grantAgility(u *match.Unit) {
	if u.HasStatus("agility") {
		return
	}
	u.SetStatus("agility", 1)
	half := u.AttackIntervalMs / 2
	if half < MinAgilityIntervalMs {
		half = MinAgilityIntervalMs
	}
	u.AttackIntervalMs = half
}

func handlerGrantFlightSelf(value int, ctx *Context) {
	if ctx.SourceUnit != nil {
		ctx.SourceUnit.SetStatus("flight", 1)
	}
}

func handlerGrantAgilitySelf(value int, ctx *Context) {
	if ctx.SourceUnit != nil {
		grantAgility(ctx.SourceUnit)
	}
}

func handlerGrantShieldSelf(value int, ctx *Context) {
	if ctx.SourceUnit != nil {
		n := value
		if n <= 0 {
			n = 1
		}
		ctx.SourceUnit.Shield += n
	}
}

func handlerGrantShieldRandomFriendly(value int, ctx *Context) {
	units := ctx.liveFriendlyUnits()
	idx := ctx.RNG.PickIndex(len(units))
	if idx < 0 {
		return
	}
	n := value
	if n <= 0 {
		n = 1
	}
	units[idx].Shield += n
}

func handlerGrantFlightTarget(value int, ctx *Context) {
	if ctx.TargetUnit != nil {
		ctx.TargetUnit.SetStatus("flight", 1)
	}
}

func handlerGrantAgilityTarget(value int, ctx *Context) {
	if ctx.TargetUnit != nil {
		grantAgility(ctx.TargetUnit)
	}
}

func handlerRemoveFlight(value int, ctx *Context) {
	u := ctx.TargetUnit
	if u == nil {
		units := ctx.liveEnemyUnits()
		idx := ctx.RNG.PickIndex(len(units))
		if idx < 0 {
			return
		}
		u = units[idx]
	}
	if u.Status != nil {
		delete(u.Status, "flight")
	}
	if u.TempStatus != nil {
		delete(u.TempStatus, "flight")
	}
}
