package effect

import "laneclash/internal/match"

// firstFreeLane returns the lowest-index unoccupied lane of p, or -1.
func firstFreeLane(p *match.PlayerState) int {
	for lane := 0; lane < 3; lane++ {
		if _, occupied := p.Field[lane]; !occupied {
			return lane
		}
	}
	return -1
}

func handlerControlEnemy(value int, ctx *Context) {
	u := ctx.TargetUnit
	if u == nil {
		return
	}
	me := ctx.Me()
	lane := firstFreeLane(me)
	if lane < 0 {
		return // no-op if no free lane
	}
	opp := ctx.Opp()
	delete(opp.Field, u.Lane)
	u.Lane = lane
	me.Field[lane] = u
}

// sendUnitToEX removes u from owner's field and appends it to their EX
// pocket. If EX is full, the unit is lost from the field with no zone to
// land in other than the graveyard, matching the conservation invariant
// that a card occupies exactly one zone at a time.
func sendUnitToEX(owner *match.PlayerState, u *match.Unit) {
	delete(owner.Field, u.Lane)
	if !owner.AppendEX(u.SourceCardID) {
		owner.AppendGraveyard(u.BaseCardID)
	}
}

func handlerReturnToEX(value int, ctx *Context) {
	u := ctx.SourceUnit
	if u == nil {
		u = ctx.TargetUnit
	}
	if u == nil {
		return
	}
	sendUnitToEX(ownerOf(ctx, u), u)
}

func handlerReturnFriendlyToEX(value int, ctx *Context) {
	u := ctx.TargetUnit
	if u == nil {
		return
	}
	sendUnitToEX(ctx.Me(), u)
}

func handlerReturnLowAttackEnemyToEX(value int, ctx *Context) {
	units := ctx.liveEnemyUnits()
	if len(units) == 0 {
		return
	}
	lowest := units[0].Attack
	var candidates []*match.Unit
	for _, u := range units {
		if u.Attack < lowest {
			lowest = u.Attack
			candidates = candidates[:0]
			candidates = append(candidates, u)
		} else if u.Attack == lowest {
			candidates = append(candidates, u)
		}
	}
	idx := ctx.RNG.PickIndex(len(candidates))
	if idx < 0 {
		return
	}
	sendUnitToEX(ctx.Opp(), candidates[idx])
}

func handlerLockLane(value int, ctx *Context) {
	u := ctx.TargetUnit
	if u == nil {
		return
	}
	owner := ownerOf(ctx, u)
	lane := u.Lane
	sendUnitToEX(owner, u)
	ms := value
	if ms <= 0 {
		ms = 1000
	}
	if owner.LaneLock == nil {
		owner.LaneLock = make(map[int]int)
	}
	owner.LaneLock[lane] = ms
}

// ownerOf resolves which side's field currently holds u.
func ownerOf(ctx *Context, u *match.Unit) *match.PlayerState {
	if ctx.Me().Field[u.Lane] == u {
		return ctx.Me()
	}
	return ctx.Opp()
}
