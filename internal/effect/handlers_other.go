package effect

import (
	"fmt"

	"laneclash/internal/match"
)

// --- graveyard ---------------------------------------------------------

// handlerReviveFromGraveyard brings the most recently buried friendly card
// back as a fresh unit in the first free lane, using its catalog unit
// stats. No-op if the graveyard is empty, the last card isn't a unit, or no
// lane is free.
func handlerReviveFromGraveyard(value int, ctx *Context) {
	p := ctx.Me()
	if len(p.Graveyard) == 0 {
		return
	}
	lane := firstFreeLane(p)
	if lane < 0 {
		return
	}
	baseID := p.Graveyard[len(p.Graveyard)-1]
	def, ok := ctx.Catalog.Lookup(baseID)
	if !ok || def.UnitStats == nil {
		return
	}
	p.Graveyard = p.Graveyard[:len(p.Graveyard)-1]

	u := &match.Unit{
		InstanceID:       fmt.Sprintf("%s-revived-%d", baseID, ctx.State.Tick),
		SourceCardID:     baseID,
		BaseCardID:       baseID,
		Life:             def.UnitStats.Life,
		MaxLife:          def.UnitStats.Life,
		Attack:           def.UnitStats.Attack,
		AttackIntervalMs: def.UnitStats.AttackIntervalMs,
		Lane:             lane,
		Cost:             def.Cost,
	}
	p.Field[lane] = u
}

// handlerSendToGraveyard discards up to value random cards from the
// opponent's hand straight to their graveyard: a disruption effect, not a
// combat-damage one.
func handlerSendToGraveyard(value int, ctx *Context) {
	opp := ctx.Opp()
	for i := 0; i < value; i++ {
		if len(opp.Hand) == 0 {
			return
		}
		idx := ctx.RNG.PickIndex(len(opp.Hand))
		card := opp.Hand[idx]
		opp.Hand = append(opp.Hand[:idx], opp.Hand[idx+1:]...)
		opp.AppendGraveyard(cardBaseID(card))
	}
}

func cardBaseID(id string) string {
	for i := 0; i < len(id); i++ {
		if id[i] == '@' {
			return id[:i]
		}
	}
	return id
}

// --- counter-play --------------------------------------------------------

func handlerNegateAction(value int, ctx *Context) {
	ar := &ctx.State.AR
	idx := ar.NewestEntryFrom(ctx.OppIndex(), value, func(cardID string) int {
		def, ok := ctx.Catalog.Resolve(cardID)
		if !ok {
			return 0
		}
		return def.Cost
	})
	if idx < 0 {
		return
	}
	ar.RemoveAt(idx)
}

func handlerNegateAndReturn(value int, ctx *Context) {
	ar := &ctx.State.AR
	oppIdx := ctx.OppIndex()
	idx := ar.NewestEntryFrom(oppIdx, value, func(cardID string) int {
		def, ok := ctx.Catalog.Resolve(cardID)
		if !ok {
			return 0
		}
		return def.Cost
	})
	if idx < 0 {
		return
	}
	entry := ar.RemoveAt(idx)
	def, ok := ctx.Catalog.Resolve(entry.CardID)
	if !ok {
		return
	}
	newCost := def.Cost - value
	if newCost < 0 {
		newCost = 0
	}
	overlay := fmt.Sprintf("%s@cost=%d", cardBaseID(entry.CardID), newCost)
	ctx.State.Players[oppIdx].AppendEX(overlay)
}

// --- halt / seal ---------------------------------------------------------

func secToMs(value int) int {
	if value <= 0 {
		return 0
	}
	return value * 1000
}

func handlerHaltRandomEnemy(value int, ctx *Context) {
	units := ctx.liveEnemyUnits()
	idx := ctx.RNG.PickIndex(len(units))
	if idx < 0 {
		return
	}
	units[idx].HaltMs = secToMs(value)
}

func handlerHaltFrontUnit(value int, ctx *Context) {
	u := ctx.frontUnit()
	if u == nil {
		return
	}
	u.HaltMs = secToMs(value)
}

func handlerHaltKiller(value int, ctx *Context) {
	if ctx.SourceUnit != nil && ctx.SourceUnit.KillerInstanceID != "" {
		killerID := ctx.SourceUnit.KillerInstanceID
		for _, u := range ctx.liveEnemyUnits() {
			if u.InstanceID == killerID {
				u.HaltMs = secToMs(value)
				return
			}
		}
	}
	handlerHaltRandomEnemy(value, ctx)
}

func handlerSealFrontUnit(value int, ctx *Context) {
	u := ctx.frontUnit()
	if u == nil {
		return
	}
	u.Sealed = true
}

func handlerSealTarget(value int, ctx *Context) {
	if ctx.TargetUnit != nil {
		ctx.TargetUnit.Sealed = true
	}
}

func handlerSealRandomEnemy(value int, ctx *Context) {
	units := ctx.liveEnemyUnits()
	idx := ctx.RNG.PickIndex(len(units))
	if idx < 0 {
		return
	}
	units[idx].Sealed = true
}

func handlerSealRandomEnemyExcludeFront(value int, ctx *Context) {
	front := ctx.frontUnit()
	var candidates []*match.Unit
	for _, u := range ctx.liveEnemyUnits() {
		if u != front {
			candidates = append(candidates, u)
		}
	}
	idx := ctx.RNG.PickIndex(len(candidates))
	if idx < 0 {
		return
	}
	candidates[idx].Sealed = true
}

// --- destruction ---------------------------------------------------------

// destroyUnconditionally kills u outright, bypassing shield but still
// honoring veil.
func destroyUnconditionally(ctx *Context, side int, u *match.Unit) {
	if u.HasStatus("veil") {
		return
	}
	u.Life = 0
	removeUnit(ctx.State, ctx.Emit, side, u, "")
}

func handlerDestroyTarget(value int, ctx *Context) {
	if ctx.TargetUnit == nil {
		return
	}
	destroyUnconditionally(ctx, targetSide(ctx), ctx.TargetUnit)
}

func handlerDestroyRandomEnemy(value int, ctx *Context) {
	var candidates []*match.Unit
	for _, u := range ctx.liveEnemyUnits() {
		if value == 0 || u.Cost <= value {
			candidates = append(candidates, u)
		}
	}
	idx := ctx.RNG.PickIndex(len(candidates))
	if idx < 0 {
		return
	}
	destroyUnconditionally(ctx, ctx.OppIndex(), candidates[idx])
}

func handlerDestroyFriendly(value int, ctx *Context) {
	if ctx.TargetUnit == nil {
		return
	}
	destroyUnconditionally(ctx, ctx.Source, ctx.TargetUnit)
}

func handlerDestroySelf(value int, ctx *Context) {
	if ctx.SourceUnit == nil {
		return
	}
	destroyUnconditionally(ctx, ctx.Source, ctx.SourceUnit)
}

func handlerDestroyLowAttack(value int, ctx *Context) {
	var candidates []*match.Unit
	for _, u := range ctx.liveEnemyUnits() {
		if u.Attack <= value {
			candidates = append(candidates, u)
		}
	}
	idx := ctx.RNG.PickIndex(len(candidates))
	if idx < 0 {
		return
	}
	destroyUnconditionally(ctx, ctx.OppIndex(), candidates[idx])
}

// --- marker ----------------------------------------------------------------

// handlerActionEffect is a no-op at invocation time: its presence in a
// script is a flag the input processor checks before firing the rest of
// the card's tokens.
func handlerActionEffect(value int, ctx *Context) {}
