package effect

import (
	"laneclash/internal/catalog"
	"laneclash/internal/match"
)

// DamageUnit applies the shielded-damage primitive to a
// unit owned by side, in side's field at u.Lane. killerID is recorded as
// the unit's lethal-blow source if the unit dies from this hit; pass "" if
// the damage does not come from an attacking unit (e.g. a pure effect).
//
// Returns the damage actually applied (0 if veiled or shielded) and whether
// the unit died.
func DamageUnit(st *match.State, cat *catalog.Catalog, emit *match.Emitter, side int, u *match.Unit, amount int, killerID string) (dealt int, died bool) {
	if u.HasStatus("veil") {
		return 0, false
	}

	if u.Shield > 0 && amount > 0 {
		amount = 0
		u.Shield--
	}

	newHP := u.Life - amount
	if newHP < 0 {
		newHP = 0
	}
	dealt = u.Life - newHP

	if newHP == 0 {
		removeUnit(st, emit, side, u, killerID)
		return dealt, true
	}

	u.Life = newHP
	if emit != nil {
		emit.Emit(match.EventUnitDamage, match.UnitDamagePayload{
			Side: side, UnitID: u.InstanceID, Damage: dealt, NewLife: u.Life,
		})
	}
	return dealt, false
}

// removeUnit takes a unit out of the field and routes it to the graveyard
// or, if it holds revenge, back into its owner's deck at a random index
// with halved cost and no_revenge overlays.
func removeUnit(st *match.State, emit *match.Emitter, side int, u *match.Unit, killerID string) {
	p := &st.Players[side]
	delete(p.Field, u.Lane)

	revenged := false
	if u.HasStatus("revenge") {
		halved := (u.Cost + 1) / 2 // ceil
		overlaid := catalog.BuildOverlay(u.BaseCardID, &halved, true)
		idx := st.RNG.PickIndex(len(p.Deck) + 1)
		if idx < 0 {
			idx = 0
		}
		p.InsertDeckAt(idx, overlaid)
		revenged = true
	} else {
		p.AppendGraveyard(u.BaseCardID)
	}

	if emit != nil {
		emit.Emit(match.EventUnitDestroyed, match.UnitDestroyedPayload{
			Side:     side, UnitID: u.InstanceID, CardID: u.BaseCardID,
			KillerID: killerID, Revenged: revenged, Reason: "destroyed",
		})
	}
}

// DamageHero applies damage to a player's hero life. Unlike DamageUnit
// there is no veil check and no graveyard step.
// Returns the damage actually dealt and whether life reached zero.
func DamageHero(st *match.State, emit *match.Emitter, side int, amount int) (dealt int, zero bool) {
	p := &st.Players[side]

	if p.Life <= 0 {
		return 0, true
	}

	newLife := p.Life - amount
	if newLife < 0 {
		newLife = 0
	}
	dealt = p.Life - newLife
	p.Life = newLife

	if emit != nil {
		emit.Emit(match.EventPlayerDamage, match.PlayerDamagePayload{
			Side: side, Damage: dealt, NewLife: p.Life,
		})
	}
	return dealt, p.Life == 0
}
