package engine

import (
	"laneclash/internal/catalog"
	"laneclash/internal/effect"
	"laneclash/internal/match"
)

// resolveAttack fires one attack resolution for u against the opposing
// side. Returns true if it struck a game-ending blow, in which case the
// caller must stop iterating immediately.
func resolveAttack(st *match.State, cat *catalog.Catalog, emit *match.Emitter, side int, u *match.Unit) bool {
	oppSide := match.Opponent(side)
	opp := &st.Players[oppSide]

	hits := 1
	if u.HasStatus("combo") {
		hits = 2
	}

	for i := 0; i < hits; i++ {
		if !stillFielded(st, side, u) {
			break
		}

		var target *match.Unit
		if !u.HasStatus("flight") {
			target = opp.Field[u.Lane]
		}

		if target == nil {
			// hero is the adversary: no unit in lane, or u has flight
			dmg := u.EffectiveAttack()
			emit.Emit(match.EventUnitAttack, match.UnitAttackPayload{
				AttackerSide: side, AttackerID: u.InstanceID,
				DefenderKind: "hero", DefenderSide: oppSide, Damage: dmg,
			})
			_, dead := effect.DamageHero(st, emit, oppSide, dmg)
			if dead {
				finishMatch(st, emit, side, "hero_defeated")
				return true
			}
			continue
		}

		v := target
		vAtk := v.EffectiveAttack()
		dmg := u.EffectiveAttack()

		emit.Emit(match.EventUnitAttack, match.UnitAttackPayload{
			AttackerSide: side, AttackerID: u.InstanceID,
			DefenderKind: "unit", DefenderSide: oppSide, DefenderID: v.InstanceID, Damage: dmg,
		})
		if i == 0 {
			emit.Emit(match.EventUnitAttack, match.UnitAttackPayload{
				AttackerSide: oppSide, AttackerID: v.InstanceID,
				DefenderKind: "unit", DefenderSide: side, DefenderID: u.InstanceID, Damage: vAtk,
			})
		}

		dealt, vDied := effect.DamageUnit(st, cat, emit, oppSide, v, dmg, u.InstanceID)
		if vDied {
			v.KillerInstanceID = u.InstanceID

			if u.HasStatus("spillover") && dealt > 0 {
				spill := dealt / 2
				for _, lane := range [2]int{u.Lane - 1, u.Lane + 1} {
					if lane < 0 || lane > 2 {
						continue
					}
					if w, ok := opp.Field[lane]; ok {
						effect.DamageUnit(st, cat, emit, oppSide, w, spill, u.InstanceID)
					}
				}
			}

			if u.HasStatus("heavy_pierce") {
				_, heroDead := effect.DamageHero(st, emit, oppSide, u.EffectiveAttack())
				if heroDead {
					finishMatch(st, emit, side, "hero_defeated")
					return true
				}
			}
		}

		if i == 0 {
			_, uDied := effect.DamageUnit(st, cat, emit, side, u, vAtk, v.InstanceID)
			if uDied {
				u.KillerInstanceID = v.InstanceID
				break
			}
		}

		if st.Players[oppSide].Life == 0 {
			finishMatch(st, emit, side, "hero_defeated")
			return true
		}
	}

	if stillFielded(st, side, u) {
		u.Gauge = 0
		u.ClearTempBuffs()
	}
	return false
}

func stillFielded(st *match.State, side int, u *match.Unit) bool {
	return st.Players[side].Field[u.Lane] == u
}

func finishMatch(st *match.State, emit *match.Emitter, winningSide int, cause string) {
	if st.Phase == match.PhaseEnded {
		return
	}
	st.Phase = match.PhaseEnded
	st.Winner = winningSide
	st.EndCause = cause
	emit.Emit(match.EventGameEnded, match.GameEndedPayload{Winner: winningSide, Cause: cause})
}
