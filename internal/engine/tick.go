package engine

import (
	"laneclash/internal/catalog"
	"laneclash/internal/match"
)

// ManaRegenBaseRate is the fraction of max mana regenerated per second
// absent any mp_boost.
const ManaRegenBaseRate = 0.3

// RunTick advances combat by dtMs milliseconds. It is a
// no-op outside PhasePlaying — the mulligan branch only ever processes
// inputs (handled separately by the input processor).
func RunTick(st *match.State, cat *catalog.Catalog, emit *match.Emitter, dtMs int64) {
	if st.Phase != match.PhasePlaying {
		return
	}

	if st.AR.Active {
		st.AR.TimerMs -= int(dtMs)
		if st.AR.TimerMs <= 0 {
			ResolveActiveResponse(st, cat, emit)
		}
		return
	}

	for side := 0; side < 2; side++ {
		regenMana(st, emit, side, dtMs)
	}

	for side := 0; side < 2; side++ {
		if advanceSideAttacks(st, cat, emit, side, dtMs) {
			return // a game-ending blow was struck mid-tick
		}
	}

	checkGameEnd(st, emit, "life_reached_zero")
}

func regenMana(st *match.State, emit *match.Emitter, side int, dtMs int64) {
	p := &st.Players[side]
	boost := 0
	for _, u := range p.LiveUnits() {
		boost += u.MPBoost()
	}
	gain := ManaRegenBaseRate * (1 + float64(boost)/100) * float64(dtMs) / 1000
	if gain <= 0 {
		return
	}
	newMana := p.Mana + gain
	if newMana > p.MaxMana {
		newMana = p.MaxMana
	}
	if newMana == p.Mana {
		return
	}
	p.Mana = newMana
	if emit != nil {
		emit.Emit(match.EventManaRecovered, match.ManaRecoveredPayload{Side: side, NewMana: p.Mana})
	}
}

// advanceSideAttacks iterates side's units (ids captured first so a unit
// destroyed earlier this tick by a sibling's spillover/heavy_pierce is
// skipped cleanly), accruing attack gauge and firing attack resolution.
// Returns true if a game-ending blow was struck.
func advanceSideAttacks(st *match.State, cat *catalog.Catalog, emit *match.Emitter, side int, dtMs int64) bool {
	p := &st.Players[side]
	ids := make([]string, 0, len(p.Field))
	for _, u := range p.LiveUnits() {
		ids = append(ids, u.InstanceID)
	}

	for _, id := range ids {
		u := p.FindUnit(id)
		if u == nil {
			continue // died earlier this tick
		}

		if u.HaltMs > 0 {
			u.HaltMs -= int(dtMs)
			if u.HaltMs < 0 {
				u.HaltMs = 0
			}
			continue
		}

		interval := u.AttackIntervalMs
		if interval <= 0 {
			interval = 1
		}
		u.Gauge += float64(dtMs) / float64(interval)
		if u.Gauge > 1.0 {
			u.Gauge = 1.0
		}
		if u.Gauge >= 1.0 {
			if resolveAttack(st, cat, emit, side, u) {
				return true
			}
		}
	}
	return false
}

// checkGameEnd transitions the match to PhaseEnded the first time either
// hero's life reaches zero, emitting game-ended.
// No-op once the match has already ended.
func checkGameEnd(st *match.State, emit *match.Emitter, cause string) bool {
	if st.Phase == match.PhaseEnded {
		return false
	}
	for side := 0; side < 2; side++ {
		if st.Players[side].Life <= 0 {
			st.Phase = match.PhaseEnded
			st.Winner = match.Opponent(side)
			st.EndCause = cause
			if emit != nil {
				emit.Emit(match.EventGameEnded, match.GameEndedPayload{Winner: st.Winner, Cause: cause})
			}
			return true
		}
	}
	return false
}
