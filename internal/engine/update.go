package engine

import (
	"laneclash/internal/catalog"
	"laneclash/internal/match"
)

// Update is the engine's single entry point: given the
// current state, an optional validated input, the elapsed time since the
// previous call, and the card catalog, it mutates st in place and returns
// the ordered event stream produced by this call. A driver calls it at a
// fixed cadence for the tick-only case (in == nil) and again, with dtMs
// 0, whenever an input arrives out of band.
func Update(st *match.State, cat *catalog.Catalog, in *Input, dtMs int64) []match.Event {
	st.Tick++
	emit := match.NewEmitter(st.Tick)

	ApplyInput(st, cat, emit, in)
	RunTick(st, cat, emit, dtMs)

	return emit.Events()
}
