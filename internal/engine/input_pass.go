package engine

import (
	"laneclash/internal/catalog"
	"laneclash/internal/match"
)

// applyPass handles the active-response-pass input: a pass from a
// player who does not currently hold priority is ignored; otherwise the
// pass is recorded, and either the window resolves (both sides have now
// passed consecutively, or the stack is empty) or priority flips to the
// other side to keep the window open.
func applyPass(st *match.State, cat *catalog.Catalog, emit *match.Emitter, in *Input) {
	if !st.AR.Active || st.AR.Priority != in.Player {
		diagnose(ReasonIllegalPhase)
		return
	}

	if st.AR.RecordPass(in.Player) {
		ResolveActiveResponse(st, cat, emit)
		return
	}

	st.AR.FlipPriorityAfterPass(in.Player)
}
