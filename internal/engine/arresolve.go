package engine

import (
	"laneclash/internal/catalog"
	"laneclash/internal/effect"
	"laneclash/internal/match"
)

// ResolveActiveResponse pops the Active Response stack in LIFO order,
// firing each action_effect-marked card's remaining tokens against the
// entry's owner, then closes the window.
func ResolveActiveResponse(st *match.State, cat *catalog.Catalog, emit *match.Emitter) {
	ar := &st.AR

	popped := make([]match.AREntry, len(ar.Stack))
	for i := range ar.Stack {
		popped[i] = ar.Stack[len(ar.Stack)-1-i]
	}

	for len(ar.Stack) > 0 {
		idx := len(ar.Stack) - 1
		entry := ar.Stack[idx]
		ar.Stack = ar.Stack[:idx]

		def, ok := cat.Resolve(entry.CardID)
		if !ok || !effect.IsActionEffectDeferred(def.Script) {
			continue
		}
		ctx := &effect.Context{
			State:        st, Catalog: cat,
			Source:       entry.PlayerIndex,
			Emit:         emit, RNG: st.RNG,
			TargetPlayer: match.NoPriority,
		}
		effect.FireAllNonStatus(def.Script, ctx)
	}

	if emit != nil {
		emit.Emit(match.EventActiveResponseResolved, match.ActiveResponseResolvedPayload{Stack: popped})
	}

	st.Players[0].BlueMana = 0
	st.Players[1].BlueMana = 0
	ar.Close()
}
