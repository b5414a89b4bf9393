// Package effect implements the effect resolver: a fixed
// table of roughly sixty handler functions, one per DSL effect name, each
// mutating the match state and emitting events through a uniform Context.
package effect

import (
	"laneclash/internal/catalog"
	"laneclash/internal/match"
	"laneclash/internal/rng"
)

// Context bundles everything a handler needs: the mutable state, the
// read-only catalog, who cast the effect, the optional source/target unit,
// and the event sink. One Context is built per invocation.
type Context struct {
	State   *match.State
	Catalog *catalog.Catalog

	Source     int // casting player's side index
	SourceUnit *match.Unit // nil for a hero-cast or action-card effect with no unit

	// Target is filled in by the input processor / resolver dispatch for
	// tokens that declare a target; most area/random effects ignore it and
	// compute their own targets.
	TargetUnit   *match.Unit
	TargetPlayer int // match.NoPriority-style sentinel -1 when absent

	Emit *match.Emitter
	RNG  *rng.Source
}

// Me returns the casting player's state.
func (c *Context) Me() *match.PlayerState {
	return &c.State.Players[c.Source]
}

// Opp returns the non-casting player's state.
func (c *Context) Opp() *match.PlayerState {
	return &c.State.Players[match.Opponent(c.Source)]
}

// OppIndex returns the non-casting player's side index.
func (c *Context) OppIndex() int {
	return match.Opponent(c.Source)
}

// Handler is the signature every effect-table entry implements:
// (value, context) -> state mutated in place, events appended to ctx.Emit.
type Handler func(value int, ctx *Context)
