package api

import (
	"laneclash/internal/hero"
	"laneclash/internal/match/runner"
)

// RunnerAdapter wraps a *runner.Runner so it satisfies RunnerInterface.
// Go interfaces require exact method signatures, and runner.Runner's
// methods return *runner.Match rather than the MatchInterface this
// package's handlers depend on, so a thin wrapper bridges the two.
type RunnerAdapter struct {
	Runner *runner.Runner
}

func (a RunnerAdapter) Start(matchID, p1ID, p2ID string, h1, h2 hero.Hero, deck1, deck2 []string, seed int64) (MatchInterface, bool) {
	m, ok := a.Runner.Start(matchID, p1ID, p2ID, h1, h2, deck1, deck2, seed)
	if !ok {
		return nil, false
	}
	return m, true
}

func (a RunnerAdapter) Get(matchID string) MatchInterface {
	m := a.Runner.Get(matchID)
	if m == nil {
		return nil
	}
	return m
}

func (a RunnerAdapter) Count() int {
	return a.Runner.Count()
}

var _ MatchInterface = (*runner.Match)(nil)
