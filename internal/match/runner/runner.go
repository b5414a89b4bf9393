// Package runner hosts one goroutine per live match, calling
// engine.Update at a fixed cadence and whenever a validated input arrives.
// The engine itself stays strictly single-threaded per call: this package
// is what supplies that discipline to a process serving many matches
// concurrently.
package runner

import (
	"log"
	"sync"
	"time"

	"laneclash/internal/catalog"
	"laneclash/internal/engine"
	"laneclash/internal/hero"
	"laneclash/internal/match"
	"laneclash/internal/view"
)

// LoggedInput is one entry in a match's replay log: a seed plus an
// ordered input log is enough to reproduce a match deterministically.
// Logging the elapsed dt alongside each input (rather than just the
// input) lets a replay re-derive the exact same tick boundaries.
type LoggedInput struct {
	Sequence uint64
	DtMs     int64
	Input    *engine.Input // nil entries are pure ticks
}

// Subscriber receives the event batch produced by each Update call.
type Subscriber func(events []match.Event)

// OnStep, if set, is called after every engine.Update with its wall-clock
// cost and the number of events it produced. The observability layer
// installs this at startup rather than this package importing it
// directly, keeping the dependency one-directional.
var OnStep func(duration time.Duration, events int)

// Match wraps one live match: its authoritative state, its append-only
// input/replay log, and its event subscribers.
type Match struct {
	ID      string
	mu      sync.Mutex
	state   *match.State
	catalog *catalog.Catalog

	replay    []LoggedInput
	replaySeq uint64

	subscribers []Subscriber

	pendingInputs chan *engine.Input
	maxQueued     int

	stop chan struct{}
}

// View returns the sanitized projection for viewer.
func (m *Match) View(viewer int) view.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return view.Sanitize(m.state, viewer)
}

// Ended reports whether the match has reached PhaseEnded.
func (m *Match) Ended() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Phase == match.PhaseEnded
}

// Replay returns a copy of the match's ordered (dt, input) log.
func (m *Match) Replay() []LoggedInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]LoggedInput(nil), m.replay...)
}

// Subscribe registers sub to receive every future event batch. Returns an
// unsubscribe function.
func (m *Match) Subscribe(sub Subscriber) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, sub)
	idx := len(m.subscribers) - 1
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if idx < len(m.subscribers) {
			m.subscribers[idx] = nil
		}
	}
}

// SubmitInput enqueues in for processing on the match's own goroutine.
// Returns false if the queue is full (the input is dropped, matching the
// engine's silent-discard posture toward invalid input).
func (m *Match) SubmitInput(in *engine.Input) bool {
	select {
	case m.pendingInputs <- in:
		return true
	default:
		return false
	}
}

// Runner owns every live match in this process.
type Runner struct {
	mu        sync.RWMutex
	matches   map[string]*Match
	catalog   *catalog.Catalog
	tickMs    int64
	maxMatch  int
	maxQueued int
}

// New constructs a Runner bound to cat, ticking every tickMs and refusing
// to host more than maxMatches concurrently. maxQueuedInputs
// bounds each match's pending-input channel.
func New(cat *catalog.Catalog, tickMs int64, maxMatches, maxQueuedInputs int) *Runner {
	return &Runner{
		matches:   make(map[string]*Match),
		catalog:   cat,
		tickMs:    tickMs,
		maxMatch:  maxMatches,
		maxQueued: maxQueuedInputs,
	}
}

// Start creates and begins ticking a new match, or returns (nil, false)
// if the runner is already hosting maxMatches.
func (r *Runner) Start(matchID, p1ID, p2ID string, h1, h2 hero.Hero, deck1, deck2 []string, seed int64) (*Match, bool) {
	r.mu.Lock()
	if len(r.matches) >= r.maxMatch {
		r.mu.Unlock()
		return nil, false
	}
	r.mu.Unlock()

	st := engine.InitialState(matchID, p1ID, p2ID, h1, h2, deck1, deck2, seed, r.catalog)

	m := &Match{
		ID:            matchID,
		state:         st,
		catalog:       r.catalog,
		pendingInputs: make(chan *engine.Input, r.maxQueued),
		stop:          make(chan struct{}),
	}

	r.mu.Lock()
	r.matches[matchID] = m
	r.mu.Unlock()

	go r.run(m)
	return m, true
}

// Get returns the match with id, or nil.
func (r *Runner) Get(matchID string) *Match {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.matches[matchID]
}

// Stop halts a match's tick goroutine and removes it from the runner.
func (r *Runner) Stop(matchID string) {
	r.mu.Lock()
	m, ok := r.matches[matchID]
	if ok {
		delete(r.matches, matchID)
	}
	r.mu.Unlock()
	if ok {
		close(m.stop)
	}
}

// Count returns the number of live matches.
func (r *Runner) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.matches)
}

func (r *Runner) run(m *Match) {
	ticker := time.NewTicker(time.Duration(r.tickMs) * time.Millisecond)
	defer ticker.Stop()

	last := time.Now()
	log.Printf("🃏 match %s started", m.ID)

	for {
		select {
		case <-m.stop:
			log.Printf("🃏 match %s stopped", m.ID)
			return

		case in := <-m.pendingInputs:
			now := time.Now()
			dt := now.Sub(last).Milliseconds()
			last = now
			r.step(m, in, dt)

		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(last).Milliseconds()
			last = now
			r.step(m, nil, dt)
		}

		if m.Ended() {
			log.Printf("🏁 match %s ended", m.ID)
			r.mu.Lock()
			delete(r.matches, m.ID)
			r.mu.Unlock()
			return
		}
	}
}

func (r *Runner) step(m *Match, in *engine.Input, dtMs int64) {
	start := time.Now()

	m.mu.Lock()
	events := engine.Update(m.state, m.catalog, in, dtMs)
	m.replaySeq++
	m.replay = append(m.replay, LoggedInput{Sequence: m.replaySeq, DtMs: dtMs, Input: in})
	subs := append([]Subscriber(nil), m.subscribers...)
	m.mu.Unlock()

	if OnStep != nil {
		OnStep(time.Since(start), len(events))
	}

	for _, sub := range subs {
		if sub != nil {
			sub(events)
		}
	}
}
