// Package matchmaking is a thin, mechanical FIFO queue: it pairs two
// submitted player ids into a new match and hands off to the engine's
// initial-state factory. No persistence, no skill rating — the first
// two entrants are paired.
package matchmaking

import (
	"fmt"
	"sync"

	"laneclash/internal/catalog"
	"laneclash/internal/hero"
)

// Entry is one player's pending queue ticket.
type Entry struct {
	PlayerID string
	HeroID   string
	Deck     []string
}

// Pairing is two matched entries ready to seed a match.
type Pairing struct {
	P1, P2 Entry
}

// Queue holds waiting entries until two are available to pair.
type Queue struct {
	mu      sync.Mutex
	waiting []Entry
}

// New returns an empty queue.
func New() *Queue {
	return &Queue{}
}

// Join enqueues an entry and returns a Pairing, true if this entrant
// completed a pair; otherwise the entrant waits for the next Join.
func (q *Queue) Join(e Entry) (Pairing, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, w := range q.waiting {
		if w.PlayerID == e.PlayerID {
			continue // already queued, ignore duplicate join
		}
		q.waiting = append(q.waiting[:i], q.waiting[i+1:]...)
		return Pairing{P1: w, P2: e}, true
	}

	q.waiting = append(q.waiting, e)
	return Pairing{}, false
}

// Leave removes playerID from the waiting list, if present.
func (q *Queue) Leave(playerID string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, w := range q.waiting {
		if w.PlayerID == playerID {
			q.waiting = append(q.waiting[:i], q.waiting[i+1:]...)
			return
		}
	}
}

// Len returns the number of entrants currently waiting.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.waiting)
}

// ResolveHero validates an entry's declared hero id against the hero
// table, returning a descriptive error on miss.
func ResolveHero(e Entry) (hero.Hero, error) {
	h, ok := hero.Lookup(e.HeroID)
	if !ok {
		return hero.Hero{}, fmt.Errorf("matchmaking: unknown hero id %q for player %q", e.HeroID, e.PlayerID)
	}
	return h, nil
}

// ValidateDeck checks every card id in e.Deck resolves against cat,
// returning the first unknown id as an error.
func ValidateDeck(e Entry, cat *catalog.Catalog) error {
	for _, id := range e.Deck {
		if _, ok := cat.Resolve(id); !ok {
			return fmt.Errorf("matchmaking: player %q deck references unknown card %q", e.PlayerID, id)
		}
	}
	return nil
}
