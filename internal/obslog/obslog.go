// Package obslog wraps the standard library logger with the emoji-
// prefixed lifecycle conventions used throughout this codebase, and wires
// engine.Diagnose to a bounded, sampled log line instead of a hard crash.
package obslog

import (
	"log"
	"sync"
	"sync/atomic"

	"laneclash/internal/engine"
)

// logged counts occurrences of each known discard reason. Reasons are
// fixed at compile time (see engine.Reason* constants), so the map is
// fully populated before any match goroutine starts and never mutated
// concurrently afterward — only the counters themselves are atomic.
var logged = map[string]*int64{
	engine.ReasonUnknownCard:       new(int64),
	engine.ReasonIllegalOrigin:     new(int64),
	engine.ReasonInsufficientMana:  new(int64),
	engine.ReasonIllegalPhase:      new(int64),
	engine.ReasonIllegalLane:       new(int64),
	engine.ReasonMissingTarget:     new(int64),
	engine.ReasonWrongTargetKind:   new(int64),
	engine.ReasonUnknownEffectName: new(int64),
}

// Init installs the Diagnose hook. Call once at startup, before any match
// is started.
func Init() {
	engine.Diagnose = func(reason string) {
		counter, ok := logged[reason]
		if !ok {
			log.Printf("⚠️ input discarded: %s", reason)
			return
		}
		if atomic.AddInt64(counter, 1) == 1 {
			log.Printf("⚠️ input discarded: %s", reason)
		}
	}
}

// MatchStarted logs a match's creation.
func MatchStarted(matchID, p1, p2 string) {
	log.Printf("🃏 match %s started: %s vs %s", matchID, p1, p2)
}

// MatchEnded logs a match's conclusion.
func MatchEnded(matchID string, winner int, cause string) {
	log.Printf("🏁 match %s ended: winner=%d cause=%s", matchID, winner, cause)
}

// ServerStarting logs the HTTP server's bind address.
func ServerStarting(addr string) {
	log.Printf("🌐 API server starting on %s", addr)
}

// CatalogLoaded logs the number of cards ingested, and any load diagnostics.
func CatalogLoaded(count int, diagnostics []error) {
	log.Printf("📇 catalog loaded: %d cards", count)
	for _, err := range diagnostics {
		log.Printf("⚠️ catalog: %v", err)
	}
}

// rejectionLogged samples connection-level rejections (rate limiting,
// origin checks, connection caps) the same way logged samples discarded
// inputs: log the first occurrence of a reason, then go quiet so a
// hammering client can't flood stdout.
var rejectionLogged sync.Map // reason string -> *int64

// ConnectionRejected logs the first rejection for a given reason, then
// counts silently. Call alongside the matching Prometheus counter so the
// metric stays high-frequency while the log stays readable.
func ConnectionRejected(reason string) {
	actual, _ := rejectionLogged.LoadOrStore(reason, new(int64))
	counter := actual.(*int64)
	if atomic.AddInt64(counter, 1) == 1 {
		log.Printf("🚧 connection rejected: %s", reason)
	}
}
