package api

import (
	"net/http"

	"laneclash/internal/engine"
	"laneclash/internal/hero"
	"laneclash/internal/matchmaking"
	"laneclash/internal/view"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RunnerInterface defines the match-runner methods the API layer calls.
// This interface enables mocking for tests without spinning up real
// per-match goroutines. Keep this minimal - only the methods the API
// layer actually calls.
type RunnerInterface interface {
	// Start creates and begins ticking a new match.
	Start(matchID, p1ID, p2ID string, h1, h2 hero.Hero, deck1, deck2 []string, seed int64) (MatchInterface, bool)
	// Get returns a live match by id, or nil.
	Get(matchID string) MatchInterface
	// Count returns the number of live matches.
	Count() int
}

// MatchInterface defines the per-match methods the API layer calls.
type MatchInterface interface {
	View(viewer int) view.State
	SubmitInput(in *engine.Input) bool
	Ended() bool
}

// QueueInterface defines the matchmaking methods the API layer calls.
type QueueInterface interface {
	Join(e matchmaking.Entry) (matchmaking.Pairing, bool)
	Leave(playerID string)
	Len() int
}

// RouterConfig contains all dependencies needed to construct the HTTP
// router. This struct is designed for dependency injection and
// testability.
//
// Example usage in tests:
//
//	cfg := api.RouterConfig{
//	    Runner: mockRunner,
//	    Queue:  mockQueue,
//	    RateLimitConfig: &api.RateLimitConfig{
//	        RequestsPerSecond: 1000, // High limit for tests
//	        Burst:             1000,
//	    },
//	}
//	router := api.NewRouter(cfg)
//	ts := httptest.NewServer(router)
type RouterConfig struct {
	// Runner hosts live matches (required).
	Runner RunnerInterface

	// Queue pairs waiting players into new matches (required).
	Queue QueueInterface

	// Sessions issues and validates per-seat tokens (required).
	Sessions *SessionManager

	// RateLimiter is an optional pre-configured rate limiter.
	// If nil, a new one will be created using RateLimitConfig.
	RateLimiter *IPRateLimiter

	// RateLimitConfig is optional configuration for the rate limiter.
	// Only used if RateLimiter is nil. If both are nil, uses DefaultRateLimitConfig.
	RateLimitConfig *RateLimitConfig

	// CORSOrigins is an optional list of allowed CORS origins.
	// If nil, uses the default localhost-only origins.
	CORSOrigins []string

	// DisableLogging disables the request logger middleware (useful for benchmarks).
	DisableLogging bool
}

// routerHandlers holds the handler functions for the router.
// This is used internally to pass handlers to route setup.
type routerHandlers struct {
	runner RunnerInterface
	queue  QueueInterface
	sess   *SessionManager
}

// NewRouter constructs the HTTP router with all middleware and routes.
//
// IMPORTANT: This function is PURE - it has no side effects:
//   - No goroutines are started
//   - No network listeners are opened
//   - No background workers are launched
//
// This makes it safe to use in tests with httptest.NewServer.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Middleware - Order matters!
	if !cfg.DisableLogging {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(metricsMiddleware)

	// Rate limiting (BEFORE CORS to reject early and save CPU)
	rateLimiter := cfg.RateLimiter
	if rateLimiter == nil {
		rateLimitCfg := DefaultRateLimitConfig
		if cfg.RateLimitConfig != nil {
			rateLimitCfg = *cfg.RateLimitConfig
		}
		rateLimiter = NewIPRateLimiter(rateLimitCfg)
	}
	r.Use(rateLimiter.Middleware)

	// CORS configuration
	corsOrigins := cfg.CORSOrigins
	if corsOrigins == nil {
		corsOrigins = []string{
			"http://localhost:*",
			"http://127.0.0.1:*",
		}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	h := &routerHandlers{
		runner: cfg.Runner,
		queue:  cfg.Queue,
		sess:   cfg.Sessions,
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/stats", h.handleGetStats)

		// Matchmaking
		r.Post("/queue/join", h.handleQueueJoin)
		r.Post("/queue/leave", h.handleQueueLeave)

		// Authenticated, per-seat routes
		r.Group(func(r chi.Router) {
			r.Use(cfg.Sessions.RequireSeat)
			r.Get("/match/{matchID}/state", h.handleMatchState)
			r.Post("/match/{matchID}/input", h.handleMatchInput)
		})
	})

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"service":"laneclash"}`))
	})

	return r
}

// GetRateLimiterFromRouter is a helper to extract the rate limiter from a
// configured router's equivalent settings. Useful for tests that need to
// verify rate limiting behavior.
func GetRateLimiterFromRouter(cfg RouterConfig) *IPRateLimiter {
	if cfg.RateLimiter != nil {
		return cfg.RateLimiter
	}
	rateLimitCfg := DefaultRateLimitConfig
	if cfg.RateLimitConfig != nil {
		rateLimitCfg = *cfg.RateLimitConfig
	}
	return NewIPRateLimiter(rateLimitCfg)
}
