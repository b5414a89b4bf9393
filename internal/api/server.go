package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"laneclash/internal/matchmaking"
	"laneclash/internal/obslog"
)

// Server is the HTTP API server with WebSocket support, combining the
// match-domain router with a WebSocket hub for per-seat state pushes.
type Server struct {
	runner      RunnerInterface
	queue       *matchmaking.Queue
	sessions    *SessionManager
	router      *chi.Mux
	wsHub       *WebSocketHub
	rateLimiter *IPRateLimiter
}

// NewServer creates a new API server with default production configuration.
//
// IMPORTANT: Background workers do NOT start until Start() is called. This
// enables testing by allowing the server to be constructed without starting
// goroutines or opening network listeners.
//
// For testing HTTP endpoints without WebSocket support, use NewRouter() directly.
func NewServer(runner RunnerInterface, queue *matchmaking.Queue, sessions *SessionManager) *Server {
	s := &Server{
		runner:   runner,
		queue:    queue,
		sessions: sessions,
	}

	s.rateLimiter = NewIPRateLimiter(DefaultRateLimitConfig)
	s.wsHub = NewWebSocketHub(runner, sessions)

	s.router = NewRouter(RouterConfig{
		Runner:      runner,
		Queue:       queue,
		Sessions:    sessions,
		RateLimiter: s.rateLimiter,
	})
	s.setupWebSocketRoutes()

	return s
}

// setupWebSocketRoutes adds the WebSocket endpoint, which needs access to
// the wsHub instance and so can't be part of the generic NewRouter factory.
func (s *Server) setupWebSocketRoutes() {
	s.router.Get("/ws", s.handleWS)
}

// Start begins the HTTP server. This is the ONLY method that opens a
// network listener. Call it once; to stop the process, signal it.
func (s *Server) Start(addr string) error {
	obslog.ServerStarting(addr)
	return http.ListenAndServe(addr, s.router)
}

// Router returns the HTTP handler for use with httptest.
//
// Example:
//
//	server := api.NewServer(runner, queue, sessions)
//	ts := httptest.NewServer(server.Router())
//	defer ts.Close()
func (s *Server) Router() http.Handler {
	return s.router
}

// Stop performs graceful shutdown of background workers.
func (s *Server) Stop() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	s.wsHub.HandleWebSocket(w, r)
}
