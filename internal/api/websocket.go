package api

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"laneclash/internal/match"
)

const (
	// MaxWSConnectionsTotal is the maximum number of WebSocket connections allowed.
	MaxWSConnectionsTotal = 500

	// MaxWSConnectionsPerIP is the maximum WebSocket connections per IP.
	MaxWSConnectionsPerIP = 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if IsAllowedOrigin(origin) {
			return true
		}
		log.Printf("⚠️ WebSocket connection rejected from origin: %s", origin)
		RecordConnectionRejected(ReasonBadOrigin)
		return false
	},
}

// wsClient tracks one WebSocket connection bound to a single seat.
type wsClient struct {
	conn   *websocket.Conn
	ip     string
	viewer int
	send   chan []byte
}

// WebSocketHub fans out sanitized match views to their connected seats.
// One connection serves exactly one (matchID, viewer) pair — there is no
// global broadcast, since view sanitization is inherently per-viewer.
type WebSocketHub struct {
	mu        sync.RWMutex
	clients   map[*websocket.Conn]*wsClient
	wsLimiter *WebSocketRateLimiter

	runner RunnerInterface
	sess   *SessionManager
}

// NewWebSocketHub creates a hub bound to the given runner and session
// manager, used to authorize and locate each incoming connection's match.
func NewWebSocketHub(runner RunnerInterface, sess *SessionManager) *WebSocketHub {
	return &WebSocketHub{
		clients:   make(map[*websocket.Conn]*wsClient),
		wsLimiter: NewWebSocketRateLimiter(MaxWSConnectionsPerIP),
		runner:    runner,
		sess:      sess,
	}
}

// ClientCount returns the number of connected clients.
func (h *WebSocketHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// HandleWebSocket upgrades a connection, validates its seat token, and
// subscribes it to that match's event stream. Every event batch triggers
// a fresh sanitized snapshot pushed to this one client only.
func (h *WebSocketHub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	ip := GetClientIP(r)

	h.mu.RLock()
	total := len(h.clients)
	h.mu.RUnlock()
	if total >= MaxWSConnectionsTotal {
		log.Printf("⚠️ WebSocket connection rejected: total limit reached (%d)", total)
		RecordConnectionRejected(ReasonTotalWSLimit)
		http.Error(w, "Too many connections", http.StatusServiceUnavailable)
		return
	}
	if !h.wsLimiter.Allow(ip) {
		log.Printf("⚠️ WebSocket connection rejected from %s: per-IP limit reached", ip)
		RecordConnectionRejected(ReasonPerIPWSLimit)
		http.Error(w, "Too many connections from your IP", http.StatusTooManyRequests)
		return
	}

	seat := h.sess.Validate(r)
	if seat == nil {
		h.wsLimiter.Release(ip)
		http.Error(w, "invalid or missing match session", http.StatusUnauthorized)
		return
	}
	m := h.runner.Get(seat.MatchID)
	if m == nil {
		h.wsLimiter.Release(ip)
		http.Error(w, "match not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		h.wsLimiter.Release(ip)
		return
	}

	client := &wsClient{conn: conn, ip: ip, viewer: seat.Viewer, send: make(chan []byte, 32)}
	h.mu.Lock()
	h.clients[conn] = client
	h.mu.Unlock()
	log.Printf("📱 seat %s connected to match %s (%d total)", seat.PlayerID, seat.MatchID, h.ClientCount())
	UpdateWSConnections(h.ClientCount())

	h.pushSnapshot(client, m)
	unsubscribe := m.Subscribe(func(events []match.Event) {
		h.pushSnapshot(client, m)
	})

	go h.writePump(client)
	h.readPump(client, unsubscribe)
}

func (h *WebSocketHub) pushSnapshot(client *wsClient, m MatchInterface) {
	payload, err := json.Marshal(map[string]interface{}{
		"event": "match:state",
		"data":  m.View(client.viewer),
	})
	if err != nil {
		return
	}
	select {
	case client.send <- payload:
	default:
		// backpressure: drop, the next snapshot supersedes this one
	}
}

func (h *WebSocketHub) writePump(client *wsClient) {
	for msg := range client.send {
		if err := client.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
		IncrementWSMessages()
	}
}

func (h *WebSocketHub) readPump(client *wsClient, unsubscribe func()) {
	defer func() {
		unsubscribe()
		h.mu.Lock()
		delete(h.clients, client.conn)
		h.mu.Unlock()
		close(client.send)
		h.wsLimiter.Release(client.ip)
		client.conn.Close()
		log.Printf("📱 client disconnected (%d remaining)", h.ClientCount())
		UpdateWSConnections(h.ClientCount())
	}()

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			return
		}
		// Input arrives over the REST endpoint, not this socket; incoming
		// frames here are only used to detect disconnect.
	}
}
