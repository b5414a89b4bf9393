package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"laneclash/internal/engine"
	"laneclash/internal/matchmaking"
)

// handleGetStats reports coarse, low-cardinality counters about the
// runner and queue — safe to poll without a seat token. It also refreshes
// the corresponding Prometheus gauges, since this is the one place both
// counts are already read together.
func (h *routerHandlers) handleGetStats(w http.ResponseWriter, r *http.Request) {
	activeMatches := h.runner.Count()
	queueLen := h.queue.Len()
	UpdateActiveMatches(activeMatches)
	UpdateQueueLength(queueLen)
	writeJSON(w, map[string]interface{}{
		"activeMatches": activeMatches,
		"queueLength":   queueLen,
	})
}

// handleQueueJoin enqueues a player and, once paired, starts the match
// and issues both seats' tokens.
func (h *routerHandlers) handleQueueJoin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerID string   `json:"playerId"`
		HeroID   string   `json:"heroId"`
		Deck     []string `json:"deck"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.PlayerID == "" {
		writeError(w, "playerId is required", http.StatusBadRequest)
		return
	}

	entry := matchmaking.Entry{PlayerID: req.PlayerID, HeroID: req.HeroID, Deck: req.Deck}
	if _, err := matchmaking.ResolveHero(entry); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	pairing, paired := h.queue.Join(entry)
	if !paired {
		writeJSON(w, map[string]interface{}{"queued": true})
		return
	}

	h1, _ := matchmaking.ResolveHero(pairing.P1)
	h2, _ := matchmaking.ResolveHero(pairing.P2)

	matchID := pairing.P1.PlayerID + ":" + pairing.P2.PlayerID
	if _, ok := h.runner.Start(matchID, pairing.P1.PlayerID, pairing.P2.PlayerID, h1, h2, pairing.P1.Deck, pairing.P2.Deck, seedFromMatchID(matchID)); !ok {
		writeError(w, "match capacity reached", http.StatusServiceUnavailable)
		return
	}

	token1 := h.sess.IssueSeat(matchID, pairing.P1.PlayerID, 0)
	token2 := h.sess.IssueSeat(matchID, pairing.P2.PlayerID, 1)

	var token string
	switch req.PlayerID {
	case pairing.P1.PlayerID:
		token = token1
	case pairing.P2.PlayerID:
		token = token2
	}

	writeJSON(w, map[string]interface{}{
		"queued":  false,
		"matchId": matchID,
		"session": token,
	})
}

// handleQueueLeave removes a waiting player from the queue.
func (h *routerHandlers) handleQueueLeave(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerID string `json:"playerId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	h.queue.Leave(req.PlayerID)
	writeJSON(w, map[string]bool{"success": true})
}

// handleMatchState returns the sanitized state for the requesting seat.
func (h *routerHandlers) handleMatchState(w http.ResponseWriter, r *http.Request) {
	seat := seatFrom(r)
	matchID := chi.URLParam(r, "matchID")
	if seat == nil || seat.MatchID != matchID {
		writeError(w, "seat does not belong to this match", http.StatusForbidden)
		return
	}

	m := h.runner.Get(matchID)
	if m == nil {
		writeError(w, "match not found", http.StatusNotFound)
		return
	}
	writeJSON(w, m.View(seat.Viewer))
}

// handleMatchInput submits one input for the requesting seat's side. The
// seat's viewer index, not any client-supplied field, determines whose
// input this is — a player cannot act for the opponent.
func (h *routerHandlers) handleMatchInput(w http.ResponseWriter, r *http.Request) {
	seat := seatFrom(r)
	matchID := chi.URLParam(r, "matchID")
	if seat == nil || seat.MatchID != matchID {
		writeError(w, "seat does not belong to this match", http.StatusForbidden)
		return
	}

	var req struct {
		Kind         uint8    `json:"kind"`
		CardID       string   `json:"cardId"`
		Lane         int      `json:"lane"`
		TargetUnitID string   `json:"targetUnitId"`
		TargetIsHero bool     `json:"targetIsHero"`
		FromEX       bool     `json:"fromEx"`
		KeptCards    []string `json:"keptCards"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	m := h.runner.Get(matchID)
	if m == nil {
		writeError(w, "match not found", http.StatusNotFound)
		return
	}

	in := &engine.Input{
		Kind:         engine.InputKind(req.Kind),
		Player:       seat.Viewer,
		CardID:       req.CardID,
		Lane:         req.Lane,
		TargetUnitID: req.TargetUnitID,
		TargetIsHero: req.TargetIsHero,
		FromEX:       req.FromEX,
		KeptCards:    req.KeptCards,
	}

	accepted := m.SubmitInput(in)
	writeJSON(w, map[string]bool{"accepted": accepted})
}

// seedFromMatchID derives a deterministic seed from the match id so two
// independently running servers would never need coordination to agree
// on a value — not a security property, just a convenience default.
func seedFromMatchID(id string) int64 {
	var h int64 = 1469598103934665603
	for _, c := range id {
		h ^= int64(c)
		h *= 1099511628211
	}
	return h
}

// Helper functions (package-level for reuse)

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
