package api

import (
	"net/http"
	"time"
)

// StatsProvider reports the board's load and coverage counters.
type StatsProvider interface {
	GetStats() map[string]any
}

// StatsHandler serves GET /stats.
type StatsHandler struct {
	provider  StatsProvider
	startedAt time.Time
}

// NewStatsHandler creates a stats handler; uptime is measured from now.
func NewStatsHandler(provider StatsProvider) *StatsHandler {
	return &StatsHandler{provider: provider, startedAt: time.Now()}
}

type statsResponse struct {
	Board         map[string]any `json:"board"`
	UptimeSeconds float64        `json:"uptimeSeconds"`
}

// HandleStats writes the board counters and the server uptime.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, _ *http.Request) {
	board := h.provider.GetStats()
	if board == nil {
		board = map[string]any{}
	}
	writeJSON(w, http.StatusOK, statsResponse{
		Board:         board,
		UptimeSeconds: time.Since(h.startedAt).Seconds(),
	})
}
