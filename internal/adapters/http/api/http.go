// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/okian/draftboard/internal/adapters/annotations"
	service "github.com/okian/draftboard/internal/app"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	PlayersDependencies
	ReportsDependencies
	BookmarksDependencies
	CompareDependencies
	HealthDependencies
}

// Server wires HTTP routes for the board API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	playersHandler   *PlayersHandler
	reportsHandler   *ReportsHandler
	bookmarksHandler *BookmarksHandler
	compareHandler   *CompareHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(deps),
		statsHandler:     NewStatsHandler(statsProvider),
		playersHandler:   NewPlayersHandler(deps),
		reportsHandler:   NewReportsHandler(deps),
		bookmarksHandler: NewBookmarksHandler(deps),
		compareHandler:   NewCompareHandler(deps),
	}
}

// Register attaches all HTTP routes to router.
func (s *Server) Register(_ context.Context, router *mux.Router) {
	router.Use(RecoveryMiddleware)

	router.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz")).Methods(http.MethodGet)
	router.Handle("/metrics", s.healthHandler.MetricsHandler()).Methods(http.MethodGet)
	router.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats")).Methods(http.MethodGet)

	// Specific paths before the {playerID} patterns.
	router.HandleFunc("/players", MetricsMiddleware(s.playersHandler.HandleBoard, "players")).Methods(http.MethodGet)
	router.HandleFunc("/players/search", MetricsMiddleware(s.playersHandler.HandleSearch, "players_search")).Methods(http.MethodGet)
	router.HandleFunc("/players/{playerID:[0-9]+}", MetricsMiddleware(s.playersHandler.HandleProfile, "player")).Methods(http.MethodGet)
	router.HandleFunc("/players/{playerID:[0-9]+}/reports", MetricsMiddleware(s.reportsHandler.HandleList, "player_reports")).Methods(http.MethodGet)
	router.HandleFunc("/players/{playerID:[0-9]+}/reports", MetricsMiddleware(s.reportsHandler.HandleSubmit, "player_reports")).Methods(http.MethodPost)
	router.HandleFunc("/players/{playerID:[0-9]+}/bookmark", MetricsMiddleware(s.bookmarksHandler.HandleSet, "bookmark")).Methods(http.MethodPut)
	router.HandleFunc("/players/{playerID:[0-9]+}/bookmark", MetricsMiddleware(s.bookmarksHandler.HandleClear, "bookmark")).Methods(http.MethodDelete)

	router.HandleFunc("/watchlist", MetricsMiddleware(s.bookmarksHandler.HandleWatchlist, "watchlist")).Methods(http.MethodGet)
	router.HandleFunc("/reports/mine", MetricsMiddleware(s.reportsHandler.HandleMine, "reports_mine")).Methods(http.MethodGet)
	router.HandleFunc("/compare", MetricsMiddleware(s.compareHandler.HandleCompare, "compare")).Methods(http.MethodGet)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeServiceError maps service and store failures onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrPlayerNotFound):
		writeError(w, http.StatusNotFound, "not_found", WrapKind(op, ErrNotFound, err))
	case errors.Is(err, annotations.ErrInvalidReport):
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
	case errors.Is(err, service.ErrNotStarted):
		writeError(w, http.StatusServiceUnavailable, "unavailable", WrapKind(op, ErrUnavailable, err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}

// playerID reads the {playerID} route variable.
func playerID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)["playerID"])
	if err != nil {
		return 0, err
	}
	return id, nil
}
