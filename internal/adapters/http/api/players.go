package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/okian/draftboard/internal/domain/filter"
	"github.com/okian/draftboard/internal/domain/model"
	"github.com/okian/draftboard/internal/domain/types"
)

// PlayersDependencies defines the board and profile reads.
type PlayersDependencies interface {
	Board(ctx context.Context, spec filter.Spec) ([]types.Row, error)
	Search(ctx context.Context, name string) ([]types.Row, error)
	Profile(ctx context.Context, id int) (types.Profile, error)
	TopN() int
}

// PlayersHandler handles board, search and profile requests.
type PlayersHandler struct {
	deps PlayersDependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps PlayersDependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

// HandleBoard handles GET /players with optional filter query parameters.
func (h *PlayersHandler) HandleBoard(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_board"
	spec, err := parseSpec(r.URL.Query(), h.deps.TopN())
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	rows, err := h.deps.Board(r.Context(), spec)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// HandleSearch handles GET /players/search?name=.
func (h *PlayersHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	const op = "api.search_players"
	rows, err := h.deps.Search(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// HandleProfile handles GET /players/{playerID}.
func (h *PlayersHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_player"
	id, err := playerID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	profile, err := h.deps.Profile(r.Context(), id)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// parseSpec turns board query parameters into a filter spec. top=true caps
// the average rank at topN; with maxRank present the tighter bound wins.
func parseSpec(q url.Values, topN int) (filter.Spec, error) {
	var spec filter.Spec
	spec.Name = q.Get("name")

	mode, ok := filter.ParseMode(q.Get("mode"))
	if !ok {
		return spec, fmt.Errorf("unknown mode %q", q.Get("mode"))
	}
	spec.Mode = mode

	if v := q.Get("interest"); v != "" {
		i, ok := model.ParseInterest(v)
		if !ok {
			return spec, fmt.Errorf("unknown interest %q", v)
		}
		spec.Interest = &i
	}
	if v := q.Get("type"); v != "" {
		t, ok := model.ParseDraftType(v)
		if !ok {
			return spec, fmt.Errorf("unknown type %q", v)
		}
		spec.Type = &t
	}
	if v := q.Get("minGrade"); v != "" {
		g, err := strconv.Atoi(v)
		if err != nil || g < model.MinGrade || g > model.MaxGrade {
			return spec, fmt.Errorf("minGrade must be an integer in %d-%d", model.MinGrade, model.MaxGrade)
		}
		spec.MinGrade = &g
	}
	if v := q.Get("international"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return spec, fmt.Errorf("international: %w", err)
		}
		spec.InternationalOnly = b
	}
	if v := q.Get("maxRank"); v != "" {
		m, err := strconv.ParseFloat(v, 64)
		if err != nil || m <= 0 {
			return spec, fmt.Errorf("maxRank must be a positive number")
		}
		spec.MaxRank = &m
	}
	if v := q.Get("top"); v != "" {
		top, err := strconv.ParseBool(v)
		if err != nil {
			return spec, fmt.Errorf("top: %w", err)
		}
		if n := float64(topN); top && (spec.MaxRank == nil || n < *spec.MaxRank) {
			spec.MaxRank = &n
		}
	}
	return spec, nil
}
