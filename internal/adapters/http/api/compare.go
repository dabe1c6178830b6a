package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/okian/draftboard/internal/domain/compare"
	"github.com/okian/draftboard/internal/domain/model"
)

// CompareDependencies defines the side-by-side comparison.
type CompareDependencies interface {
	Compare(ctx context.Context, left, right int, mode model.StatMode) (compare.Comparison, error)
}

// CompareHandler handles comparison requests.
type CompareHandler struct {
	deps CompareDependencies
}

// NewCompareHandler creates a new compare handler.
func NewCompareHandler(deps CompareDependencies) *CompareHandler {
	return &CompareHandler{deps: deps}
}

// HandleCompare handles GET /compare?left=&right=&mode=.
func (h *CompareHandler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	const op = "api.compare"
	q := r.URL.Query()
	left, errL := strconv.Atoi(q.Get("left"))
	right, errR := strconv.Atoi(q.Get("right"))
	if errL != nil || errR != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	mode, ok := model.ParseStatMode(q.Get("mode"))
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, fmt.Errorf("unknown mode %q", q.Get("mode"))))
		return
	}
	c, err := h.deps.Compare(r.Context(), left, right, mode)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}
