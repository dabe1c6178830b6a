package api

import (
	"context"
	"net/http"

	"github.com/okian/draftboard/internal/domain/types"
)

// BookmarksDependencies defines the watchlist operations.
type BookmarksDependencies interface {
	SetBookmark(ctx context.Context, id int, on bool) error
	Watchlist(ctx context.Context) ([]types.Row, error)
}

// BookmarksHandler handles bookmark and watchlist requests.
type BookmarksHandler struct {
	deps BookmarksDependencies
}

// NewBookmarksHandler creates a new bookmarks handler.
func NewBookmarksHandler(deps BookmarksDependencies) *BookmarksHandler {
	return &BookmarksHandler{deps: deps}
}

type bookmarkResponse struct {
	PlayerID   int  `json:"playerId"`
	Bookmarked bool `json:"bookmarked"`
}

// HandleSet handles PUT /players/{playerID}/bookmark.
func (h *BookmarksHandler) HandleSet(w http.ResponseWriter, r *http.Request) {
	h.set(w, r, true)
}

// HandleClear handles DELETE /players/{playerID}/bookmark.
func (h *BookmarksHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	h.set(w, r, false)
}

func (h *BookmarksHandler) set(w http.ResponseWriter, r *http.Request, on bool) {
	const op = "api.set_bookmark"
	id, err := playerID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := h.deps.SetBookmark(r.Context(), id, on); err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, bookmarkResponse{PlayerID: id, Bookmarked: on})
}

// HandleWatchlist handles GET /watchlist.
func (h *BookmarksHandler) HandleWatchlist(w http.ResponseWriter, r *http.Request) {
	const op = "api.watchlist"
	rows, err := h.deps.Watchlist(r.Context())
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
