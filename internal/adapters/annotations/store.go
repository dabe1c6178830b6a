// Package annotations persists per-player bookmarks and scouting reports.
//
// Keys follow the layout presentation layers already share:
// scout-bookmark-<playerId> holds a boolean flag and reports-<playerId> holds
// the append-ordered report list.
package annotations

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/okian/draftboard/internal/domain/model"
)

// Key prefixes.
const (
	BookmarkPrefix = "scout-bookmark-"
	ReportsPrefix  = "reports-"
)

// Store reads and writes annotations keyed by player id. It makes no
// atomicity guarantee across keys.
type Store interface {
	// Bookmarked reports whether the player's bookmark flag is set.
	Bookmarked(ctx context.Context, playerID int) (bool, error)
	// SetBookmark sets or clears the player's bookmark flag.
	SetBookmark(ctx context.Context, playerID int, on bool) error
	// BookmarkedIDs returns every bookmarked player id, ascending.
	BookmarkedIDs(ctx context.Context) ([]int, error)

	// AppendReport validates r, assigns an id and appends it.
	AppendReport(ctx context.Context, playerID int, r model.Report) (model.Report, error)
	// Reports returns the player's reports in append order.
	Reports(ctx context.Context, playerID int) ([]model.Report, error)
	// AllReports returns every player's reports in append order.
	AllReports(ctx context.Context) (map[int][]model.Report, error)
}

// BookmarkKey is the store key of a player's bookmark flag.
func BookmarkKey(playerID int) string {
	return BookmarkPrefix + strconv.Itoa(playerID)
}

// ReportsKey is the store key of a player's report list.
func ReportsKey(playerID int) string {
	return ReportsPrefix + strconv.Itoa(playerID)
}

// playerIDFromKey extracts the id from a prefixed key. Only the canonical
// spelling produced by BookmarkKey and ReportsKey is accepted, so keys such
// as "reports-007" or "reports-+7" are ignored.
func playerIDFromKey(key, prefix string) (int, bool) {
	rest, ok := strings.CutPrefix(key, prefix)
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(rest)
	if err != nil || strconv.Itoa(id) != rest {
		return 0, false
	}
	return id, true
}

// NormalizeReport trims and validates r and fills defaults: interest Medium,
// type BPA and a fresh id.
func NormalizeReport(r model.Report) (model.Report, error) {
	r.Name = strings.TrimSpace(r.Name)
	r.Text = strings.TrimSpace(r.Text)
	switch {
	case r.Name == "":
		return model.Report{}, fmt.Errorf("%w: missing author", ErrInvalidReport)
	case r.Text == "":
		return model.Report{}, fmt.Errorf("%w: missing text", ErrInvalidReport)
	case r.Grade != nil && (*r.Grade < model.MinGrade || *r.Grade > model.MaxGrade):
		return model.Report{}, fmt.Errorf("%w: grade %d outside %d-%d", ErrInvalidReport, *r.Grade, model.MinGrade, model.MaxGrade)
	}

	if r.Interest == "" {
		r.Interest = model.InterestMedium
	} else if i, ok := model.ParseInterest(string(r.Interest)); ok {
		r.Interest = i
	} else {
		return model.Report{}, fmt.Errorf("%w: unknown interest %q", ErrInvalidReport, r.Interest)
	}

	if r.Type == "" {
		r.Type = model.DraftBPA
	} else if t, ok := model.ParseDraftType(string(r.Type)); ok {
		r.Type = t
	} else {
		return model.Report{}, fmt.Errorf("%w: unknown type %q", ErrInvalidReport, r.Type)
	}

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return r, nil
}

func sortedIDs(ids []int) []int {
	sort.Ints(ids)
	return ids
}
