// Package filter narrows and orders a PlayerView collection.
package filter

import "github.com/okian/draftboard/internal/domain/model"

// Mode selects how the result is ordered.
type Mode string

// Modes.
const (
	// ModeBoard orders by average rank, unranked last.
	ModeBoard Mode = "board"
	// ModeSearch keeps the input order.
	ModeSearch Mode = "search"
)

// ParseMode accepts "board" or "search"; empty means board.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case "", ModeBoard:
		return ModeBoard, true
	case ModeSearch:
		return ModeSearch, true
	default:
		return "", false
	}
}

// Spec is a set of independent predicates joined with AND. A nil or zero
// field places no constraint.
type Spec struct {
	// Name is a case-insensitive substring of bio.name.
	Name string
	// Interest must equal the last report's interest.
	Interest *model.Interest
	// Type must equal the last report's draft category.
	Type *model.DraftType
	// MinGrade is a lower bound on the last report's grade. Players without
	// reports, or with a null grade, count as grade 0.
	MinGrade *int
	// InternationalOnly keeps players for whom Bio.IsInternational holds.
	InternationalOnly bool
	// MaxRank keeps players whose average rank is at most MaxRank.
	MaxRank *float64
	Mode    Mode
}

// ReportIndex holds each player's reports in append order.
type ReportIndex map[int][]model.Report

// Last returns a player's most recently appended report.
func (r ReportIndex) Last(playerID int) (model.Report, bool) {
	return model.Last(r[playerID])
}
