package model

import "strings"

// Interest is the scouting department's interest level in a player.
type Interest string

// Interest levels.
const (
	InterestHigh   Interest = "High"
	InterestMedium Interest = "Medium"
	InterestLow    Interest = "Low"
)

// DraftType is the draft category a report files the player under.
type DraftType string

// Draft categories.
const (
	DraftNeed DraftType = "Need"
	DraftWant DraftType = "Want"
	DraftBPA  DraftType = "BPA"
)

// Grade bounds for a report.
const (
	MinGrade = 0
	MaxGrade = 10
)

// ParseInterest matches s case-insensitively against the interest levels.
func ParseInterest(s string) (Interest, bool) {
	for _, i := range []Interest{InterestHigh, InterestMedium, InterestLow} {
		if strings.EqualFold(strings.TrimSpace(s), string(i)) {
			return i, true
		}
	}
	return "", false
}

// ParseDraftType matches s case-insensitively against the draft categories.
func ParseDraftType(s string) (DraftType, bool) {
	for _, t := range []DraftType{DraftNeed, DraftWant, DraftBPA} {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, true
		}
	}
	return "", false
}

// Report is a scout's annotation on a player. Reports for a player form an
// append-ordered list; the last appended report is the most recent.
type Report struct {
	ID       string    `json:"id,omitempty"`
	Name     string    `json:"name"`
	Text     string    `json:"text"`
	Grade    *int      `json:"grade"`
	Interest Interest  `json:"interest"`
	Type     DraftType `json:"type"`
}

// GradeOrZero returns the grade, treating a null grade as 0.
func (r Report) GradeOrZero() int {
	if r.Grade == nil {
		return 0
	}
	return *r.Grade
}

// Last returns the most recently appended report.
func Last(reports []Report) (Report, bool) {
	if len(reports) == 0 {
		return Report{}, false
	}
	return reports[len(reports)-1], true
}
