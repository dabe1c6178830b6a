package service

import (
	"strings"

	"github.com/okian/draftboard/internal/domain/model"
)

// Session identifies the scout making a request. It replaces ambient login
// state and is passed explicitly to the calls that depend on it.
type Session struct {
	ScoutEmail string
}

// Owns reports whether r was written by this scout: the author field
// contains the session email, compared case-insensitively.
func (s Session) Owns(r model.Report) bool {
	email := strings.ToLower(strings.TrimSpace(s.ScoutEmail))
	if email == "" {
		return false
	}
	return strings.Contains(strings.ToLower(r.Name), email)
}
