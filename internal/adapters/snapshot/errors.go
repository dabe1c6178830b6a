package snapshot

import "errors"

// Sentinel kinds for snapshot loading errors.
var (
	ErrNoPath = errors.New("snapshot path not configured")
	ErrDecode = errors.New("snapshot decode failed")
)
