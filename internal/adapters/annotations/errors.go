package annotations

import "errors"

// Sentinel kinds for annotation store errors.
var (
	ErrInvalidReport = errors.New("invalid report")
	ErrStore         = errors.New("annotation store failed")
)
