package service

import "errors"

// Sentinel errors returned by Service.
var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrNotStarted     = errors.New("service not started")
	ErrNoLoader       = errors.New("no snapshot loader configured")
)
