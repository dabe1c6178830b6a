package smoke

import "errors"

var (
	// ErrInvalidConfig is returned when the run configuration is unusable.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrUnhealthy is returned when the board service fails its health check.
	ErrUnhealthy = errors.New("service unhealthy")
	// ErrUnexpectedStatus is returned when an endpoint answers with an unexpected status code.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrVerification is returned when a board response breaks an ordering or filter rule.
	ErrVerification = errors.New("verification failed")
)
