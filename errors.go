package loggy

import "errors"

// Sentinel errors for deterministic handling by callers.
var (
	ErrBlankMessage  = errors.New("message is blank")
	ErrNilError      = errors.New("error is nil")
	ErrNegativeCount = errors.New("purge count is negative")
	ErrTimerInit     = errors.New("purge timer could not be started")
)
