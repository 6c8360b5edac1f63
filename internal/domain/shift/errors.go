package shift

import "errors"

// Shift domain errors
var (
	// Internal only: always recovered by the resolver fallback,
	// never surfaced to callers.
	ErrShiftConfigNotFound = errors.New("shift configuration not found")
)
