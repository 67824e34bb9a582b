package recommend

import (
	"github.com/okoskine/routina/internal/errors"
)

// Every failure in this package is deterministic for given inputs, so none of
// these are retryable. Callers distinguish them with errors.Is.
var (
	ErrInvalidInput             = errors.NewSentinel("invalid input")
	ErrMissingProfileData       = errors.NewSentinel("missing profile data")
	ErrNoRoutinesAvailable      = errors.NewSentinel("no routines available")
	ErrNoSafeRoutineFound       = errors.NewSentinel("no safe routine found")
	ErrNoCompatibleRoutineFound = errors.NewSentinel("no compatible routine found")
)

// NoSafeRoutineError reports that the safety filter rejected the whole
// catalog. It carries the distinct rejection reasons so the caller can render
// them as precautions. errors.Is matches it against ErrNoSafeRoutineFound.
type NoSafeRoutineError struct {
	Precautions []string
}

func (e *NoSafeRoutineError) Error() string {
	return "no safe routine found for profile"
}

func (e *NoSafeRoutineError) Is(target error) bool {
	return target == ErrNoSafeRoutineFound
}
