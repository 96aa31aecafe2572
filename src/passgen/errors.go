package passgen

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable means the secure random provider could not be
	// acquired. There is no fallback: generation never proceeds with a
	// weaker source.
	ErrSourceUnavailable = errors.New("secure random source unavailable")

	// ErrGenerationFailed means a random draw failed mid-operation. The
	// whole generation call is aborted; partial output is discarded.
	ErrGenerationFailed = errors.New("secure random generation failed")

	// ErrBufferTooLarge means the requested password exceeds the buffer
	// cap and cannot be allocated.
	ErrBufferTooLarge = errors.New("requested password exceeds maximum length")
)

// ValidationReason tags the caller-correctable configuration errors.
type ValidationReason int

const (
	NoCategoryEnabled ValidationReason = iota
	TooShort
	OutOfRange
)

// ValidationError reports a rejected generation request. Required carries
// the minimum total length for TooShort; Category and Max describe the
// offending field for OutOfRange.
type ValidationError struct {
	Reason   ValidationReason
	Required int
	Category string
	Max      int
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case NoCategoryEnabled:
		return "at least one character category must be enabled"
	case TooShort:
		return fmt.Sprintf("password length must be at least %d characters", e.Required)
	case OutOfRange:
		return fmt.Sprintf("%s length must be between 0 and %d", e.Category, e.Max-1)
	}
	return "invalid generation request"
}
