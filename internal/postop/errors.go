package postop

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrUnsupportedType  = errors.New("unsupported postop type")
	ErrUnsupportedAlg   = errors.New("unsupported postop algorithm")
	ErrUnsupportedToken = errors.New("unsupported postop token")
)

// ParseError describes one chain segment the parser skipped.
type ParseError struct {
	Index   int    // Position of the segment in the chain
	Segment string // Segment text as written
	Err     error  // Cause, wraps one of the package or tensor sentinels
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("postop segment %d %q: %v", e.Index, e.Segment, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}
