package share

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidIdentifier   = errors.New("share: identifier must be a positive decimal integer")
	ErrDuplicateIdentifier = errors.New("share: duplicate identifier")
	ErrInvalidThreshold    = errors.New("share: threshold must be at least 1")
	ErrInsufficientShares  = errors.New("share: fewer shares than the threshold")
	ErrShareCountMismatch  = errors.New("share: declared share count differs from the shares present")
)

// Error is returned when a single share is malformed, and names it.
type Error struct {
	// ID is the identifier of the share as it appeared in the input.
	ID string
	// Err is the underlying error
	Err error
}

func (e Error) Error() string {
	return fmt.Sprintf("share %q: %s", e.ID, e.Err)
}

func (e Error) Unwrap() error {
	return e.Err
}
