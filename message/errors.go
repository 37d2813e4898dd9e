package message

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned by the indexed part accessors of
	// Multipart when the index is negative or not less than the number of
	// parts.
	ErrIndexOutOfRange = errors.New("part index out of range")

	// ErrUnknownCharset is returned by NewTextCharset when the charset is not
	// a registered IANA charset name or alias.
	ErrUnknownCharset = errors.New("unknown charset")
)

func indexOutOfRange(ix, n int) error {
	return fmt.Errorf("%w: index %d with %d parts", ErrIndexOutOfRange, ix, n)
}

// WriteError is returned when a message cannot be written to disk. Err holds
// the underlying cause.
type WriteError struct {
	Path string
	Err  error
}

// Error returns the error message.
func (e *WriteError) Error() string {
	return fmt.Sprintf("unable to write message to %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *WriteError) Unwrap() error {
	return e.Err
}
