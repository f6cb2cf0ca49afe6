package sequence

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDescriptorsFound means the data ran out before a single valid descriptor was decoded.
	ErrNoDescriptorsFound = errors.New("no volume descriptors found")
	// ErrSequenceTooLong means no terminator was found within the sector bound.
	ErrSequenceTooLong = errors.New("volume descriptor sequence too long")
)

// MalformedSequenceError reports a sector inside the sequence whose header failed to decode. Err is the
// underlying descriptor decode error.
type MalformedSequenceError struct {
	Index int
	Err   error
}

func (e *MalformedSequenceError) Error() string {
	return fmt.Sprintf("malformed volume descriptor sequence at sector %d: %v", e.Index, e.Err)
}

func (e *MalformedSequenceError) Unwrap() error {
	return e.Err
}
