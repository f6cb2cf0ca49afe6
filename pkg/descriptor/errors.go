package descriptor

import (
	"errors"
	"fmt"
)

var (
	// ErrIncomplete is returned when fewer than 7 bytes are available. It means more data is needed, not that the
	// data is bad.
	ErrIncomplete = errors.New("incomplete volume descriptor header")

	ErrInvalidDescriptorType     = errors.New("invalid volume descriptor type")
	ErrInvalidIdentifierEncoding = errors.New("invalid volume descriptor identifier encoding")
	ErrUnknownIdentifier         = errors.New("unknown volume descriptor identifier")
	ErrUnsupportedVersion        = errors.New("unsupported volume descriptor version")
)

// Header fields named in a DecodeError.
const (
	FieldType       = "type"
	FieldIdentifier = "identifier"
	FieldVersion    = "version"
)

// DecodeError describes which header field failed to decode and the raw bytes it held.
type DecodeError struct {
	Field  string
	Offset int
	Value  []byte
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v: field %s at byte %d holds %q (% x)", e.Err, e.Field, e.Offset, e.Value, e.Value)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsStructural reports whether err is a decode failure caused by bad data, as opposed to ErrIncomplete or an
// unrelated error.
func IsStructural(err error) bool {
	return errors.Is(err, ErrInvalidDescriptorType) ||
		errors.Is(err, ErrInvalidIdentifierEncoding) ||
		errors.Is(err, ErrUnknownIdentifier) ||
		errors.Is(err, ErrUnsupportedVersion)
}
