package field

import "errors"

var (
	// ErrInvalidFormat means the token matches no recognized syntactic form.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrOutOfRange means a value or range endpoint falls outside the
	// field's allowed bounds.
	ErrOutOfRange = errors.New("value outside allowed range")

	// ErrInvalidRange means a dash range whose start is greater than its end.
	ErrInvalidRange = errors.New("invalid range values supplied")
)
