package validation

import "errors"

var (
	// ErrInvalidPattern is returned when a pattern rule is configured with an
	// expression that does not compile.
	ErrInvalidPattern = errors.New("validation: invalid pattern")
	// ErrUnknownFormat is returned when a format rule names a tag the format
	// validator does not know.
	ErrUnknownFormat = errors.New("validation: unknown format")
)
