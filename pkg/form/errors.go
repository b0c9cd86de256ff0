package form

import "errors"

var (
	// ErrEmptyFieldName is returned when a Spec has a blank name.
	ErrEmptyFieldName = errors.New("form: field name is required")
	// ErrDuplicateField is returned when two specs share a name.
	ErrDuplicateField = errors.New("form: duplicate field")
)
