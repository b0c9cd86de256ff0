package definition

import "errors"

var (
	// ErrUnknownRule is returned for a rule kind the loader does not know.
	ErrUnknownRule = errors.New("definition: unknown rule kind")
	// ErrUnknownDependency is returned for an unsupported dependency kind.
	ErrUnknownDependency = errors.New("definition: unknown dependency kind")
	// ErrUnknownField is returned when a dependency names an undeclared field.
	ErrUnknownField = errors.New("definition: unknown field")
	// ErrMissingParam is returned when a rule lacks a required parameter.
	ErrMissingParam = errors.New("definition: missing rule parameter")
	// ErrDuplicateForm is returned when two files define the same form id.
	ErrDuplicateForm = errors.New("definition: duplicate form")
	// ErrFormNotFound is returned by Store.Build for unknown ids.
	ErrFormNotFound = errors.New("definition: form not found")
)
