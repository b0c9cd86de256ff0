package form

import "github.com/goliatone/go-formstate/pkg/validation"

// Spec declares one field of a form.
type Spec struct {
	Name    string
	Rules   []validation.Rule
	Initial string
	// Dependencies are appended to the form-level dependency validators in
	// spec order, after any passed through WithDependencies.
	Dependencies []DependencyValidator
}

// Field is the current state of one input.
type Field struct {
	Name             string
	Input            string
	Errors           []validation.Error
	DependencyErrors []DependencyError
	Rules            []validation.Rule

	initial string
}

// Valid reports whether the field carries no field-level and no dependency
// errors.
func (f Field) Valid() bool {
	return len(f.Errors) == 0 && len(f.DependencyErrors) == 0
}

// DependencyError is a cross-field violation attributed to Target.
type DependencyError struct {
	Source string
	Target string
	Err    validation.Error
}

// Inputs maps field names to their current input.
type Inputs map[string]string

// Lookup returns the input for name and whether the field exists.
func (in Inputs) Lookup(name string) (string, bool) {
	value, ok := in[name]
	return value, ok
}

// DependencyValidator inspects the full input set and reports at most one
// cross-field error.
type DependencyValidator func(Inputs) (DependencyError, bool)

// Option configures a Form at construction.
type Option func(*config)

type config struct {
	dependencies []DependencyValidator
}

// WithDependencies registers form-level dependency validators.
func WithDependencies(validators ...DependencyValidator) Option {
	return func(cfg *config) {
		for _, v := range validators {
			if v != nil {
				cfg.dependencies = append(cfg.dependencies, v)
			}
		}
	}
}
