package form

import "github.com/goliatone/go-formstate/pkg/validation"

// State is a plain-data copy of a Form, free of rule closures, suitable for
// JSON encoding and comparisons.
type State struct {
	Valid  bool         `json:"valid"`
	Fields []FieldState `json:"fields"`
}

// FieldState is the serialisable view of one field.
type FieldState struct {
	Name             string              `json:"name"`
	Input            string              `json:"input"`
	Errors           []validation.Detail `json:"errors,omitempty"`
	DependencyErrors []DependencyDetail  `json:"dependencyErrors,omitempty"`
}

// DependencyDetail is the serialisable view of a DependencyError.
type DependencyDetail struct {
	Source string            `json:"source"`
	Target string            `json:"target"`
	Error  validation.Detail `json:"error"`
}

// Snapshot returns the plain-data state of the form.
func (f Form) Snapshot() State {
	state := State{
		Valid:  f.valid,
		Fields: make([]FieldState, len(f.fields)),
	}
	for i, field := range f.fields {
		fs := FieldState{Name: field.Name, Input: field.Input}
		for _, err := range field.Errors {
			fs.Errors = append(fs.Errors, validation.Describe(err))
		}
		for _, dep := range field.DependencyErrors {
			fs.DependencyErrors = append(fs.DependencyErrors, DependencyDetail{
				Source: dep.Source,
				Target: dep.Target,
				Error:  validation.Describe(dep.Err),
			})
		}
		state.Fields[i] = fs
	}
	return state
}
