package form

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-formstate/pkg/validation"
)

// Form is an immutable validation snapshot. Methods that change state return a
// new Form and leave the receiver untouched.
type Form struct {
	fields       []Field
	index        map[string]int
	dependencies []DependencyValidator
	valid        bool
}

// New builds a form with one field per spec. Every field starts at its
// Initial input and is validated immediately; dependency validators run as
// well, so Valid is accurate for pre-populated forms. Names are kept exactly
// as given; a blank name is rejected.
func New(specs []Spec, options ...Option) (Form, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	f := Form{
		fields: make([]Field, 0, len(specs)),
		index:  make(map[string]int, len(specs)),
	}
	f.dependencies = append(f.dependencies, cfg.dependencies...)

	for _, spec := range specs {
		name := spec.Name
		if strings.TrimSpace(name) == "" {
			return Form{}, ErrEmptyFieldName
		}
		if _, exists := f.index[name]; exists {
			return Form{}, fmt.Errorf("%w %q", ErrDuplicateField, name)
		}
		f.index[name] = len(f.fields)
		f.fields = append(f.fields, Field{
			Name:    name,
			Input:   spec.Initial,
			Rules:   append([]validation.Rule(nil), spec.Rules...),
			initial: spec.Initial,
		})
		for _, dep := range spec.Dependencies {
			if dep != nil {
				f.dependencies = append(f.dependencies, dep)
			}
		}
	}

	f.revalidate()
	return f, nil
}

// MustNew is New for statically declared forms.
func MustNew(specs []Spec, options ...Option) Form {
	f, err := New(specs, options...)
	if err != nil {
		panic(err)
	}
	return f
}

// UpdateInput sets the input of the named field and returns the revalidated
// form. Unknown names return the receiver unchanged.
func (f Form) UpdateInput(name, value string) Form {
	idx, ok := f.index[name]
	if !ok {
		return f
	}

	next := f.clone()
	field := &next.fields[idx]
	field.Input = value
	field.Errors = ValidateField(value, field.Rules)
	next.applyDependencies()
	return next
}

// UpdateInputs applies several updates in name order. Unknown names are
// ignored.
func (f Form) UpdateInputs(values map[string]string) Form {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	next := f
	for _, name := range names {
		next = next.UpdateInput(name, values[name])
	}
	return next
}

// Reset returns the form with every field back at its initial input.
func (f Form) Reset() Form {
	next := f.clone()
	for i := range next.fields {
		next.fields[i].Input = next.fields[i].initial
	}
	next.revalidate()
	return next
}

// Valid reports whether no field carries field-level or dependency errors.
func (f Form) Valid() bool {
	return f.valid
}

// Value returns the current input of name, or "" for unknown fields.
func (f Form) Value(name string) string {
	if idx, ok := f.index[name]; ok {
		return f.fields[idx].Input
	}
	return ""
}

// Errors returns the field-level errors of name followed by every dependency
// error whose source or target is name.
func (f Form) Errors(name string) []validation.Error {
	var out []validation.Error
	if idx, ok := f.index[name]; ok {
		out = append(out, f.fields[idx].Errors...)
	}
	for _, field := range f.fields {
		for _, dep := range field.DependencyErrors {
			if dep.Source == name || dep.Target == name {
				out = append(out, dep.Err)
			}
		}
	}
	return out
}

// Field returns a copy of the named field.
func (f Form) Field(name string) (Field, bool) {
	idx, ok := f.index[name]
	if !ok {
		return Field{}, false
	}
	field := f.fields[idx]
	field.Errors = append([]validation.Error(nil), field.Errors...)
	field.DependencyErrors = append([]DependencyError(nil), field.DependencyErrors...)
	field.Rules = append([]validation.Rule(nil), field.Rules...)
	return field, true
}

// Names lists the fields in declaration order.
func (f Form) Names() []string {
	names := make([]string, len(f.fields))
	for i, field := range f.fields {
		names[i] = field.Name
	}
	return names
}

// Inputs returns a copy of every field's current input.
func (f Form) Inputs() Inputs {
	inputs := make(Inputs, len(f.fields))
	for _, field := range f.fields {
		inputs[field.Name] = field.Input
	}
	return inputs
}

// InvalidFields lists, in declaration order, the fields for which Errors is
// non-empty.
func (f Form) InvalidFields() []string {
	var out []string
	for _, field := range f.fields {
		if len(f.Errors(field.Name)) > 0 {
			out = append(out, field.Name)
		}
	}
	return out
}

func (f Form) clone() Form {
	next := f
	next.fields = append([]Field(nil), f.fields...)
	return next
}

// revalidate recomputes every field, then dependencies and validity.
func (f *Form) revalidate() {
	for i := range f.fields {
		f.fields[i].Errors = ValidateField(f.fields[i].Input, f.fields[i].Rules)
	}
	f.applyDependencies()
}

// applyDependencies re-runs all dependency validators, redistributes their
// errors onto target fields and recomputes validity. Slices are replaced, never
// appended in place, so snapshots sharing backing arrays stay intact.
func (f *Form) applyDependencies() {
	for i := range f.fields {
		f.fields[i].DependencyErrors = nil
	}
	for _, dep := range ValidateDependencies(f.Inputs(), f.dependencies) {
		idx, ok := f.index[dep.Target]
		if !ok {
			continue
		}
		target := &f.fields[idx]
		target.DependencyErrors = append(target.DependencyErrors, dep)
	}

	f.valid = true
	for _, field := range f.fields {
		if !field.Valid() {
			f.valid = false
			return
		}
	}
}
