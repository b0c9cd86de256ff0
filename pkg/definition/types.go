package definition

import "github.com/goliatone/go-formstate/pkg/form"

// Rule kinds accepted in definition files.
const (
	RuleRequired    = "required"
	RuleMinLength   = "minLength"
	RuleMaxLength   = "maxLength"
	RulePattern     = "pattern"
	RuleNumeric     = "numeric"
	RuleRange       = "range"
	RuleLessThan    = "lessThan"
	RuleGreaterThan = "greaterThan"
	RuleOneOf       = "oneOf"
	RuleFormat      = "format"
	RuleCustom      = "custom"
)

// DependencySameValue requires source and target to hold the same input.
const DependencySameValue = "sameValue"

// RuleConfig is one rule entry of a field. Which parameters apply depends on
// Kind: Value for length and comparison rules, Min/Max for range, Pattern for
// pattern and custom, Options for oneOf, Format for format and Message for
// custom. Optional skips the rule for empty input.
type RuleConfig struct {
	Kind     string   `json:"kind" yaml:"kind"`
	Value    *int     `json:"value,omitempty" yaml:"value,omitempty"`
	Min      *int     `json:"min,omitempty" yaml:"min,omitempty"`
	Max      *int     `json:"max,omitempty" yaml:"max,omitempty"`
	Pattern  string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Options  []string `json:"options,omitempty" yaml:"options,omitempty"`
	Format   string   `json:"format,omitempty" yaml:"format,omitempty"`
	Message  string   `json:"message,omitempty" yaml:"message,omitempty"`
	Optional bool     `json:"optional,omitempty" yaml:"optional,omitempty"`
}

// FieldConfig declares one field.
type FieldConfig struct {
	Name    string       `json:"name" yaml:"name"`
	Label   string       `json:"label,omitempty" yaml:"label,omitempty"`
	Secret  bool         `json:"secret,omitempty" yaml:"secret,omitempty"`
	Initial string       `json:"initial,omitempty" yaml:"initial,omitempty"`
	Rules   []RuleConfig `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// DependencyConfig declares one cross-field dependency.
type DependencyConfig struct {
	Kind   string `json:"kind" yaml:"kind"`
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

// Definition is a compiled form definition.
type Definition struct {
	ID     string
	Source string
	Title  string
	Fields []FieldConfig

	specs        []form.Spec
	dependencies []form.DependencyValidator
}

// Specs returns the compiled field specs in declaration order.
func (d Definition) Specs() []form.Spec {
	return append([]form.Spec(nil), d.specs...)
}

// Build returns a fresh form for the definition.
func (d Definition) Build() (form.Form, error) {
	return form.New(d.specs, form.WithDependencies(d.dependencies...))
}

// Label returns the display label of a field, defaulting to its name.
func (d Definition) Label(name string) string {
	for _, f := range d.Fields {
		if f.Name == name && f.Label != "" {
			return f.Label
		}
	}
	return name
}

// Secret reports whether a field should be prompted without echo.
func (d Definition) Secret(name string) bool {
	for _, f := range d.Fields {
		if f.Name == name {
			return f.Secret
		}
	}
	return false
}
