package openapi

import (
	"fmt"
	"math"

	"github.com/goliatone/go-formstate/pkg/form"
	"github.com/goliatone/go-formstate/pkg/validation"
)

// formatTags maps OpenAPI string formats to validator tags. Formats outside
// this table are ignored.
var formatTags = map[string]string{
	"email":     "email",
	"uri":       "uri",
	"url":       "url",
	"uuid":      "uuid",
	"date":      "datetime=2006-01-02",
	"date-time": "datetime=2006-01-02T15:04:05Z07:00",
	"ipv4":      "ipv4",
	"ipv6":      "ipv6",
	"hostname":  "hostname",
}

// Specs converts the operation's properties into form specs, preserving the
// property order. Rules on optional properties accept empty input.
func (op Operation) Specs() ([]form.Spec, error) {
	specs := make([]form.Spec, 0, len(op.Properties))
	for _, prop := range op.Properties {
		rules, err := prop.Rules()
		if err != nil {
			return nil, fmt.Errorf("openapi: operation %q property %q: %w", op.ID, prop.Name, err)
		}
		specs = append(specs, form.Spec{
			Name:    prop.Name,
			Initial: prop.initial(),
			Rules:   rules,
		})
	}
	return specs, nil
}

// Build returns a fresh form for the operation.
func (op Operation) Build() (form.Form, error) {
	specs, err := op.Specs()
	if err != nil {
		return form.Form{}, err
	}
	return form.New(specs)
}

// Rules returns the validation rules implied by the property constraints.
func (p Property) Rules() ([]validation.Rule, error) {
	var rules []validation.Rule
	if p.Required {
		rules = append(rules, validation.Existence())
	}

	var constraints []validation.Rule
	if p.MinLength != nil && *p.MinLength > 0 {
		constraints = append(constraints, validation.MinLen(*p.MinLength))
	}
	if p.MaxLength != nil {
		constraints = append(constraints, validation.MaxLen(*p.MaxLength))
	}
	if p.Pattern != "" {
		rule, err := validation.Pattern(p.Pattern)
		if err != nil {
			return nil, err
		}
		constraints = append(constraints, rule)
	}
	if len(p.Enum) > 0 {
		options := make([]string, 0, len(p.Enum))
		for _, value := range p.Enum {
			options = append(options, stringify(value))
		}
		constraints = append(constraints, validation.OneOf(options...))
	}
	if p.Type == "integer" {
		constraints = append(constraints, validation.Numeric())
		constraints = append(constraints, p.boundRules()...)
	}
	if tag, ok := formatTags[p.Format]; ok {
		rule, err := validation.Format(tag)
		if err != nil {
			return nil, err
		}
		constraints = append(constraints, rule)
	}

	for _, rule := range constraints {
		if !p.Required {
			rule = validation.Optional(rule)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func (p Property) boundRules() []validation.Rule {
	lo, hasLo := p.lowest()
	hi, hasHi := p.highest()
	switch {
	case hasLo && hasHi:
		return []validation.Rule{validation.NumericRange(lo, hi)}
	case hasLo:
		return []validation.Rule{validation.GreaterThan(lo - 1)}
	case hasHi:
		return []validation.Rule{validation.LessThan(hi + 1)}
	default:
		return nil
	}
}

// lowest is the smallest integer the minimum admits. A minimum at or below
// math.MinInt admits every int and reports no bound; one above math.MaxInt
// clamps to it.
func (p Property) lowest() (int, bool) {
	if p.Minimum == nil || math.IsNaN(*p.Minimum) {
		return 0, false
	}
	v := math.Ceil(*p.Minimum)
	if p.ExclusiveMinimum {
		v = math.Floor(*p.Minimum) + 1
	}
	switch {
	case v <= math.MinInt:
		return 0, false
	case v >= math.MaxInt:
		return math.MaxInt, true
	}
	return int(v), true
}

// highest is the largest integer the maximum admits. A maximum at or above
// math.MaxInt admits every int and reports no bound; one below math.MinInt
// clamps to it.
func (p Property) highest() (int, bool) {
	if p.Maximum == nil || math.IsNaN(*p.Maximum) {
		return 0, false
	}
	v := math.Floor(*p.Maximum)
	if p.ExclusiveMaximum {
		v = math.Ceil(*p.Maximum) - 1
	}
	switch {
	case v >= math.MaxInt:
		return 0, false
	case v <= math.MinInt:
		return math.MinInt, true
	}
	return int(v), true
}

func (p Property) initial() string {
	if p.Default == nil {
		return ""
	}
	return stringify(p.Default)
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1e15 {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprint(v)
	default:
		return fmt.Sprint(v)
	}
}
