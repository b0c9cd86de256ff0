package form

import "github.com/goliatone/go-formstate/pkg/validation"

// ValidateField runs every rule against input in order and collects the
// failures. All rules run; a nil result means the input is valid.
func ValidateField(input string, rules []validation.Rule) []validation.Error {
	var out []validation.Error
	for _, rule := range rules {
		if rule == nil {
			continue
		}
		if err := rule(input); err != nil {
			out = append(out, err)
		}
	}
	return out
}

// ValidateDependencies runs every dependency validator over inputs and
// collects the reported errors in validator order.
func ValidateDependencies(inputs Inputs, validators []DependencyValidator) []DependencyError {
	var out []DependencyError
	for _, validator := range validators {
		if validator == nil {
			continue
		}
		if dep, failed := validator(inputs); failed {
			out = append(out, dep)
		}
	}
	return out
}

// HaveSameValue requires fields a and b to hold identical input. A mismatch
// is attributed from a to b. When either field is missing from the input set
// the validator passes.
func HaveSameValue(a, b string) DependencyValidator {
	return func(in Inputs) (DependencyError, bool) {
		av, ok := in.Lookup(a)
		if !ok {
			return DependencyError{}, false
		}
		bv, ok := in.Lookup(b)
		if !ok || av == bv {
			return DependencyError{}, false
		}
		return DependencyError{
			Source: a,
			Target: b,
			Err:    validation.NotEqualTo{Field: a},
		}, true
	}
}
