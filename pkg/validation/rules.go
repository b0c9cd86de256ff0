package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf8"
)

// Rule validates a single field input. It returns nil when the input passes.
type Rule func(input string) Error

// Existence requires a non-empty input.
func Existence() Rule {
	return func(input string) Error {
		if length(input) > 0 {
			return nil
		}
		return DoesNotExist{}
	}
}

// MinLen requires at least n characters.
func MinLen(n int) Rule {
	return func(input string) Error {
		if length(input) >= n {
			return nil
		}
		return MinLength{N: n}
	}
}

// MaxLen allows at most n characters.
func MaxLen(n int) Rule {
	return func(input string) Error {
		if length(input) <= n {
			return nil
		}
		return MaxLength{N: n}
	}
}

// Regex requires the input to contain a match for re. A nil expression
// accepts every input.
func Regex(re *regexp.Regexp) Rule {
	return func(input string) Error {
		if re == nil || re.MatchString(input) {
			return nil
		}
		return NotRegex{Pattern: re.String()}
	}
}

// Pattern compiles expr and returns a Regex rule for it.
func Pattern(expr string) (Rule, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, expr, err)
	}
	return Regex(re), nil
}

// MustPattern is Pattern for expressions known at compile time.
func MustPattern(expr string) Rule {
	rule, err := Pattern(expr)
	if err != nil {
		panic(err)
	}
	return rule
}

// Numeric requires the input to parse as an integer.
func Numeric() Rule {
	return func(input string) Error {
		if _, ok := parseInt(input); ok {
			return nil
		}
		return NotNumeric{}
	}
}

// NumericRange requires an integer within [min, max]. Values below min report
// NotGreaterThan, values above max report NotLessThan and unparsable input
// reports NotInRange.
func NumericRange(min, max int) Rule {
	return func(input string) Error {
		value, ok := parseInt(input)
		switch {
		case !ok:
			return NotInRange{Min: min, Max: max}
		case value < min:
			return NotGreaterThan{N: min}
		case value > max:
			return NotLessThan{N: max}
		default:
			return nil
		}
	}
}

// LessThan requires an integer strictly below n.
func LessThan(n int) Rule {
	return func(input string) Error {
		if value, ok := parseInt(input); ok && value < n {
			return nil
		}
		return NotLessThan{N: n}
	}
}

// GreaterThan requires an integer strictly above n.
func GreaterThan(n int) Rule {
	return func(input string) Error {
		if value, ok := parseInt(input); ok && value > n {
			return nil
		}
		return NotGreaterThan{N: n}
	}
}

// OneOf requires the input to equal one of options exactly.
func OneOf(options ...string) Rule {
	allowed := append([]string(nil), options...)
	return func(input string) Error {
		for _, option := range allowed {
			if input == option {
				return nil
			}
		}
		return NotOneOf{Options: append([]string(nil), allowed...)}
	}
}

// Check reports a Custom error carrying message whenever check returns false.
// A nil check accepts every input.
func Check(message string, check func(string) bool) Rule {
	return func(input string) Error {
		if check == nil || check(input) {
			return nil
		}
		return Custom{Message: message}
	}
}

// Optional skips rule for empty input.
func Optional(rule Rule) Rule {
	return func(input string) Error {
		if input == "" || rule == nil {
			return nil
		}
		return rule(input)
	}
}

func length(input string) int {
	return utf8.RuneCountInString(input)
}

func parseInt(input string) (int, bool) {
	value, err := strconv.Atoi(input)
	return value, err == nil
}
