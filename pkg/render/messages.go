package render

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formstate/pkg/validation"
)

// NoErrors is the display string for an empty error list.
const NoErrors = "no errors"

// DefaultSeparator joins messages in DisplayString.
const DefaultSeparator = ", "

// Message renders err with its fixed English template.
func Message(err validation.Error) string {
	switch e := err.(type) {
	case validation.DoesNotExist:
		return "must not be empty"
	case validation.MinLength:
		return fmt.Sprintf("must be at least %d characters long", e.N)
	case validation.MaxLength:
		return fmt.Sprintf("must be at most %d characters long", e.N)
	case validation.NotRegex:
		return fmt.Sprintf("must match the pattern %s", e.Pattern)
	case validation.NotNumeric:
		return "must be a whole number"
	case validation.NotInRange:
		return fmt.Sprintf("must be a whole number between %d and %d", e.Min, e.Max)
	case validation.NotLessThan:
		return fmt.Sprintf("must be less than %d", e.N)
	case validation.NotGreaterThan:
		return fmt.Sprintf("must be greater than %d", e.N)
	case validation.NotOneOf:
		return fmt.Sprintf("must be one of: %s", strings.Join(e.Options, ", "))
	case validation.NotFormat:
		return fmt.Sprintf("must be a valid %s", e.Format)
	case validation.NotEqualTo:
		return fmt.Sprintf("must match %s", e.Field)
	case validation.Custom:
		return e.Message
	default:
		return "is invalid"
	}
}

// Messages renders every error in order.
func Messages(errs []validation.Error) []string {
	if len(errs) == 0 {
		return nil
	}
	out := make([]string, len(errs))
	for i, err := range errs {
		out[i] = Message(err)
	}
	return out
}

// DisplayString joins the English messages of errs with ", ", or returns
// NoErrors when errs is empty.
func DisplayString(errs []validation.Error) string {
	if len(errs) == 0 {
		return NoErrors
	}
	return strings.Join(Messages(errs), DefaultSeparator)
}
