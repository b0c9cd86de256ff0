package render

import (
	"strings"

	"github.com/goliatone/go-formstate/pkg/validation"
)

// Formatter renders validation errors with optional translation.
type Formatter struct {
	translator Translator
	locale     string
	separator  string
	empty      string
	onMissing  MissingTranslationHandler
	listClass  string
}

// NewFormatter builds a Formatter. Without options it behaves like
// DisplayString.
func NewFormatter(options ...Option) *Formatter {
	f := &Formatter{
		separator: DefaultSeparator,
		empty:     NoErrors,
		listClass: "field-errors",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// Message renders a single error.
func (f *Formatter) Message(err validation.Error) string {
	if f == nil {
		return Message(err)
	}
	return translate(f.locale, err, f.translator, f.onMissing)
}

// Messages renders every error in order.
func (f *Formatter) Messages(errs []validation.Error) []string {
	if len(errs) == 0 {
		return nil
	}
	out := make([]string, len(errs))
	for i, err := range errs {
		out[i] = f.Message(err)
	}
	return out
}

// Join renders errs into one display string.
func (f *Formatter) Join(errs []validation.Error) string {
	if f == nil {
		return DisplayString(errs)
	}
	if len(errs) == 0 {
		return f.empty
	}
	return strings.Join(f.Messages(errs), f.separator)
}
