package render

import (
	"errors"
	"strings"

	"github.com/goliatone/go-formstate/pkg/validation"
)

// ErrMissingTranslator is passed to MissingTranslationHandler when no
// Translator is configured.
var ErrMissingTranslator = errors.New("render: translator is not configured")

// Translator resolves a message key for a locale. Implementations receive the
// variant parameters (validation.Params) as the single argument.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate implements Translator.
func (fn TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return fn(locale, key, args...)
}

// MissingTranslationHandler decides what to display when a key has no
// translation. params carries the variant parameters plus the English
// fallback under "default".
type MissingTranslationHandler func(locale, key string, params []any, err error) string

// TranslationKey returns the catalog key for err, e.g. "validation.min_length".
func TranslationKey(err validation.Error) string {
	if err == nil {
		return ""
	}
	return "validation." + err.Code()
}

func missingTranslationDefault(_ string, key string, params []any, _ error) string {
	for _, p := range params {
		if m, ok := p.(map[string]any); ok {
			if fallback, ok := m["default"].(string); ok && strings.TrimSpace(fallback) != "" {
				return fallback
			}
		}
	}
	return key
}

func translate(locale string, err validation.Error, t Translator, onMissing MissingTranslationHandler) string {
	fallback := Message(err)
	key := TranslationKey(err)
	if key == "" {
		return fallback
	}

	params := validation.Params(err)
	if params == nil {
		params = make(map[string]any, 1)
	}

	if t == nil {
		if onMissing != nil {
			return onMissing(locale, key, []any{withDefault(params, fallback)}, ErrMissingTranslator)
		}
		return fallback
	}

	result, terr := t.Translate(locale, key, params)
	if terr == nil && strings.TrimSpace(result) != "" {
		return result
	}

	if onMissing != nil {
		return onMissing(locale, key, []any{withDefault(params, fallback)}, terr)
	}
	return fallback
}

func withDefault(params map[string]any, fallback string) map[string]any {
	out := make(map[string]any, len(params)+1)
	for k, v := range params {
		out[k] = v
	}
	out["default"] = fallback
	return out
}
