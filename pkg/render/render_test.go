package render_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formstate/pkg/render"
	"github.com/goliatone/go-formstate/pkg/validation"
)

type stubTranslator map[string]string

func (t stubTranslator) Translate(_ string, key string, _ ...any) (string, error) {
	if msg, ok := t[key]; ok {
		return msg, nil
	}
	return "", errors.New("missing translation")
}

func TestDisplayString(t *testing.T) {
	if got := render.DisplayString(nil); got != render.NoErrors {
		t.Fatalf("expected sentinel, got %q", got)
	}

	errs := []validation.Error{
		validation.DoesNotExist{},
		validation.MinLength{N: 3},
		validation.NotOneOf{Options: []string{"cat", "bat"}},
	}
	want := "must not be empty, must be at least 3 characters long, must be one of: cat, bat"
	if got := render.DisplayString(errs); got != want {
		t.Fatalf("DisplayString mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestMessageTemplates(t *testing.T) {
	cases := map[string]validation.Error{
		"must be at most 5 characters long":         validation.MaxLength{N: 5},
		"must match the pattern ^[a-h]+$":           validation.NotRegex{Pattern: "^[a-h]+$"},
		"must be a whole number":                    validation.NotNumeric{},
		"must be a whole number between 50 and 100": validation.NotInRange{Min: 50, Max: 100},
		"must be less than 100":                     validation.NotLessThan{N: 100},
		"must be greater than 50":                   validation.NotGreaterThan{N: 50},
		"must be a valid email":                     validation.NotFormat{Format: "email"},
		"must match password":                       validation.NotEqualTo{Field: "password"},
		"taken":                                     validation.Custom{Message: "taken"},
		"is invalid":                                nil,
	}
	for want, err := range cases {
		if got := render.Message(err); got != want {
			t.Fatalf("Message(%#v) = %q, want %q", err, got, want)
		}
	}
}

func TestFormatter_TranslatesWithFallback(t *testing.T) {
	f := render.NewFormatter(
		render.WithLocale("es"),
		render.WithTranslator(stubTranslator{"validation.does_not_exist": "es obligatorio"}),
		render.WithSeparator("; "),
	)
	got := f.Join([]validation.Error{validation.DoesNotExist{}, validation.NotNumeric{}})
	if want := "es obligatorio; must be a whole number"; got != want {
		t.Fatalf("Join mismatch: want %q got %q", want, got)
	}
}

func TestFormatter_PassesParamsAndLocale(t *testing.T) {
	var gotLocale, gotKey string
	var gotArgs []any
	translator := render.TranslatorFunc(func(locale, key string, args ...any) (string, error) {
		gotLocale, gotKey, gotArgs = locale, key, args
		return "translated", nil
	})
	f := render.NewFormatter(render.WithTranslator(translator), render.WithLocale("fr"))

	if got := f.Message(validation.MinLength{N: 4}); got != "translated" {
		t.Fatalf("unexpected message %q", got)
	}
	if gotLocale != "fr" || gotKey != "validation.min_length" {
		t.Fatalf("unexpected locale/key %q/%q", gotLocale, gotKey)
	}
	if diff := cmp.Diff([]any{map[string]any{"min": 4}}, gotArgs); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatter_OnMissing(t *testing.T) {
	var gotErr error
	f := render.NewFormatter(
		render.WithOnMissing(func(_ string, key string, params []any, err error) string {
			gotErr = err
			return "[" + key + "]"
		}),
		render.WithEmptyText("ok"),
	)
	if got := f.Join([]validation.Error{validation.NotNumeric{}}); got != "[validation.not_numeric]" {
		t.Fatalf("unexpected message %q", got)
	}
	if !errors.Is(gotErr, render.ErrMissingTranslator) {
		t.Fatalf("expected ErrMissingTranslator, got %v", gotErr)
	}
	if got := f.Join(nil); got != "ok" {
		t.Fatalf("expected custom empty text, got %q", got)
	}
}

func TestHTML(t *testing.T) {
	out, err := render.HTML("username", []validation.Error{
		validation.MinLength{N: 3},
		validation.Custom{Message: `<script>alert(1)</script>nope & <b>bad</b>`},
	})
	if err != nil {
		t.Fatalf("html: %v", err)
	}
	if !strings.HasPrefix(out, `<ul class="field-errors" data-field="username">`) {
		t.Fatalf("unexpected list opening: %s", out)
	}
	if !strings.Contains(out, "<li>must be at least 3 characters long</li>") {
		t.Fatalf("missing rendered message: %s", out)
	}
	if strings.Contains(out, "<script>") || strings.Contains(out, "<b>") {
		t.Fatalf("markup leaked into output: %s", out)
	}
	if !strings.Contains(out, "nope &amp; bad") {
		t.Fatalf("expected stripped, escaped custom message: %s", out)
	}

	empty, err := render.HTML("username", nil)
	if err != nil || empty != "" {
		t.Fatalf("expected empty output, got %q (%v)", empty, err)
	}
}

func TestHTML_CustomClass(t *testing.T) {
	out, err := render.NewFormatter(render.WithListClass("errs")).HTML("", []validation.Error{validation.NotNumeric{}})
	if err != nil {
		t.Fatalf("html: %v", err)
	}
	if want := `<ul class="errs"><li>must be a whole number</li></ul>`; out != want {
		t.Fatalf("unexpected html:\nwant %s\ngot  %s", want, out)
	}
}
