package openapi_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formstate/pkg/openapi"
	"github.com/goliatone/go-formstate/pkg/validation"
)

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestNewOperation_SortsProperties(t *testing.T) {
	op, err := openapi.NewOperation("create", "POST", "/things", []openapi.Property{{Name: "zeta"}, {Name: "alpha"}})
	if err != nil {
		t.Fatalf("new operation: %v", err)
	}
	if op.Properties[0].Name != "alpha" || op.Properties[1].Name != "zeta" {
		t.Fatalf("expected sorted properties, got %+v", op.Properties)
	}
	if _, err := openapi.NewOperation("", "POST", "/things", nil); err == nil {
		t.Fatalf("expected error for empty id")
	}
}

func TestPropertyRules(t *testing.T) {
	cases := map[string]struct {
		prop  openapi.Property
		input string
		want  []validation.Error
	}{
		"required empty": {
			prop: openapi.Property{Required: true, MinLength: intPtr(3)},
			want: []validation.Error{validation.DoesNotExist{}, validation.MinLength{N: 3}},
		},
		"optional empty passes": {
			prop: openapi.Property{MinLength: intPtr(3), Pattern: "^[a-z]+$"},
		},
		"optional constraints apply": {
			prop:  openapi.Property{MaxLength: intPtr(2), Pattern: "^[a-z]+$"},
			input: "ABC",
			want:  []validation.Error{validation.MaxLength{N: 2}, validation.NotRegex{Pattern: "^[a-z]+$"}},
		},
		"enum stringified": {
			prop:  openapi.Property{Required: true, Enum: []any{float64(1), float64(2), "three"}},
			input: "4",
			want:  []validation.Error{validation.NotOneOf{Options: []string{"1", "2", "three"}}},
		},
		"inclusive range": {
			prop:  openapi.Property{Required: true, Type: "integer", Minimum: floatPtr(1), Maximum: floatPtr(5)},
			input: "6",
			want:  []validation.Error{validation.NotLessThan{N: 5}},
		},
		"exclusive range": {
			prop:  openapi.Property{Required: true, Type: "integer", Minimum: floatPtr(1), Maximum: floatPtr(5), ExclusiveMinimum: true, ExclusiveMaximum: true},
			input: "1",
			want:  []validation.Error{validation.NotGreaterThan{N: 2}},
		},
		"minimum only": {
			prop:  openapi.Property{Required: true, Type: "integer", Minimum: floatPtr(10)},
			input: "9",
			want:  []validation.Error{validation.NotGreaterThan{N: 9}},
		},
		"exclusive maximum only": {
			prop:  openapi.Property{Required: true, Type: "integer", Maximum: floatPtr(10), ExclusiveMaximum: true},
			input: "10",
			want:  []validation.Error{validation.NotLessThan{N: 10}},
		},
		"int64 maximum is unbounded": {
			prop:  openapi.Property{Required: true, Type: "integer", Maximum: floatPtr(9223372036854775807)},
			input: "5",
		},
		"minimum below int range is unbounded": {
			prop:  openapi.Property{Required: true, Type: "integer", Minimum: floatPtr(-1e19)},
			input: "5",
		},
		"zero to int64 maximum accepts": {
			prop:  openapi.Property{Required: true, Type: "integer", Minimum: floatPtr(0), Maximum: floatPtr(9223372036854775807)},
			input: "5",
		},
		"zero to int64 maximum rejects negative": {
			prop:  openapi.Property{Required: true, Type: "integer", Minimum: floatPtr(0), Maximum: floatPtr(9223372036854775807)},
			input: "-1",
			want:  []validation.Error{validation.NotGreaterThan{N: -1}},
		},
		"minimum above int range clamps": {
			prop:  openapi.Property{Required: true, Type: "integer", Minimum: floatPtr(1e19)},
			input: "5",
			want:  []validation.Error{validation.NotGreaterThan{N: math.MaxInt - 1}},
		},
		"integer not numeric": {
			prop:  openapi.Property{Required: true, Type: "integer"},
			input: "ten",
			want:  []validation.Error{validation.NotNumeric{}},
		},
		"format": {
			prop:  openapi.Property{Required: true, Format: "email"},
			input: "nope",
			want:  []validation.Error{validation.NotFormat{Format: "email"}},
		},
		"date format": {
			prop:  openapi.Property{Format: "date"},
			input: "2024-02-30",
			want:  []validation.Error{validation.NotFormat{Format: "datetime=2006-01-02"}},
		},
		"unknown format ignored": {
			prop:  openapi.Property{Required: true, Format: "binary"},
			input: "anything",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rules, err := tc.prop.Rules()
			if err != nil {
				t.Fatalf("rules: %v", err)
			}
			var got []validation.Error
			for _, rule := range rules {
				if err := rule(tc.input); err != nil {
					got = append(got, err)
				}
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPropertyRules_InvalidPattern(t *testing.T) {
	_, err := openapi.Property{Pattern: "("}.Rules()
	if !errors.Is(err, validation.ErrInvalidPattern) {
		t.Fatalf("expected ErrInvalidPattern, got %v", err)
	}
}

func TestOperationBuild(t *testing.T) {
	op, err := openapi.NewOperation("signup", "POST", "/signup", []openapi.Property{
		{Name: "username", Required: true},
		{Name: "age", Type: "integer", Default: float64(21), Minimum: floatPtr(18)},
	})
	if err != nil {
		t.Fatalf("new operation: %v", err)
	}

	f, err := op.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if f.Value("age") != "21" {
		t.Fatalf("expected default to be stringified, got %q", f.Value("age"))
	}
	if diff := cmp.Diff([]string{"username"}, f.InvalidFields()); diff != "" {
		t.Fatalf("invalid fields mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSource(t *testing.T) {
	src, err := openapi.ParseSource("https://example.com/api.yaml")
	if err != nil || src.Kind() != openapi.SourceKindURL {
		t.Fatalf("expected url source, got %v %v", src, err)
	}
	src, err = openapi.ParseSource("./specs/../api.yaml")
	if err != nil || src.Kind() != openapi.SourceKindFile || src.Location() != "api.yaml" {
		t.Fatalf("expected cleaned file source, got %v %v", src, err)
	}
	if _, err := openapi.ParseSource("  "); err == nil {
		t.Fatalf("expected error for empty location")
	}
	if _, err := openapi.SourceFromURL("ftp://example.com/api.yaml"); err == nil {
		t.Fatalf("expected error for unsupported scheme")
	}
}
