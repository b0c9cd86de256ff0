package form_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formstate/pkg/form"
	"github.com/goliatone/go-formstate/pkg/validation"
)

func signupForm(t *testing.T) form.Form {
	t.Helper()
	f, err := form.New([]form.Spec{
		{Name: "username", Rules: []validation.Rule{validation.Existence(), validation.MinLen(3), validation.MustPattern("^[a-z]+$")}},
		{Name: "age", Rules: []validation.Rule{validation.NumericRange(18, 120)}},
		{Name: "password", Rules: []validation.Rule{validation.MinLen(4)}},
		{Name: "confirm"},
	}, form.WithDependencies(form.HaveSameValue("password", "confirm")))
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	return f
}

func TestNew_ValidatesEmptyInputs(t *testing.T) {
	f := signupForm(t)

	if f.Valid() {
		t.Fatalf("expected fresh form to be invalid")
	}
	want := []validation.Error{
		validation.DoesNotExist{},
		validation.MinLength{N: 3},
		validation.NotRegex{Pattern: "^[a-z]+$"},
	}
	if diff := cmp.Diff(want, f.Errors("username")); diff != "" {
		t.Fatalf("username errors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]validation.Error{validation.NotInRange{Min: 18, Max: 120}}, f.Errors("age")); diff != "" {
		t.Fatalf("age errors mismatch (-want +got):\n%s", diff)
	}
	if errs := f.Errors("confirm"); len(errs) != 0 {
		t.Fatalf("expected no confirm errors, got %#v", errs)
	}
}

func TestNew_RejectsBadSpecs(t *testing.T) {
	if _, err := form.New([]form.Spec{{Name: " "}}); !errors.Is(err, form.ErrEmptyFieldName) {
		t.Fatalf("expected ErrEmptyFieldName, got %v", err)
	}
	if _, err := form.New([]form.Spec{{Name: "a"}, {Name: "a"}}); !errors.Is(err, form.ErrDuplicateField) {
		t.Fatalf("expected ErrDuplicateField, got %v", err)
	}
}

func TestNew_KeepsNamesVerbatim(t *testing.T) {
	f := form.MustNew(
		[]form.Spec{
			{Name: " a", Rules: []validation.Rule{validation.Existence()}},
			{Name: "b"},
		},
		form.WithDependencies(form.HaveSameValue(" a", "b")),
	)

	if diff := cmp.Diff([]string{" a", "b"}, f.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	f = f.UpdateInput(" a", "x")
	if got := f.Value(" a"); got != "x" {
		t.Fatalf("expected padded name to be updatable, got %q", got)
	}
	if got := f.Value("a"); got != "" {
		t.Fatalf("expected trimmed name to be unknown, got %q", got)
	}

	want := []validation.Error{validation.NotEqualTo{Field: " a"}}
	if diff := cmp.Diff(want, f.Errors("b")); diff != "" {
		t.Fatalf("dependency errors mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_NoFieldsIsValid(t *testing.T) {
	f := form.MustNew(nil)
	if !f.Valid() {
		t.Fatalf("empty form should be valid")
	}
}

func TestNew_RunsDependenciesForInitialValues(t *testing.T) {
	f := form.MustNew([]form.Spec{
		{Name: "a", Initial: "x"},
		{Name: "b", Initial: "y", Dependencies: []form.DependencyValidator{form.HaveSameValue("a", "b")}},
	})
	if f.Valid() {
		t.Fatalf("expected mismatched defaults to make the form invalid")
	}
	if got := f.Value("b"); got != "y" {
		t.Fatalf("expected initial value y, got %q", got)
	}
}

func TestUpdateInput_BecomesValid(t *testing.T) {
	f := signupForm(t)
	f = f.UpdateInput("username", "alice")
	f = f.UpdateInput("age", "30")
	f = f.UpdateInput("password", "secret")
	f = f.UpdateInput("confirm", "secret")

	if !f.Valid() {
		t.Fatalf("expected valid form, invalid fields: %v", f.InvalidFields())
	}
	if got := f.Value("username"); got != "alice" {
		t.Fatalf("unexpected username %q", got)
	}
}

func TestUpdateInput_MultipleErrorsNoShortCircuit(t *testing.T) {
	f := signupForm(t).UpdateInput("username", "A")
	want := []validation.Error{
		validation.MinLength{N: 3},
		validation.NotRegex{Pattern: "^[a-z]+$"},
	}
	if diff := cmp.Diff(want, f.Errors("username")); diff != "" {
		t.Fatalf("username errors mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateInput_Idempotent(t *testing.T) {
	base := signupForm(t).UpdateInput("password", "abcd")
	once := base.UpdateInput("confirm", "abc")
	twice := once.UpdateInput("confirm", "abc")

	if diff := cmp.Diff(once.Snapshot(), twice.Snapshot()); diff != "" {
		t.Fatalf("second identical update changed state (-once +twice):\n%s", diff)
	}
}

func TestUpdateInput_UnknownFieldIsNoop(t *testing.T) {
	f := signupForm(t).UpdateInput("username", "bob")
	got := f.UpdateInput("nonexistent", "x")

	if diff := cmp.Diff(f.Snapshot(), got.Snapshot()); diff != "" {
		t.Fatalf("unknown field update changed state (-want +got):\n%s", diff)
	}
	if got.Value("nonexistent") != "" {
		t.Fatalf("unknown field should read as empty")
	}
}

func TestUpdateInput_DoesNotMutatePreviousSnapshot(t *testing.T) {
	before := signupForm(t).UpdateInput("password", "abcd")
	snapshot := before.Snapshot()

	_ = before.UpdateInput("confirm", "zzzz")
	_ = before.UpdateInput("username", "carol")

	if diff := cmp.Diff(snapshot, before.Snapshot()); diff != "" {
		t.Fatalf("previous snapshot was mutated (-want +got):\n%s", diff)
	}
}

func TestDependencyRoundTrip(t *testing.T) {
	f := form.MustNew([]form.Spec{{Name: "a"}, {Name: "b"}}, form.WithDependencies(form.HaveSameValue("a", "b")))

	f = f.UpdateInput("a", "x").UpdateInput("b", "x")
	if !f.Valid() {
		t.Fatalf("expected equal values to be valid")
	}
	if len(f.Errors("a")) != 0 || len(f.Errors("b")) != 0 {
		t.Fatalf("expected no errors, got a=%v b=%v", f.Errors("a"), f.Errors("b"))
	}

	f = f.UpdateInput("a", "y")
	want := []validation.Error{validation.NotEqualTo{Field: "a"}}
	if diff := cmp.Diff(want, f.Errors("a")); diff != "" {
		t.Fatalf("source errors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, f.Errors("b")); diff != "" {
		t.Fatalf("target errors mismatch (-want +got):\n%s", diff)
	}
	if f.Valid() {
		t.Fatalf("expected mismatch to invalidate the form")
	}

	field, ok := f.Field("b")
	if !ok {
		t.Fatalf("expected field b")
	}
	wantDeps := []form.DependencyError{{Source: "a", Target: "b", Err: validation.NotEqualTo{Field: "a"}}}
	if diff := cmp.Diff(wantDeps, field.DependencyErrors); diff != "" {
		t.Fatalf("dependency errors should live on the target (-want +got):\n%s", diff)
	}
	if source, _ := f.Field("a"); len(source.DependencyErrors) != 0 {
		t.Fatalf("source field should not store the dependency error")
	}
}

func TestHaveSameValue_MissingFieldPasses(t *testing.T) {
	validator := form.HaveSameValue("a", "missing")
	if _, failed := validator(form.Inputs{"a": "x"}); failed {
		t.Fatalf("expected missing field to be a no-op")
	}
}

func TestValidateDependencies_PreservesOrder(t *testing.T) {
	always := func(target string) form.DependencyValidator {
		return func(form.Inputs) (form.DependencyError, bool) {
			return form.DependencyError{Source: "x", Target: target, Err: validation.Custom{Message: target}}, true
		}
	}
	got := form.ValidateDependencies(form.Inputs{}, []form.DependencyValidator{always("one"), nil, always("two")})
	if len(got) != 2 || got[0].Target != "one" || got[1].Target != "two" {
		t.Fatalf("unexpected dependency errors %#v", got)
	}
}

func TestUpdateInputsAndReset(t *testing.T) {
	f := form.MustNew([]form.Spec{
		{Name: "pet", Initial: "cat", Rules: []validation.Rule{validation.OneOf("cat", "bat", "rat")}},
		{Name: "count", Rules: []validation.Rule{validation.Numeric()}},
	})
	if f.Valid() {
		t.Fatalf("expected empty count to be invalid")
	}

	f = f.UpdateInputs(map[string]string{"pet": "drat", "count": "3", "ghost": "boo"})
	if diff := cmp.Diff(form.Inputs{"pet": "drat", "count": "3"}, f.Inputs()); diff != "" {
		t.Fatalf("inputs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"pet"}, f.InvalidFields()); diff != "" {
		t.Fatalf("invalid fields mismatch (-want +got):\n%s", diff)
	}

	f = f.Reset()
	if diff := cmp.Diff(form.Inputs{"pet": "cat", "count": ""}, f.Inputs()); diff != "" {
		t.Fatalf("reset inputs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"count"}, f.InvalidFields()); diff != "" {
		t.Fatalf("invalid fields after reset mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshot(t *testing.T) {
	f := form.MustNew([]form.Spec{
		{Name: "a", Rules: []validation.Rule{validation.MinLen(2)}},
		{Name: "b"},
	}, form.WithDependencies(form.HaveSameValue("a", "b")))
	f = f.UpdateInput("a", "x")

	want := form.State{
		Valid: false,
		Fields: []form.FieldState{
			{
				Name:   "a",
				Input:  "x",
				Errors: []validation.Detail{{Code: validation.CodeMinLength, Params: map[string]any{"min": 2}}},
			},
			{
				Name: "b",
				DependencyErrors: []form.DependencyDetail{{
					Source: "a",
					Target: "b",
					Error:  validation.Detail{Code: validation.CodeNotEqualTo, Params: map[string]any{"field": "a"}},
				}},
			},
		},
	}
	if diff := cmp.Diff(want, f.Snapshot()); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b"}, f.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestValidityInvariantUnderRandomUpdates(t *testing.T) {
	f := signupForm(t)
	names := append(f.Names(), "ghost")
	values := []string{"", "a", "abc", "alice", "ALICE", "17", "18", "120", "121", "secret", "secre"}
	rng := rand.New(rand.NewSource(7))

	for step := 0; step < 500; step++ {
		f = f.UpdateInput(names[rng.Intn(len(names))], values[rng.Intn(len(values))])

		want := true
		for _, name := range f.Names() {
			field, _ := f.Field(name)
			if len(field.Errors) > 0 || len(field.DependencyErrors) > 0 {
				want = false
			}
		}
		if f.Valid() != want {
			t.Fatalf("step %d: Valid()=%v but fields say %v (%+v)", step, f.Valid(), want, f.Snapshot())
		}
	}
}
