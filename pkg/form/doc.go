// Package form holds the validation state of a set of named string inputs.
//
// A Form is built once from a list of Spec values, one per field, each with an
// ordered list of validation rules. Form-level DependencyValidator functions
// check relationships between fields (for example a password confirmation
// that must equal the password).
//
// Form is an immutable snapshot. UpdateInput returns the next snapshot with
// the changed field revalidated, every dependency validator re-run over the
// full input set and the aggregate validity flag recomputed:
//
//	f := form.MustNew([]form.Spec{
//	    {Name: "password", Rules: []validation.Rule{validation.MinLen(8)}},
//	    {Name: "confirm"},
//	}, form.WithDependencies(form.HaveSameValue("password", "confirm")))
//
//	f = f.UpdateInput("password", "hunter22")
//	f = f.UpdateInput("confirm", "hunter2")
//	f.Valid()             // false
//	f.Errors("password")  // [NotEqualTo{Field: "password"}]
//
// Dependency errors are stored on their target field but are reported by
// Errors for both the source and the target, so either input can show the
// message. Unknown field names passed to UpdateInput are ignored.
package form
