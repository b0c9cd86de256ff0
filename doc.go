// Package formstate validates HTML-style forms as immutable snapshots.
//
// The engine lives in pkg/form and pkg/validation: a form is built from field
// specs, every update returns a new snapshot with field and cross-field errors
// recomputed, and Valid reports whether any error remains. Forms can be
// declared in YAML/JSON (pkg/definition) or derived from OpenAPI request
// bodies (pkg/openapi); this package offers shortcuts over both.
package formstate
