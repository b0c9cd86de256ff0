// Package render turns validation errors into display text.
//
// Each validation.Error variant maps to a fixed English template (Message).
// DisplayString joins the messages of a field with ", " and falls back to the
// NoErrors sentinel for an empty list. A Formatter adds optional translation
// through a Translator keyed by "validation.<code>", a custom separator and
// an HTML fragment renderer for live-validation endpoints.
package render
