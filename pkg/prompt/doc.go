// Package prompt drives a form interactively in the terminal. A Session asks
// for every field in order, reports the field's errors after each answer and
// then revisits invalid fields until the form validates or the user stops.
//
// The terminal is reached through a Driver; the default implementation uses
// AlecAivazis/survey and tests substitute scripted drivers.
package prompt
