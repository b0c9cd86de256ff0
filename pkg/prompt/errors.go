package prompt

import "errors"

var (
	// ErrAborted signals the user interrupted input (Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrRoundsExhausted is returned when WithMaxRounds is set and the form
	// is still invalid after the last round.
	ErrRoundsExhausted = errors.New("prompt: form still invalid after maximum rounds")
)
