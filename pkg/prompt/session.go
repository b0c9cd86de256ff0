package prompt

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formstate/pkg/form"
	"github.com/goliatone/go-formstate/pkg/render"
)

// Session walks a form through a Driver.
type Session struct {
	driver    Driver
	formatter *render.Formatter
	label     func(string) string
	secret    func(string) bool
	maxRounds int
}

// NewSession returns a Session using the survey driver unless overridden.
func NewSession(options ...Option) *Session {
	s := &Session{
		label:  func(name string) string { return name },
		secret: func(string) bool { return false },
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	return s
}

// Run prompts every field of f in order, then keeps revisiting invalid fields
// while the user agrees to continue. It returns the last form state, which is
// invalid when the user declined. Interrupts surface as ErrAborted together
// with the state reached so far.
func (s *Session) Run(ctx context.Context, f form.Form) (form.Form, error) {
	pending := f.Names()
	for round := 1; ; round++ {
		for _, name := range pending {
			var err error
			if f, err = s.ask(ctx, f, name); err != nil {
				return f, err
			}
		}

		if f.Valid() {
			return f, nil
		}
		pending = f.InvalidFields()

		if s.maxRounds > 0 && round >= s.maxRounds {
			return f, ErrRoundsExhausted
		}
		again, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("%d field(s) still invalid. Try again?", len(pending)),
			Default: true,
		})
		if err != nil {
			return f, err
		}
		if !again {
			return f, nil
		}
	}
}

func (s *Session) ask(ctx context.Context, f form.Form, name string) (form.Form, error) {
	label := s.label(name)
	cfg := InputConfig{Message: label, Default: f.Value(name)}

	var (
		value string
		err   error
	)
	if s.secret(name) {
		value, err = s.driver.Password(ctx, cfg)
	} else {
		value, err = s.driver.Input(ctx, cfg)
	}
	if err != nil {
		return f, err
	}

	f = f.UpdateInput(name, value)
	if err := s.driver.Info(ctx, fmt.Sprintf("%s: %s", label, s.formatter.Join(f.Errors(name)))); err != nil {
		return f, err
	}
	return f, nil
}
