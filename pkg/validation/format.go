package validation

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	formatOnce      sync.Once
	formatValidator *validator.Validate
)

func formats() *validator.Validate {
	formatOnce.Do(func() {
		formatValidator = validator.New()
	})
	return formatValidator
}

// Format checks the input against a go-playground/validator tag such as
// "email", "url", "uuid" or "datetime=2006-01-02". Unknown tags are rejected
// here so the returned rule never panics.
func Format(tag string) (Rule, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil, fmt.Errorf("%w: empty tag", ErrUnknownFormat)
	}
	if err := probeFormat(tag); err != nil {
		return nil, err
	}
	return func(input string) Error {
		if err := formats().Var(input, tag); err != nil {
			return NotFormat{Format: tag}
		}
		return nil
	}, nil
}

// MustFormat is Format for tags known at compile time.
func MustFormat(tag string) Rule {
	rule, err := Format(tag)
	if err != nil {
		panic(err)
	}
	return rule
}

// probeFormat runs the tag once; the validator panics on undefined tags.
func probeFormat(tag string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w %q: %v", ErrUnknownFormat, tag, r)
		}
	}()
	_ = formats().Var("", tag)
	return nil
}
