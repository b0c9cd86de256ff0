package prompt

import "github.com/goliatone/go-formstate/pkg/render"

// Option configures a Session.
type Option func(*Session)

// WithDriver overrides the survey driver.
func WithDriver(driver Driver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithFormatter renders field errors with f instead of the English defaults.
func WithFormatter(f *render.Formatter) Option {
	return func(s *Session) {
		s.formatter = f
	}
}

// WithLabels maps field names to prompt labels.
func WithLabels(fn func(name string) string) Option {
	return func(s *Session) {
		if fn != nil {
			s.label = fn
		}
	}
}

// WithSecrets marks fields that are prompted without echo.
func WithSecrets(fn func(name string) bool) Option {
	return func(s *Session) {
		if fn != nil {
			s.secret = fn
		}
	}
}

// WithMaxRounds bounds how many times invalid fields are revisited. Zero
// means no bound.
func WithMaxRounds(n int) Option {
	return func(s *Session) {
		if n >= 0 {
			s.maxRounds = n
		}
	}
}
