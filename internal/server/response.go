package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/goliatone/go-formstate/internal/logger"
)

// httpError carries the status code a handler failure maps to.
type httpError struct {
	status int
	err    error
}

func (e *httpError) Error() string { return e.err.Error() }
func (e *httpError) Unwrap() error { return e.err }

func statusError(status int, err error) error {
	return &httpError{status: status, err: err}
}

type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func handleErrors(next handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := next(w, r)
		if err == nil {
			return
		}

		var httpErr *httpError
		if errors.As(err, &httpErr) {
			respondError(w, httpErr.status, httpErr)
			return
		}

		logger.FromContext(r.Context()).Error("unexpected server error",
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.Error(err))
		respondError(w, http.StatusInternalServerError, errors.New("internal server error"))
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, err error) {
	respondJSON(w, status, map[string]string{"error": err.Error()})
}
