package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-formstate/internal/logger"
	"github.com/goliatone/go-formstate/pkg/definition"
	"github.com/goliatone/go-formstate/pkg/form"
	"github.com/goliatone/go-formstate/pkg/render"
)

// maxFormBytes caps the body of a validation request.
const maxFormBytes = 1 << 20

type formSummary struct {
	ID     string   `json:"id"`
	Title  string   `json:"title,omitempty"`
	Fields []string `json:"fields"`
}

type handler struct {
	store     *definition.Store
	formatter *render.Formatter
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) listForms(w http.ResponseWriter, _ *http.Request) {
	forms := make([]formSummary, 0)
	for _, id := range h.store.IDs() {
		def, _ := h.store.Form(id)
		summary := formSummary{ID: id, Title: def.Title, Fields: make([]string, 0, len(def.Fields))}
		for _, field := range def.Fields {
			summary.Fields = append(summary.Fields, field.Name)
		}
		forms = append(forms, summary)
	}
	respondJSON(w, http.StatusOK, map[string]any{"forms": forms})
}

// validate builds a fresh form, applies the submitted values and reports the
// resulting state. Keys that do not name a field are ignored.
func (h *handler) validate(w http.ResponseWriter, r *http.Request) error {
	id := chi.URLParam(r, "id")
	def, ok := h.store.Form(id)
	if !ok {
		return statusError(http.StatusNotFound, fmt.Errorf("form %q not found", id))
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		return statusError(http.StatusBadRequest, fmt.Errorf("parse form: %w", err))
	}

	f, err := def.Build()
	if err != nil {
		return err
	}
	values := make(map[string]string)
	for _, name := range f.Names() {
		if _, ok := r.PostForm[name]; ok {
			values[name] = r.PostForm.Get(name)
		}
	}
	f = f.UpdateInputs(values)

	logger.FromContext(r.Context()).Debug("form validated",
		logger.String("form", id),
		logger.Bool("valid", f.Valid()),
		logger.Strings("invalid_fields", f.InvalidFields()),
	)

	if wantsHTML(r) {
		return h.respondFragment(w, f)
	}
	respondJSON(w, http.StatusOK, f.Snapshot())
	return nil
}

// respondFragment writes one error list per invalid field.
func (h *handler) respondFragment(w http.ResponseWriter, f form.Form) error {
	var b strings.Builder
	for _, name := range f.InvalidFields() {
		fragment, err := h.formatter.HTML(name, f.Errors(name))
		if err != nil {
			return fmt.Errorf("render error fragment: %w", err)
		}
		b.WriteString(fragment)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write([]byte(b.String()))
	return err
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
