package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/goliatone/go-formstate/internal/logger"
	"github.com/goliatone/go-formstate/pkg/definition"
	"github.com/goliatone/go-formstate/pkg/render"
)

// RouterDependencies are the collaborators NewRouter wires into handlers.
// Logger and Formatter fall back to a nop logger and the English formatter.
type RouterDependencies struct {
	Store     *definition.Store
	Logger    logger.Logger
	Formatter *render.Formatter
}

// NewRouter exposes live validation for every form in deps.Store.
func NewRouter(deps RouterDependencies) http.Handler {
	log := deps.Logger
	if log == nil {
		log = logger.NewNop()
	}
	formatter := deps.Formatter
	if formatter == nil {
		formatter = render.NewFormatter()
	}
	h := &handler{store: deps.Store, formatter: formatter}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(recovery)
	r.Use(middleware.StripSlashes)

	r.Get("/health", h.health)
	r.Route("/forms", func(forms chi.Router) {
		forms.Get("/", h.listForms)
		forms.Post("/{id}/validate", handleErrors(h.validate))
	})
	return r
}
