package orchestrator

import (
	"context"
	"errors"
	"fmt"

	internalLoader "github.com/goliatone/go-formstate/internal/openapi/loader"
	internalParser "github.com/goliatone/go-formstate/internal/openapi/parser"
	"github.com/goliatone/go-formstate/pkg/definition"
	"github.com/goliatone/go-formstate/pkg/form"
	pkgopenapi "github.com/goliatone/go-formstate/pkg/openapi"
)

var (
	// ErrNoSource is returned when a request names neither a definition nor
	// an OpenAPI document.
	ErrNoSource = errors.New("orchestrator: form id or openapi source is required")
	// ErrNotFound is returned when the named form or operation does not exist.
	ErrNotFound = errors.New("orchestrator: form not found")
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom OpenAPI loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom OpenAPI parser.
func WithParser(parser pkgopenapi.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithDefinitions registers the store used for FormID requests.
func WithDefinitions(store *definition.Store) Option {
	return func(o *Orchestrator) {
		o.definitions = store
	}
}

// Orchestrator resolves forms from definitions or OpenAPI documents.
type Orchestrator struct {
	loader      pkgopenapi.Loader
	parser      pkgopenapi.Parser
	definitions *definition.Store
}

// New constructs an Orchestrator. Without WithLoader/WithParser it uses the
// kin-openapi backed implementations with HTTP sources disabled.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	if o.loader == nil {
		o.loader = internalLoader.New(pkgopenapi.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New(pkgopenapi.NewParserOptions())
	}
	return o
}

// Request names the form to resolve. FormID selects a definition and takes
// precedence; otherwise OperationID is looked up in Document, or in the
// document loaded from Source.
type Request struct {
	FormID string

	Source      pkgopenapi.Source
	Document    *pkgopenapi.Document
	OperationID string
}

// Result is a freshly built form plus presentation hints for prompting.
type Result struct {
	ID   string
	Form form.Form

	labels  map[string]string
	secrets map[string]bool
}

// Label returns the display label of a field, defaulting to its name.
func (r Result) Label(name string) string {
	if label, ok := r.labels[name]; ok && label != "" {
		return label
	}
	return name
}

// Secret reports whether a field should be entered without echo.
func (r Result) Secret(name string) bool {
	return r.secrets[name]
}

// Resolve builds the form named by req.
func (o *Orchestrator) Resolve(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if req.FormID != "" {
		return o.fromDefinition(req.FormID)
	}
	if req.Source == nil && req.Document == nil {
		return Result{}, ErrNoSource
	}
	return o.fromOperation(ctx, req)
}

func (o *Orchestrator) fromDefinition(id string) (Result, error) {
	def, ok := o.definitions.Form(id)
	if !ok {
		return Result{}, fmt.Errorf("%w: definition %q", ErrNotFound, id)
	}
	f, err := def.Build()
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: build %q: %w", id, err)
	}

	result := Result{ID: id, Form: f, labels: make(map[string]string), secrets: make(map[string]bool)}
	for _, field := range def.Fields {
		result.labels[field.Name] = def.Label(field.Name)
		result.secrets[field.Name] = field.Secret
	}
	return result, nil
}

func (o *Orchestrator) fromOperation(ctx context.Context, req Request) (Result, error) {
	if req.OperationID == "" {
		return Result{}, errors.New("orchestrator: operation id is required")
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return Result{}, err
	}

	operations, err := o.parser.Operations(ctx, doc)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: parse operations: %w", err)
	}
	op, ok := operations[req.OperationID]
	if !ok {
		return Result{}, fmt.Errorf("%w: operation %q", ErrNotFound, req.OperationID)
	}

	f, err := op.Build()
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: build %q: %w", req.OperationID, err)
	}

	result := Result{ID: op.ID, Form: f, labels: make(map[string]string), secrets: make(map[string]bool)}
	for _, prop := range op.Properties {
		if prop.Description != "" {
			result.labels[prop.Name] = prop.Description
		}
		result.secrets[prop.Name] = prop.Format == "password"
	}
	return result, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (pkgopenapi.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}
