package formstate

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-formstate/pkg/definition"
	"github.com/goliatone/go-formstate/pkg/orchestrator"
)

// Request aliases orchestrator.Request for callers of the root package.
type Request = orchestrator.Request

// Result aliases orchestrator.Result.
type Result = orchestrator.Result

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// LoadDefinitions compiles every definition file found in fsys.
func LoadDefinitions(fsys fs.FS) (*definition.Store, error) {
	return definition.LoadFS(fsys)
}

// Resolve builds the form named by req with a default orchestrator.
func Resolve(ctx context.Context, req Request, options ...orchestrator.Option) (Result, error) {
	return orchestrator.New(options...).Resolve(ctx, req)
}
