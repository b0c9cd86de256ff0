// Package orchestrator resolves a ready-to-use form from either a declarative
// definition store or an OpenAPI operation. It coordinates the loader, parser
// and definition stages so callers only name the form they want.
package orchestrator
