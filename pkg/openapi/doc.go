// Package openapi exposes the loader and parser contracts used to derive form
// specs from OpenAPI request bodies. Implementations live under
// internal/openapi so kin-openapi types never leak to consumers; construct
// them through formstate.NewLoader and formstate.NewParser.
package openapi
