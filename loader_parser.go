package formstate

import (
	internalLoader "github.com/goliatone/go-formstate/internal/openapi/loader"
	internalParser "github.com/goliatone/go-formstate/internal/openapi/parser"
	pkgopenapi "github.com/goliatone/go-formstate/pkg/openapi"
)

// NewLoader constructs an OpenAPI loader while keeping the concrete type
// hidden from consumers.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	return internalLoader.New(pkgopenapi.NewLoaderOptions(options...))
}

// NewParser constructs an OpenAPI parser backed by kin-openapi.
func NewParser(options ...pkgopenapi.ParserOption) pkgopenapi.Parser {
	return internalParser.New(pkgopenapi.NewParserOptions(options...))
}
