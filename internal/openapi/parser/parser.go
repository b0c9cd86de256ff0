package parser

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	pkgopenapi "github.com/goliatone/go-formstate/pkg/openapi"
)

// requestMediaTypes lists the request content types checked, in order, for a
// form-shaped schema.
var requestMediaTypes = []string{
	"application/x-www-form-urlencoded",
	"multipart/form-data",
	"application/json",
}

// Parser implements pkgopenapi.Parser using kin-openapi.
type Parser struct {
	options pkgopenapi.ParserOptions
}

var _ pkgopenapi.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgopenapi.ParserOptions) *Parser {
	return &Parser{options: options}
}

// Operations converts a Document into operations keyed by operationId.
// Operations without an id are keyed as "<method>:<path>".
func (p *Parser) Operations(ctx context.Context, doc pkgopenapi.Document) (map[string]pkgopenapi.Operation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi parser: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi parser: load document: %w", err)
	}

	if p.options.Validate {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi parser: validate: %w", err)
		}
	}

	operations := make(map[string]pkgopenapi.Operation)
	if spec.Paths != nil {
		for path, item := range spec.Paths.Map() {
			if item == nil {
				continue
			}
			for method, operation := range item.Operations() {
				if err := collectOperation(operations, method, path, operation); err != nil {
					return nil, err
				}
			}
		}
	}

	if len(operations) == 0 && !p.options.AllowEmpty {
		return nil, errors.New("openapi parser: no operations extracted")
	}
	return operations, nil
}

func collectOperation(target map[string]pkgopenapi.Operation, method, path string, operation *openapi3.Operation) error {
	if operation == nil {
		return nil
	}
	method = strings.ToUpper(method)
	opID := operation.OperationID
	if opID == "" {
		opID = strings.ToLower(method) + ":" + path
	}
	if existing, ok := target[opID]; ok {
		return fmt.Errorf("openapi parser: duplicate operation id %q (%s %s and %s %s)", opID, existing.Method, existing.Path, method, path)
	}

	op, err := pkgopenapi.NewOperation(opID, method, path, requestProperties(operation.RequestBody))
	if err != nil {
		return fmt.Errorf("openapi parser: %w", err)
	}
	op.Summary = operation.Summary
	op.Description = operation.Description
	target[opID] = op
	return nil
}

func requestProperties(body *openapi3.RequestBodyRef) []pkgopenapi.Property {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range requestMediaTypes {
		if mt, ok := content[mediaType]; ok && mt != nil {
			return convertProperties(mt.Schema)
		}
	}

	keys := make([]string, 0, len(content))
	for key := range content {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if mt := content[key]; mt != nil {
			return convertProperties(mt.Schema)
		}
	}
	return nil
}

func convertProperties(ref *openapi3.SchemaRef) []pkgopenapi.Property {
	schemas := make(map[string]*openapi3.SchemaRef)
	required := make(map[string]bool)
	collectProperties(ref, schemas, required, make(map[*openapi3.Schema]bool))
	if len(schemas) == 0 {
		return nil
	}

	props := make([]pkgopenapi.Property, 0, len(schemas))
	for name, prop := range schemas {
		props = append(props, convertProperty(name, prop, required[name]))
	}
	return props
}

// collectProperties merges properties and required names across allOf
// members. seen guards against recursive references.
func collectProperties(ref *openapi3.SchemaRef, into map[string]*openapi3.SchemaRef, required map[string]bool, seen map[*openapi3.Schema]bool) {
	if ref == nil || ref.Value == nil || seen[ref.Value] {
		return
	}
	seen[ref.Value] = true
	for _, member := range ref.Value.AllOf {
		collectProperties(member, into, required, seen)
	}
	for name, prop := range ref.Value.Properties {
		into[name] = prop
	}
	for _, name := range ref.Value.Required {
		required[name] = true
	}
}

func convertProperty(name string, ref *openapi3.SchemaRef, required bool) pkgopenapi.Property {
	prop := pkgopenapi.Property{Name: name, Required: required}
	if ref == nil || ref.Value == nil {
		return prop
	}
	src := ref.Value

	prop.Type = firstSchemaType(src.Type)
	prop.Format = src.Format
	prop.Description = src.Description
	prop.Default = src.Default
	prop.Pattern = src.Pattern
	prop.ExclusiveMinimum = src.ExclusiveMin
	prop.ExclusiveMaximum = src.ExclusiveMax

	if len(src.Enum) > 0 {
		prop.Enum = append([]any(nil), src.Enum...)
	}
	if src.MinLength != 0 {
		value := int(src.MinLength)
		prop.MinLength = &value
	}
	if src.MaxLength != nil {
		value := int(*src.MaxLength)
		prop.MaxLength = &value
	}
	if src.Min != nil {
		value := *src.Min
		prop.Minimum = &value
	}
	if src.Max != nil {
		value := *src.Max
		prop.Maximum = &value
	}
	return prop
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	// Nullable unions such as ["integer", "null"] report the concrete type.
	for _, value := range values {
		if value != "null" {
			return value
		}
	}
	return values[0]
}
