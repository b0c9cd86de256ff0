package openapi

import (
	"errors"
	"sort"
)

// Document wraps a raw OpenAPI payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document, copying raw.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("openapi: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("openapi: raw document is empty")
	}
	return Document{source: src, raw: append([]byte(nil), raw...)}, nil
}

// MustNewDocument panics if the document cannot be created.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin of the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the origin identifier, or "" when unknown.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Operation is an OpenAPI operation reduced to the request-body properties
// that become form fields.
type Operation struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	Description string
	Properties  []Property
}

// NewOperation validates the identifying fields and sorts properties by name.
func NewOperation(id, method, path string, properties []Property) (Operation, error) {
	if id == "" {
		return Operation{}, errors.New("openapi: operation id is required")
	}
	if method == "" {
		return Operation{}, errors.New("openapi: operation method is required")
	}
	if path == "" {
		return Operation{}, errors.New("openapi: operation path is required")
	}

	props := append([]Property(nil), properties...)
	sort.SliceStable(props, func(i, j int) bool { return props[i].Name < props[j].Name })

	return Operation{ID: id, Method: method, Path: path, Properties: props}, nil
}

// Property returns the named request-body property.
func (op Operation) Property(name string) (Property, bool) {
	for _, p := range op.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// Property describes one top-level request-body property and the
// constraints that map onto validation rules.
type Property struct {
	Name        string
	Type        string
	Format      string
	Description string
	Default     any
	Required    bool

	Enum             []any
	MinLength        *int
	MaxLength        *int
	Pattern          string
	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum bool
	ExclusiveMaximum bool
}
