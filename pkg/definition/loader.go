package definition

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formstate/pkg/form"
)

// Store holds compiled definitions keyed by form id.
type Store struct {
	forms map[string]Definition
}

// LoadFS walks the provided filesystem and compiles every JSON/YAML
// definition file. When fsys is nil or holds no definition files the
// returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{forms: make(map[string]Definition)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("definition: read %s: %w", path, err)
		}
		return store.add(data, path)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Load compiles a single definition document. source names the document in
// error messages.
func Load(data []byte, source string) (*Store, error) {
	store := &Store{forms: make(map[string]Definition)}
	if err := store.add(data, source); err != nil {
		return nil, err
	}
	return store, nil
}

// Form returns the definition registered under id.
func (s *Store) Form(id string) (Definition, bool) {
	if s == nil {
		return Definition{}, false
	}
	def, ok := s.forms[id]
	return def, ok
}

// Build returns a fresh form for id.
func (s *Store) Build(id string) (form.Form, error) {
	def, ok := s.Form(id)
	if !ok {
		return form.Form{}, fmt.Errorf("%w: %q", ErrFormNotFound, id)
	}
	return def.Build()
}

// IDs returns the registered form ids in lexical order.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.forms))
	for id := range s.forms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Empty reports whether the store holds any definitions.
func (s *Store) Empty() bool {
	return s == nil || len(s.forms) == 0
}

type documentFile struct {
	Forms map[string]formFile `json:"forms" yaml:"forms"`
}

type formFile struct {
	Title        string             `json:"title" yaml:"title"`
	Fields       []FieldConfig      `json:"fields" yaml:"fields"`
	Dependencies []DependencyConfig `json:"dependencies" yaml:"dependencies"`
}

func (s *Store) add(data []byte, source string) error {
	doc, err := parseDocument(data, source)
	if err != nil {
		return err
	}

	for rawID, raw := range doc.Forms {
		id := strings.TrimSpace(rawID)
		if id == "" {
			return fmt.Errorf("definition: file %s defines an empty form id", source)
		}
		if existing, exists := s.forms[id]; exists {
			return fmt.Errorf("%w %q (file %s, first defined in %s)", ErrDuplicateForm, id, source, existing.Source)
		}
		def, err := compile(raw, id, source)
		if err != nil {
			return err
		}
		s.forms[id] = def
	}
	return nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("definition: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("definition: parse %s: invalid JSON or YAML", source)
}

func compile(raw formFile, id, source string) (Definition, error) {
	def := Definition{
		ID:     id,
		Source: source,
		Title:  raw.Title,
		Fields: make([]FieldConfig, 0, len(raw.Fields)),
		specs:  make([]form.Spec, 0, len(raw.Fields)),
	}

	for idx, field := range raw.Fields {
		field.Name = strings.TrimSpace(field.Name)
		if field.Name == "" {
			return Definition{}, fmt.Errorf("definition: form %q (file %s) field %d has an empty name", id, source, idx)
		}

		spec := form.Spec{Name: field.Name, Initial: field.Initial}
		for ruleIdx, cfg := range field.Rules {
			rule, err := compileRule(cfg)
			if err != nil {
				return Definition{}, fmt.Errorf("definition: form %q (file %s) field %q rule %d: %w", id, source, field.Name, ruleIdx, err)
			}
			spec.Rules = append(spec.Rules, rule)
		}

		field.Rules = append([]RuleConfig(nil), field.Rules...)
		def.Fields = append(def.Fields, field)
		def.specs = append(def.specs, spec)
	}

	declared := make(map[string]bool, len(def.Fields))
	for _, field := range def.Fields {
		declared[field.Name] = true
	}
	for idx, dep := range raw.Dependencies {
		validator, err := compileDependency(dep, declared)
		if err != nil {
			return Definition{}, fmt.Errorf("definition: form %q (file %s) dependency %d: %w", id, source, idx, err)
		}
		def.dependencies = append(def.dependencies, validator)
	}

	// Surface duplicate field names at load time rather than on first Build.
	if _, err := form.New(def.specs); err != nil {
		return Definition{}, fmt.Errorf("definition: form %q (file %s): %w", id, source, err)
	}

	return def, nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
