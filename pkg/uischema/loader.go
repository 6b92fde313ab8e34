package uischema

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Store keeps UI schema documents keyed by their file stem. It is safe for
// concurrent readers when treated as immutable after construction.
type Store struct {
	documents map[string]UISchema
}

// LoadFS walks the provided filesystem and parses JSON/YAML UI schema files.
// When fsys is nil or no schema files are present, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{documents: make(map[string]UISchema)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(filePath string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(filePath) {
			return nil
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("uischema: read %s: %w", filePath, err)
		}

		doc, err := Parse(data, filePath)
		if err != nil {
			return err
		}

		name := documentName(filePath)
		if _, exists := store.documents[name]; exists {
			return fmt.Errorf("uischema: duplicate document %q (file %s)", name, filePath)
		}
		store.documents[name] = doc
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Parse decodes a single JSON or YAML UI schema document.
func Parse(data []byte, source string) (UISchema, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return UISchema{}, nil
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err == nil {
		return UISchema(doc), nil
	}

	doc = nil
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return UISchema(doc), nil
	}

	return nil, fmt.Errorf("uischema: parse %s: invalid JSON or YAML", source)
}

// Get returns the document registered under name.
func (s *Store) Get(name string) (UISchema, bool) {
	if s == nil {
		return nil, false
	}
	doc, ok := s.documents[name]
	return doc, ok
}

// Names lists the loaded document names in sorted order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.documents))
	for name := range s.documents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store holds any documents.
func (s *Store) Empty() bool {
	return s == nil || len(s.documents) == 0
}

func documentName(filePath string) string {
	clean := path.Clean(filePath)
	return strings.TrimSuffix(clean, path.Ext(clean))
}

func isSchemaFile(filePath string) bool {
	switch strings.ToLower(path.Ext(filePath)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
