package collapsible

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// LoadSchemaFile reads a plain JSON Schema (JSON or YAML), or the named
// component of an OpenAPI document.
func LoadSchemaFile(ctx context.Context, path, component string) (*openapi3.Schema, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	root, _ := doc.(map[string]any)
	if _, isOpenAPI := root["openapi"]; isOpenAPI {
		return loadComponent(ctx, path, component)
	}
	if component != "" {
		return nil, fmt.Errorf("collapsible: component %q given but %s is not an OpenAPI document", component, path)
	}
	return ParseSchema(doc)
}

// ParseSchema converts a decoded JSON Schema document into a kin-openapi
// schema.
func ParseSchema(doc any) (*openapi3.Schema, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("collapsible: encode schema: %w", err)
	}
	schema := openapi3.NewSchema()
	if err := schema.UnmarshalJSON(raw); err != nil {
		return nil, fmt.Errorf("collapsible: decode schema: %w", err)
	}
	return schema, nil
}

func loadComponent(ctx context.Context, path, component string) (*openapi3.Schema, error) {
	if strings.TrimSpace(component) == "" {
		return nil, fmt.Errorf("collapsible: a component name is required for OpenAPI documents")
	}
	loader := openapi3.NewLoader()
	loader.Context = ctx
	loader.IsExternalRefsAllowed = true
	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("collapsible: load OpenAPI document: %w", err)
	}
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, fmt.Errorf("collapsible: %s declares no component schemas", path)
	}
	ref, ok := doc.Components.Schemas[component]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("collapsible: component schema %q not found", component)
	}
	return ref.Value, nil
}

// LoadDocument decodes a JSON or YAML file into generic values. YAML is a
// superset of JSON so one decoder serves both; integers are widened to
// float64 so values match what the raw JSON editor produces.
func LoadDocument(path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("collapsible: read %s: %w", path, err)
	}
	var out any
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("collapsible: decode %s: %w", path, err)
	}
	return normalize(out), nil
}

func normalize(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		for key, item := range typed {
			typed[key] = normalize(item)
		}
		return typed
	case []any:
		for i, item := range typed {
			typed[i] = normalize(item)
		}
		return typed
	case int:
		return float64(typed)
	case int64:
		return float64(typed)
	case uint64:
		return float64(typed)
	default:
		return typed
	}
}

