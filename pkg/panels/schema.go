package panels

import (
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formgen-collapsible/internal/jsonvalue"
	"github.com/goliatone/go-formgen-collapsible/pkg/uischema"
)

// SchemaType returns the primary JSON type of schema, or "" when unset. A
// schema listing several types reports the first non-null one.
func SchemaType(schema *openapi3.Schema) string {
	if schema == nil || schema.Type == nil {
		return ""
	}
	values := schema.Type.Slice()
	for _, value := range values {
		if value != "null" {
			return value
		}
	}
	if len(values) > 0 {
		return values[0]
	}
	return ""
}

// CanExpand reports whether an object panel may grow a new property: the
// schema must allow additional properties, ui:options.expandable must not be
// false and maxProperties must not be reached yet.
func CanExpand(schema *openapi3.Schema, ui uischema.UISchema, formData any) bool {
	if schema == nil {
		return false
	}
	additional := schema.AdditionalProperties
	allowed := additional.Schema != nil || (additional.Has != nil && *additional.Has)
	if !allowed {
		return false
	}
	if !ui.Bool("expandable", true) {
		return false
	}
	if schema.MaxProps != nil {
		values, _ := formData.(map[string]any)
		return uint64(len(values)) < *schema.MaxProps
	}
	return true
}

// CanAddItem reports whether an array panel may append an item:
// ui:options.addable must not be false and maxItems must not be reached.
func CanAddItem(schema *openapi3.Schema, ui uischema.UISchema, formData any) bool {
	if !ui.Bool("addable", true) {
		return false
	}
	if schema != nil && schema.MaxItems != nil {
		items, _ := formData.([]any)
		return uint64(len(items)) < *schema.MaxItems
	}
	return true
}

// NewPropertyName picks the first free key for an expanded object, following
// the newKey, newKey-1, newKey-2 sequence.
func NewPropertyName(formData any) string {
	values, _ := formData.(map[string]any)
	const base = "newKey"
	if _, taken := values[base]; !taken {
		return base
	}
	for i := 1; ; i++ {
		candidate := base + "-" + strconv.Itoa(i)
		if _, taken := values[candidate]; !taken {
			return candidate
		}
	}
}

// DefaultValue returns the value a freshly added item or property starts
// with: a copy of the schema default when present, otherwise the empty
// value for the schema type.
func DefaultValue(schema *openapi3.Schema) any {
	if schema == nil {
		return nil
	}
	if schema.Default != nil {
		return jsonvalue.Clone(schema.Default)
	}
	switch SchemaType(schema) {
	case openapi3.TypeObject:
		return map[string]any{}
	case openapi3.TypeArray:
		return []any{}
	case openapi3.TypeString:
		return ""
	case openapi3.TypeBoolean:
		return false
	default:
		return nil
	}
}
