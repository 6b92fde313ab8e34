package formcontext

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// MaxSpan is the width of a full grid row.
const MaxSpan = 24

// ColSpan is either a single span applied to every child or a lookup keyed by
// widget, custom field or schema type.
type ColSpan struct {
	Value *int           `validate:"omitempty,min=1,max=24"`
	ByKey map[string]int `validate:"omitempty,dive,keys,required,endkeys,min=1,max=24"`
}

// Fixed returns a ColSpan applying n to every child.
func Fixed(n int) ColSpan {
	return ColSpan{Value: &n}
}

// Mapping returns a ColSpan resolved per widget, field or type.
func Mapping(entries map[string]int) ColSpan {
	out := make(map[string]int, len(entries))
	for key, value := range entries {
		out[strings.TrimSpace(key)] = value
	}
	return ColSpan{ByKey: out}
}

// IsZero reports whether no span option was supplied.
func (c ColSpan) IsZero() bool {
	return c.Value == nil && c.ByKey == nil
}

// IsMapping reports whether the span is a lookup table.
func (c ColSpan) IsMapping() bool {
	return c.ByKey != nil
}

// Lookup returns the span for key when configured as a mapping.
func (c ColSpan) Lookup(key string) (int, bool) {
	if c.ByKey == nil {
		return 0, false
	}
	value, ok := c.ByKey[key]
	return value, ok
}

// MarshalJSON implements json.Marshaler.
func (c ColSpan) MarshalJSON() ([]byte, error) {
	switch {
	case c.Value != nil:
		return json.Marshal(*c.Value)
	case c.ByKey != nil:
		return json.Marshal(c.ByKey)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *ColSpan) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*c = ColSpan{}
		return nil
	}
	if strings.HasPrefix(trimmed, "{") {
		var entries map[string]int
		if err := json.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("colSpan mapping: %w", err)
		}
		*c = Mapping(entries)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("colSpan: expected number or mapping: %w", err)
	}
	*c = Fixed(n)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *ColSpan) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		var entries map[string]int
		if err := node.Decode(&entries); err != nil {
			return fmt.Errorf("colSpan mapping: %w", err)
		}
		*c = Mapping(entries)
		return nil
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*c = ColSpan{}
			return nil
		}
		var n int
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("colSpan: expected number or mapping: %w", err)
		}
		*c = Fixed(n)
		return nil
	default:
		return fmt.Errorf("colSpan: expected number or mapping at line %d", node.Line)
	}
}
