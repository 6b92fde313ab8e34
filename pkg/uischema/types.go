package uischema

import (
	"strings"
)

// Reserved keys recognised on every UI schema node.
const (
	KeyTitle       = "ui:title"
	KeyDescription = "ui:description"
	KeyWidget      = "ui:widget"
	KeyField       = "ui:field"
	KeyOptions     = "ui:options"
	KeyItems       = "items"
)

// UISchema holds read-only rendering hints for one schema node. Keys with the
// "ui:" prefix configure the node itself; other keys are child nodes.
type UISchema map[string]any

// Options merges "ui:options" with the top-level "ui:*" keys, stripping the
// prefix. Top-level keys win, matching how hints are usually authored.
func (u UISchema) Options() map[string]any {
	out := make(map[string]any)
	if u == nil {
		return out
	}
	if nested, ok := asMap(u[KeyOptions]); ok {
		for key, value := range nested {
			out[key] = value
		}
	}
	for key, value := range u {
		if key == KeyOptions || !strings.HasPrefix(key, "ui:") {
			continue
		}
		out[strings.TrimPrefix(key, "ui:")] = value
	}
	return out
}

// Child returns the nested UI schema for a property name.
func (u UISchema) Child(name string) UISchema {
	if u == nil || strings.HasPrefix(name, "ui:") {
		return nil
	}
	child, ok := asMap(u[name])
	if !ok {
		return nil
	}
	return UISchema(child)
}

// Items returns the UI schema applied to array items.
func (u UISchema) Items() UISchema {
	return u.Child(KeyItems)
}

// Title returns the "ui:title" override.
func (u UISchema) Title() string {
	return u.String("title")
}

// Description returns the "ui:description" override.
func (u UISchema) Description() string {
	return u.String("description")
}

// Widget returns the configured widget name.
func (u UISchema) Widget() string {
	return u.String("widget")
}

// Field returns the configured custom field name.
func (u UISchema) Field() string {
	return u.String("field")
}

// String reads an option as a trimmed string.
func (u UISchema) String(option string) string {
	value, ok := u.Options()[option].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

// Bool reads a boolean option, returning fallback when unset.
func (u UISchema) Bool(option string, fallback bool) bool {
	switch v := u.Options()[option].(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return fallback
}

func asMap(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case UISchema:
		return v, true
	case map[string]any:
		return v, true
	default:
		return nil, false
	}
}
