package errorschema

import (
	"fmt"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
)

// ErrorsKey holds the leaf message list at any level of an ErrorSchema.
const ErrorsKey = "__errors"

// ErrorSchema mirrors the nested error report produced by the validation
// engine. The ErrorsKey entry carries messages for the node itself; every
// other entry is a child ErrorSchema keyed by property name or array index.
type ErrorSchema map[string]any

// HasError reports whether the node or any of its descendants carries at least
// one message. A nil schema has no errors.
func HasError(es ErrorSchema) bool {
	if es == nil {
		return false
	}
	if len(es.Errors()) > 0 {
		return true
	}
	for key, value := range es {
		if key == ErrorsKey {
			continue
		}
		if HasError(asSchema(value)) {
			return true
		}
	}
	return false
}

// Errors returns the messages attached directly to the node.
func (es ErrorSchema) Errors() []string {
	if es == nil {
		return nil
	}
	return asMessages(es[ErrorsKey])
}

// Child returns the nested schema for name, or nil when absent.
func (es ErrorSchema) Child(name string) ErrorSchema {
	if es == nil || name == ErrorsKey {
		return nil
	}
	return asSchema(es[name])
}

// At walks the schema along path and returns the node found there.
func (es ErrorSchema) At(path ...string) ErrorSchema {
	current := es
	for _, segment := range path {
		current = current.Child(segment)
		if current == nil {
			return nil
		}
	}
	return current
}

// Add appends messages at path, creating intermediate nodes.
func (es ErrorSchema) Add(path []string, messages ...string) {
	if es == nil {
		return
	}
	node := es
	for _, segment := range path {
		child := node.Child(segment)
		if child == nil {
			child = ErrorSchema{}
			node[segment] = child
		}
		node = child
	}
	node[ErrorsKey] = normalizeMessages(append(node.Errors(), messages...))
}

// Paths flattens the schema back into dotted paths. Root-level messages are
// keyed by the empty string.
func (es ErrorSchema) Paths() map[string][]string {
	out := make(map[string][]string)
	es.collect("", out)
	if len(out) == 0 {
		return nil
	}
	return out
}

func (es ErrorSchema) collect(prefix string, dest map[string][]string) {
	if es == nil {
		return
	}
	if messages := es.Errors(); len(messages) > 0 {
		dest[prefix] = append([]string(nil), messages...)
	}
	keys := make([]string, 0, len(es))
	for key := range es {
		if key != ErrorsKey {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		es.Child(key).collect(path, dest)
	}
}

// Parse decodes a JSON error report.
func Parse(data []byte) (ErrorSchema, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, nil
	}
	var out ErrorSchema
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("errorschema: decode report: %w", err)
	}
	return out, nil
}

func asSchema(value any) ErrorSchema {
	switch v := value.(type) {
	case ErrorSchema:
		return v
	case map[string]any:
		return ErrorSchema(v)
	default:
		return nil
	}
}

func asMessages(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			switch msg := item.(type) {
			case string:
				out = append(out, msg)
			case nil:
			default:
				out = append(out, fmt.Sprint(msg))
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}
