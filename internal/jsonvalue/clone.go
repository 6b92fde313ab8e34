// Package jsonvalue holds helpers for decoded JSON trees (maps of
// map[string]any and []any).
package jsonvalue

// Clone returns a deep copy of value. Maps and slices are copied
// recursively; scalars are returned as is.
func Clone(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		clone := make(map[string]any, len(typed))
		for k, v := range typed {
			clone[k] = Clone(v)
		}
		return clone
	case []any:
		clone := make([]any, len(typed))
		for i, v := range typed {
			clone[i] = Clone(v)
		}
		return clone
	default:
		return typed
	}
}
