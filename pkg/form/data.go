package form

import (
	"fmt"
	"strconv"
)

func getPath(root any, path []string) (any, bool) {
	current := root
	for _, segment := range path {
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	return current, true
}

// setPath writes value at path and returns the updated root. Missing
// containers are created: numeric segments create slices, others maps.
func setPath(root any, path []string, value any) (any, error) {
	if len(path) == 0 {
		return value, nil
	}
	head, rest := path[0], path[1:]

	switch node := root.(type) {
	case map[string]any:
		child, err := setPath(node[head], rest, value)
		if err != nil {
			return nil, err
		}
		node[head] = child
		return node, nil
	case []any:
		idx, err := strconv.Atoi(head)
		if err != nil {
			return nil, fmt.Errorf("form: expected numeric segment, got %q", head)
		}
		if idx < 0 {
			return nil, fmt.Errorf("form: negative index %d", idx)
		}
		if len(node) <= idx {
			node = append(node, make([]any, idx+1-len(node))...)
		}
		child, err := setPath(node[idx], rest, value)
		if err != nil {
			return nil, err
		}
		node[idx] = child
		return node, nil
	case nil:
		if idx, err := strconv.Atoi(head); err == nil && idx >= 0 {
			return setPath(make([]any, idx+1), path, value)
		}
		return setPath(map[string]any{}, path, value)
	default:
		return nil, fmt.Errorf("form: cannot descend into %T at %q", root, head)
	}
}
