package editor

import (
	"bytes"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// Pretty serialises value as two-space indented JSON without HTML escaping,
// matching what users see in the raw editor.
func Pretty(value any) (string, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return "", fmt.Errorf("editor: encode value: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// Parse decodes draft text using standard JSON rules.
func Parse(text string) (any, error) {
	var out any
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, &ParseError{Draft: text, Err: err}
	}
	return out, nil
}

// ParseError reports draft text that is not valid JSON.
type ParseError struct {
	Draft string
	Err   error
}

func (e *ParseError) Error() string {
	if e == nil || e.Err == nil {
		return "editor: invalid JSON"
	}
	return "editor: invalid JSON: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
