package gotemplate

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"
	json "github.com/goccy/go-json"
)

func registerFilters() {
	filters := map[string]pongo2.FilterFunction{
		"trim":       filterTrim,
		"tojson":     filterToJSON,
		"classnames": filterClassNames,
	}
	for name, fn := range filters {
		if !pongo2.FilterExists(name) {
			_ = pongo2.RegisterFilter(name, fn)
		}
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterToJSON encodes the input as compact JSON for data-* attributes.
func filterToJSON(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(in.Interface()); err != nil {
		return nil, &pongo2.Error{Sender: "filter:tojson", OrigError: err}
	}
	return pongo2.AsValue(strings.TrimRight(buf.String(), "\n")), nil
}

// filterClassNames joins the non-empty entries of a list with single spaces.
// A plain string passes through trimmed.
func filterClassNames(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	var names []string
	add := func(value any) {
		if value == nil {
			return
		}
		if name := strings.TrimSpace(fmt.Sprint(value)); name != "" {
			names = append(names, name)
		}
	}

	switch typed := in.Interface().(type) {
	case nil:
	case string:
		add(typed)
	case []string:
		for _, name := range typed {
			add(name)
		}
	case []any:
		for _, name := range typed {
			add(name)
		}
	default:
		if in.CanSlice() {
			for i := 0; i < in.Len(); i++ {
				add(in.Index(i).Interface())
			}
		}
	}
	return pongo2.AsValue(strings.Join(names, " ")), nil
}
