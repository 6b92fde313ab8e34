// Package layout holds the presentational rules object panels use to place
// their children on a 24-column grid.
package layout

import (
	"strings"

	"github.com/goliatone/go-formgen-collapsible/pkg/formcontext"
)

// Label class names applied to panel headers.
const (
	LabelClass         = "formgen-item-label"
	LabelClassLeftSide = LabelClass + "-left"
)

// Child describes the attributes of one object property that influence its
// column span.
type Child struct {
	Type   string
	Field  string
	Widget string
}

// DefaultSpan returns the span used when the form context does not fix one:
// full width for lone children, nested composites and textareas, half width
// otherwise.
func DefaultSpan(child Child, siblings int) int {
	switch {
	case siblings < 2,
		child.Type == "object",
		child.Type == "array",
		child.Widget == "textarea":
		return formcontext.MaxSpan
	default:
		return formcontext.MaxSpan / 2
	}
}

// ColSpan resolves the span for child. A numeric colSpan applies to every
// child. A mapping is consulted by widget, then custom field, then schema
// type; the first key present wins and the default applies when none is.
func ColSpan(child Child, siblings int, span formcontext.ColSpan) int {
	if span.IsMapping() {
		for _, key := range []string{child.Widget, child.Field, child.Type} {
			key = strings.TrimSpace(key)
			if key == "" {
				continue
			}
			if value, ok := span.Lookup(key); ok {
				return value
			}
		}
		return DefaultSpan(child, siblings)
	}
	if span.Value != nil {
		return *span.Value
	}
	return DefaultSpan(child, siblings)
}

// LabelClasses returns the header label classes for the given alignment.
func LabelClasses(align string) []string {
	if strings.EqualFold(strings.TrimSpace(align), formcontext.LabelAlignLeft) {
		return []string{LabelClass, LabelClassLeftSide}
	}
	return []string{LabelClass}
}
