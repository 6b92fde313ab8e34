package layout_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formgen-collapsible/pkg/formcontext"
	"github.com/goliatone/go-formgen-collapsible/pkg/layout"
)

func TestColSpan(t *testing.T) {
	mapping := formcontext.Mapping(map[string]int{"textarea": 20, "color": 6, "string": 8})

	cases := []struct {
		name     string
		child    layout.Child
		siblings int
		span     formcontext.ColSpan
		want     int
	}{
		{name: "single child", child: layout.Child{Type: "string"}, siblings: 1, want: 24},
		{name: "two scalars", child: layout.Child{Type: "string"}, siblings: 2, want: 12},
		{name: "object", child: layout.Child{Type: "object"}, siblings: 3, want: 24},
		{name: "array", child: layout.Child{Type: "array"}, siblings: 3, want: 24},
		{name: "textarea", child: layout.Child{Type: "string", Widget: "textarea"}, siblings: 3, want: 24},
		{name: "fixed", child: layout.Child{Type: "object"}, siblings: 3, span: formcontext.Fixed(6), want: 6},
		{name: "mapping widget first", child: layout.Child{Type: "string", Widget: "textarea"}, siblings: 3, span: mapping, want: 20},
		{name: "mapping field before type", child: layout.Child{Type: "string", Field: "color"}, siblings: 3, span: mapping, want: 6},
		{name: "mapping type", child: layout.Child{Type: "string", Widget: "password"}, siblings: 3, span: mapping, want: 8},
		{name: "mapping miss falls back", child: layout.Child{Type: "boolean"}, siblings: 3, span: mapping, want: 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := layout.ColSpan(tc.child, tc.siblings, tc.span); got != tc.want {
				t.Fatalf("expected span %d, got %d", tc.want, got)
			}
		})
	}
}

func TestLabelClasses(t *testing.T) {
	if diff := cmp.Diff([]string{"formgen-item-label"}, layout.LabelClasses("right")); diff != "" {
		t.Fatalf("right alignment mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"formgen-item-label", "formgen-item-label-left"}, layout.LabelClasses("left")); diff != "" {
		t.Fatalf("left alignment mismatch (-want +got):\n%s", diff)
	}
}
