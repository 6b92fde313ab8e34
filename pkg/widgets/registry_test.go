package widgets

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formgen-collapsible/pkg/uischema"
)

func TestResolve_ExplicitWidgetWins(t *testing.T) {
	reg := NewRegistry()
	leaf := Leaf{
		Schema:   openapi3.NewBoolSchema(),
		UISchema: uischema.UISchema{"ui:widget": "password"},
	}

	if got := reg.Resolve(leaf); got != "password" {
		t.Fatalf("expected explicit widget to win, got %q", got)
	}
}

func TestResolve_Builtins(t *testing.T) {
	reg := NewRegistry()
	long := uint64(1000)

	enum := openapi3.NewStringSchema()
	enum.Enum = []any{"a", "b"}
	notes := openapi3.NewStringSchema()
	notes.MaxLength = &long

	cases := []struct {
		name   string
		schema *openapi3.Schema
		expect string
	}{
		{name: "boolean", schema: openapi3.NewBoolSchema(), expect: WidgetCheckbox},
		{name: "enum", schema: enum, expect: WidgetSelect},
		{name: "integer", schema: openapi3.NewIntegerSchema(), expect: WidgetNumber},
		{name: "number", schema: openapi3.NewFloat64Schema(), expect: WidgetNumber},
		{name: "long string", schema: notes, expect: WidgetTextarea},
		{name: "json format", schema: openapi3.NewStringSchema().WithFormat("json"), expect: WidgetTextarea},
		{name: "email", schema: openapi3.NewStringSchema().WithFormat("email"), expect: WidgetEmail},
		{name: "date-time", schema: openapi3.NewDateTimeSchema(), expect: WidgetDateTime},
		{name: "uri", schema: openapi3.NewStringSchema().WithFormat("uri"), expect: WidgetURL},
		{name: "plain", schema: openapi3.NewStringSchema(), expect: WidgetText},
		{name: "missing schema", schema: nil, expect: WidgetText},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := reg.Resolve(Leaf{Schema: tc.schema}); got != tc.expect {
				t.Fatalf("expected %q, got %q", tc.expect, got)
			}
		})
	}
}

func TestRegister_PriorityAndOrder(t *testing.T) {
	reg := &Registry{}
	reg.Register("first", 10, func(Leaf) bool { return true })
	reg.Register("second", 10, func(Leaf) bool { return true })
	reg.Register("urgent", 20, func(leaf Leaf) bool { return leaf.Format() == "color" })
	reg.Register("  ", 99, func(Leaf) bool { return true })
	reg.Register("nil", 99, nil)

	if diff := cmp.Diff([]string{"urgent", "first", "second"}, reg.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if got := reg.Resolve(Leaf{Schema: openapi3.NewStringSchema().WithFormat("color")}); got != "urgent" {
		t.Fatalf("expected higher priority match, got %q", got)
	}
	if got := reg.Resolve(Leaf{Schema: openapi3.NewStringSchema()}); got != "first" {
		t.Fatalf("expected registration order on ties, got %q", got)
	}
}

func TestResolve_NilRegistry(t *testing.T) {
	var reg *Registry
	if got := reg.Resolve(Leaf{Schema: openapi3.NewBoolSchema()}); got != WidgetText {
		t.Fatalf("expected text fallback, got %q", got)
	}
}
