package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	rendertemplate "github.com/goliatone/go-formgen-collapsible/pkg/render/template"
	"github.com/goliatone/go-formgen-collapsible/pkg/uischema"
	"github.com/goliatone/go-formgen-collapsible/pkg/widgets"
)

type control struct {
	id       string
	name     string
	schema   *openapi3.Schema
	ui       uischema.UISchema
	value    any
	required bool
	disabled bool
}

func renderControl(templates rendertemplate.TemplateRenderer, registry *widgets.Registry, c control) (string, error) {
	widget, inputType := controlKind(registry.Resolve(widgets.Leaf{Schema: c.schema, UISchema: c.ui}))
	payload := map[string]any{
		"id":       c.id,
		"name":     c.name,
		"widget":   widget,
		"type":     inputType,
		"value":    formatValue(c.value),
		"checked":  c.value == true,
		"required": c.required,
		"disabled": c.disabled,
	}
	if widget == "select" {
		payload["options"] = selectOptions(c.schema, c.value)
	}
	out, err := templates.RenderTemplate(controlTemplate, map[string]any{"control": payload})
	if err != nil {
		return "", fmt.Errorf("form: render control %s: %w", c.id, err)
	}
	return strings.TrimSpace(out), nil
}

// controlKind maps a resolved widget onto the control template: a
// checkbox, a select, a textarea or an input of some type.
func controlKind(widget string) (kind, inputType string) {
	switch widget {
	case widgets.WidgetCheckbox, widgets.WidgetSelect, widgets.WidgetTextarea:
		return widget, ""
	case widgets.WidgetDateTime:
		return "input", "datetime-local"
	case "":
		return "input", widgets.WidgetText
	default:
		return "input", widget
	}
}

func selectOptions(schema *openapi3.Schema, current any) []map[string]any {
	if schema == nil {
		return nil
	}
	selected := formatValue(current)
	options := make([]map[string]any, 0, len(schema.Enum))
	for _, entry := range schema.Enum {
		value := formatValue(entry)
		options = append(options, map[string]any{
			"value":    value,
			"label":    value,
			"selected": value == selected && current != nil,
		})
	}
	return options
}

func formatValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int:
		return strconv.Itoa(typed)
	default:
		return fmt.Sprint(typed)
	}
}
