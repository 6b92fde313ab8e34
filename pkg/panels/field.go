package panels

import (
	"context"
	"strings"

	"github.com/goliatone/go-formgen-collapsible/pkg/formcontext"
	"github.com/goliatone/go-formgen-collapsible/pkg/layout"
)

// FieldProps describe one field wrapper. Composite fields (objects and
// arrays) carry their own title inside the panel, so only errors and help
// are rendered around them.
type FieldProps struct {
	ID          string
	Label       string
	Description string
	Help        string
	Content     string
	Errors      []string
	Required    bool
	Hidden      bool
	Composite   bool
	FormContext *formcontext.Context
}

// RenderField wraps a rendered control with its label, description, errors
// and help text.
func (r *Renderer) RenderField(ctx context.Context, props FieldProps) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	label := ""
	description := ""
	if !props.Composite {
		label = sanitizeTitle(props.Label)
		description = sanitizeDescription(props.Description)
	}
	return r.render(PartialField, FieldTemplate, map[string]any{
		"field": map[string]any{
			"id":            props.ID,
			"label":         label,
			"description":   description,
			"help":          strings.TrimSpace(props.Help),
			"content":       props.Content,
			"errors":        props.Errors,
			"required":      props.Required,
			"hidden":        props.Hidden,
			"composite":     props.Composite,
			"label_classes": layout.LabelClasses(props.FormContext.Label()),
		},
	})
}
