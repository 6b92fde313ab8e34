package panels

import (
	"context"
	"sort"
	"strings"
)

// FormProps describe the element wrapping a whole rendered form.
type FormProps struct {
	ID      string
	Content string
	Theme   string
	Variant string
	// CSSVars are emitted as an inline style so templates can reference
	// theme tokens through var(--name).
	CSSVars map[string]string
	// Stylesheet is an optional asset URL linked ahead of the form.
	Stylesheet string
}

// RenderForm wraps the root panel with the theme attributes.
func (r *Renderer) RenderForm(ctx context.Context, props FormProps) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return r.render(PartialForm, FormTemplate, map[string]any{
		"form": map[string]any{
			"id":         props.ID,
			"content":    props.Content,
			"theme":      props.Theme,
			"variant":    props.Variant,
			"style":      inlineVars(props.CSSVars),
			"stylesheet": strings.TrimSpace(props.Stylesheet),
		},
	})
}

func inlineVars(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		value := strings.TrimSpace(vars[name])
		if value == "" || strings.ContainsAny(value, ";{}") {
			continue
		}
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		parts = append(parts, name+": "+value)
	}
	return strings.Join(parts, "; ")
}
