package collapsible

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formgen-collapsible/pkg/form"
	"github.com/goliatone/go-formgen-collapsible/pkg/theme"
)

// NewForm exposes the form constructor from the top-level module.
func NewForm(schema *openapi3.Schema, data any, options ...form.Option) (*form.Form, error) {
	return form.New(schema, data, options...)
}

// RenderHTML renders schema and data as collapsible panels in one call. It
// is the simplest entry point for callers that just want HTML output.
func RenderHTML(ctx context.Context, schema *openapi3.Schema, data any, options ...form.Option) ([]byte, error) {
	f, err := form.New(schema, data, options...)
	if err != nil {
		return nil, err
	}
	return f.Render(ctx)
}

// WithThemeSelector resolves name/variant through a go-theme selector and
// returns the form option installing the resulting theme: manifest partials
// override templates, tokens become CSS variables and asset keys resolve to
// URLs.
func WithThemeSelector(selector gotheme.ThemeSelector, name, variant string, options ...theme.Option) (form.Option, error) {
	rc, err := theme.Resolve(selector, name, variant)
	if err != nil {
		return nil, err
	}
	options = append(options, theme.WithName(rc.Theme), theme.WithRendererConfig(rc))
	th, err := theme.Generate(options...)
	if err != nil {
		return nil, fmt.Errorf("collapsible: generate theme %q: %w", rc.Theme, err)
	}
	return form.WithTheme(th), nil
}
