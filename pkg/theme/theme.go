// Package theme assembles the collapsible panel templates into a bundle a
// host form engine installs as its active rendering theme, and resolves
// go-theme manifests into template overrides and design tokens.
package theme

import (
	"context"
	"fmt"
	"strings"

	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formgen-collapsible/pkg/panels"
)

// DefaultName is the registry name of the generated theme.
const DefaultName = "collapsible"

// PanelTemplate mounts a panel for the given props.
type PanelTemplate func(renderer *panels.Renderer, props panels.Props) panels.Panel

// FieldTemplate wraps a rendered control with its label and errors.
type FieldTemplate func(ctx context.Context, renderer *panels.Renderer, props panels.FieldProps) (string, error)

// Templates are the three templates a host engine delegates to.
type Templates struct {
	ArrayFieldTemplate  PanelTemplate
	ObjectFieldTemplate PanelTemplate
	FieldTemplate       FieldTemplate
}

// Theme bundles the templates with the renderer they draw through.
type Theme struct {
	Name      string
	Variant   string
	Templates Templates
	Renderer  *panels.Renderer
	// Config carries the resolved go-theme tokens and assets, if any.
	Config *gotheme.RendererConfig
}

// Host is implemented by form engines that accept a rendering theme.
type Host interface {
	SetTheme(t Theme)
}

// Install makes t the host's active theme.
func (t Theme) Install(host Host) error {
	if host == nil {
		return fmt.Errorf("theme: install %q: host is nil", t.Name)
	}
	if t.Renderer == nil {
		return fmt.Errorf("theme: install %q: renderer is nil", t.Name)
	}
	host.SetTheme(t)
	return nil
}

// CSSVars returns the resolved CSS custom properties.
func (t Theme) CSSVars() map[string]string {
	if t.Config == nil {
		return nil
	}
	return t.Config.CSSVars
}

// AssetURL resolves an asset key through the theme manifest.
func (t Theme) AssetURL(key string) string {
	if t.Config == nil || t.Config.AssetURL == nil {
		return ""
	}
	return t.Config.AssetURL(key)
}

// Option configures Generate.
type Option func(*config)

type config struct {
	name            string
	rendererOptions []panels.Option
	rendererConfig  *gotheme.RendererConfig
}

// WithName overrides the theme name.
func WithName(name string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.name = trimmed
		}
	}
}

// WithRendererOptions forwards options to panels.NewRenderer.
func WithRendererOptions(options ...panels.Option) Option {
	return func(cfg *config) {
		cfg.rendererOptions = append(cfg.rendererOptions, options...)
	}
}

// WithRendererConfig applies a resolved go-theme configuration: its partials
// override templates and its tokens become template globals.
func WithRendererConfig(rc *gotheme.RendererConfig) Option {
	return func(cfg *config) {
		cfg.rendererConfig = rc
	}
}

// Generate builds the collapsible theme.
func Generate(options ...Option) (Theme, error) {
	cfg := config{name: DefaultName}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	rendererOptions := append([]panels.Option(nil), cfg.rendererOptions...)
	if cfg.rendererConfig != nil {
		rendererOptions = append(rendererOptions, panels.WithPartials(cfg.rendererConfig.Partials))
	}
	renderer, err := panels.NewRenderer(rendererOptions...)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: generate %q: %w", cfg.name, err)
	}

	t := Theme{
		Name:     cfg.name,
		Renderer: renderer,
		Config:   cfg.rendererConfig,
		Templates: Templates{
			ArrayFieldTemplate: func(r *panels.Renderer, props panels.Props) panels.Panel {
				return panels.NewArrayPanel(r, props)
			},
			ObjectFieldTemplate: func(r *panels.Renderer, props panels.Props) panels.Panel {
				return panels.NewObjectPanel(r, props)
			},
			FieldTemplate: func(ctx context.Context, r *panels.Renderer, props panels.FieldProps) (string, error) {
				return r.RenderField(ctx, props)
			},
		},
	}

	if rc := cfg.rendererConfig; rc != nil {
		t.Variant = rc.Variant
		if err := renderer.Templates().GlobalContext(map[string]any{
			"theme": map[string]any{
				"name":     rc.Theme,
				"variant":  rc.Variant,
				"tokens":   rc.Tokens,
				"css_vars": rc.CSSVars,
			},
		}); err != nil {
			return Theme{}, fmt.Errorf("theme: generate %q: seed globals: %w", cfg.name, err)
		}
	}
	return t, nil
}

// MustGenerate panics when Generate fails. Useful for init-time wiring.
func MustGenerate(options ...Option) Theme {
	t, err := Generate(options...)
	if err != nil {
		panic(err)
	}
	return t
}
