package panels

import (
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/goliatone/go-formgen-collapsible/pkg/editor"
	rendertemplate "github.com/goliatone/go-formgen-collapsible/pkg/render/template"
	gotemplate "github.com/goliatone/go-formgen-collapsible/pkg/render/template/gotemplate"
)

// Option configures a Renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateDir      string
	templateRenderer rendertemplate.TemplateRenderer
	partials         map[string]string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk. Files there
// shadow the bundle, so a directory may override a single template.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templateDir = strings.TrimSpace(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithPartials overrides templates by partial key (see PartialArray and
// friends). Blank entries are ignored.
func WithPartials(partials map[string]string) Option {
	return func(cfg *config) {
		if len(partials) == 0 {
			return
		}
		if cfg.partials == nil {
			cfg.partials = make(map[string]string, len(partials))
		}
		for key, name := range partials {
			key = strings.TrimSpace(key)
			name = strings.TrimSpace(name)
			if key == "" || name == "" {
				continue
			}
			cfg.partials[key] = name
		}
	}
}

// Renderer turns panel state into HTML through the template engine.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	partials  map[string]string
}

// NewRenderer constructs a Renderer backed by the embedded bundle unless an
// alternate bundle or engine is supplied.
func NewRenderer(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithBaseDir(cfg.templateDir),
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("panels: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, partials: cfg.partials}, nil
}

// Templates returns the underlying template engine.
func (r *Renderer) Templates() rendertemplate.TemplateRenderer {
	if r == nil {
		return nil
	}
	return r.templates
}

func (r *Renderer) resolve(partialKey, templateName string) string {
	if r.partials != nil {
		if candidate := strings.TrimSpace(r.partials[partialKey]); candidate != "" {
			return candidate
		}
	}
	return templateName
}

func (r *Renderer) render(partialKey, templateName string, payload map[string]any) (string, error) {
	if r == nil || r.templates == nil {
		return "", fmt.Errorf("panels: template renderer not configured for %q", templateName)
	}
	resolved := r.resolve(partialKey, templateName)
	out, err := r.templates.RenderTemplate(resolved, payload)
	if err != nil {
		return "", fmt.Errorf("panels: render template %q: %w", resolved, err)
	}
	return out, nil
}

// editorTemplates hands editors an engine that honours the editor partial
// overrides while keeping the template names editors know about.
func (r *Renderer) editorTemplates() rendertemplate.TemplateRenderer {
	aliases := map[string]string{}
	if name := r.resolve(PartialEditor, editor.SimpleTextEditorTemplate); name != editor.SimpleTextEditorTemplate {
		aliases[editor.SimpleTextEditorTemplate] = name
	}
	if name := r.resolve(PartialEditorLoading, editor.LoadingTemplate); name != editor.LoadingTemplate {
		aliases[editor.LoadingTemplate] = name
	}
	if len(aliases) == 0 {
		return r.templates
	}
	return aliasRenderer{TemplateRenderer: r.templates, aliases: aliases}
}

type aliasRenderer struct {
	rendertemplate.TemplateRenderer
	aliases map[string]string
}

func (a aliasRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	if alias, ok := a.aliases[name]; ok {
		name = alias
	}
	return a.TemplateRenderer.Render(name, data, out...)
}

func (a aliasRenderer) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if alias, ok := a.aliases[name]; ok {
		name = alias
	}
	return a.TemplateRenderer.RenderTemplate(name, data, out...)
}
