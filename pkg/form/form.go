package form

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formgen-collapsible/internal/jsonvalue"
	"github.com/goliatone/go-formgen-collapsible/pkg/errorschema"
	"github.com/goliatone/go-formgen-collapsible/pkg/formcontext"
	"github.com/goliatone/go-formgen-collapsible/pkg/panels"
	rendertemplate "github.com/goliatone/go-formgen-collapsible/pkg/render/template"
	gotemplate "github.com/goliatone/go-formgen-collapsible/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formgen-collapsible/pkg/theme"
	"github.com/goliatone/go-formgen-collapsible/pkg/uischema"
	"github.com/goliatone/go-formgen-collapsible/pkg/widgets"
)

// RootID is the id of the top-level field; descendants append _<name>.
const RootID = "root"

// StylesheetAsset is the theme asset key linked ahead of the rendered form.
const StylesheetAsset = "panels.stylesheet"

// Option configures a Form.
type Option func(*Form)

// WithTheme installs a theme instead of the generated default.
func WithTheme(t theme.Theme) Option {
	return func(f *Form) {
		f.theme = t
		f.themeSet = true
	}
}

// WithUISchema attaches rendering hints.
func WithUISchema(ui uischema.UISchema) Option {
	return func(f *Form) {
		f.ui = ui
	}
}

// WithFormContext supplies the panel options (colSpan, labelAlign, ...).
func WithFormContext(fc *formcontext.Context) Option {
	return func(f *Form) {
		f.formContext = fc
	}
}

// WithErrors seeds the nested error report.
func WithErrors(es errorschema.ErrorSchema) Option {
	return func(f *Form) {
		f.errors = es
	}
}

// WithLogger routes mount, edit and failure events to logger.
func WithLogger(logger Logger) Option {
	return func(f *Form) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithTemplateRenderer replaces the engine used for leaf controls.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(f *Form) {
		if renderer != nil {
			f.controls = renderer
		}
	}
}

// WithWidgets replaces the registry that picks leaf controls.
func WithWidgets(registry *widgets.Registry) Option {
	return func(f *Form) {
		if registry != nil {
			f.widgets = registry
		}
	}
}

// WithDisabled renders the whole form disabled.
func WithDisabled(disabled bool) Option {
	return func(f *Form) {
		f.disabled = disabled
	}
}

// Form owns the data of one rendered form and the panels mounted for it.
type Form struct {
	mu sync.Mutex

	schema      *openapi3.Schema
	ui          uischema.UISchema
	data        any
	errors      errorschema.ErrorSchema
	formContext *formcontext.Context
	disabled    bool

	theme    theme.Theme
	themeSet bool
	controls rendertemplate.TemplateRenderer
	widgets  *widgets.Registry
	logger   Logger

	mounted map[string]*mountedPanel
	outline []string
	dirty   bool
	html    string
}

type mountedPanel struct {
	panel panels.Panel
	path  []string
	depth int
	title string
}

// New builds a form for schema seeded with data. Panels are mounted
// immediately so operations can target them before the first Render.
func New(schema *openapi3.Schema, data any, options ...Option) (*Form, error) {
	if schema == nil {
		return nil, fmt.Errorf("form: schema is required")
	}
	f := &Form{
		schema:  schema,
		data:    jsonvalue.Clone(data),
		logger:  nopLogger{},
		mounted: make(map[string]*mountedPanel),
		dirty:   true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	if f.formContext == nil {
		f.formContext = &formcontext.Context{}
	}

	if !f.themeSet {
		generated, err := theme.Generate()
		if err != nil {
			return nil, fmt.Errorf("form: generate default theme: %w", err)
		}
		f.theme = generated
	}
	if f.widgets == nil {
		f.widgets = widgets.NewRegistry()
	}
	if f.controls == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(TemplatesFS()), gotemplate.WithExtension(".tmpl"))
		if err != nil {
			return nil, fmt.Errorf("form: configure control templates: %w", err)
		}
		f.controls = engine
	}

	if err := f.refresh(context.Background()); err != nil {
		return nil, err
	}
	return f, nil
}

// SetTheme implements theme.Host. Mounted panels are dropped and remount
// with the new theme on the next render.
func (f *Form) SetTheme(t theme.Theme) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.theme = t
	f.themeSet = true
	f.mounted = make(map[string]*mountedPanel)
	f.dirty = true
}

// Render walks the schema and returns the themed form markup.
func (f *Form) Render(ctx context.Context) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dirty = true
	if err := f.refresh(ctx); err != nil {
		return nil, err
	}
	return []byte(f.html), nil
}

// Data returns a copy of the current form data.
func (f *Form) Data() any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return jsonvalue.Clone(f.data)
}

// Value returns a copy of the value at a dotted path.
func (f *Form) Value(path string) (any, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, ok := getPath(f.data, splitPath(path))
	return jsonvalue.Clone(value), ok
}

// SetData replaces the form data.
func (f *Form) SetData(data any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = jsonvalue.Clone(data)
	f.dirty = true
}

// SetErrors replaces the nested error report. Panels with errors below them
// are forced open on the next pass.
func (f *Form) SetErrors(es errorschema.ErrorSchema) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors = es
	f.dirty = true
}

// SetFieldErrors replaces the error report from flat field paths.
func (f *Form) SetFieldErrors(fieldErrors map[string][]string) {
	f.SetErrors(errorschema.FromFieldErrors(fieldErrors))
}

// Errors returns the current error report.
func (f *Form) Errors() errorschema.ErrorSchema {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors
}

func (f *Form) refresh(ctx context.Context) error {
	if !f.dirty {
		return nil
	}
	html, err := f.walk(ctx)
	if err != nil {
		return err
	}
	f.html = html
	f.dirty = false
	return nil
}

func (f *Form) setValue(path []string, value any) {
	updated, err := setPath(f.data, path, value)
	if err != nil {
		f.logger.Error(err, "form: write value at "+joinPath(path))
		return
	}
	f.data = updated
	f.dirty = true
}

func splitPath(path string) []string {
	path = strings.Trim(strings.TrimSpace(path), ".")
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

func joinPath(path []string) string {
	if len(path) == 0 {
		return "."
	}
	return strings.Join(path, ".")
}
