package formcontext

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formgen-collapsible/pkg/collapse"
	"github.com/goliatone/go-formgen-collapsible/pkg/editor"
)

// Label alignment values.
const (
	LabelAlignLeft  = "left"
	LabelAlignRight = "right"
)

// Defaults applied when options are omitted.
const (
	DefaultLabelAlign = LabelAlignRight
	DefaultRowGutter  = 24
)

// Context carries the optional host-supplied options recognised by the panel
// templates. The zero value is valid and yields the documented defaults.
type Context struct {
	// TextEditor replaces the builtin raw JSON editor when set.
	TextEditor editor.TextEditor `json:"-" yaml:"-"`
	// ColSpan fixes child column widths, either globally or per type/widget.
	ColSpan ColSpan `json:"colSpan,omitempty" yaml:"colSpan,omitempty"`
	// LabelAlign positions header labels: "left" or "right".
	LabelAlign string `json:"labelAlign,omitempty" yaml:"labelAlign,omitempty" validate:"omitempty,oneof=left right"`
	// RowGutter is the horizontal gap, in pixels, between object children.
	RowGutter *int `json:"rowGutter,omitempty" yaml:"rowGutter,omitempty" validate:"omitempty,min=0"`
	// CollapsedList names panels that mount collapsed.
	CollapsedList []string `json:"collapsedList,omitempty" yaml:"collapsedList,omitempty" validate:"omitempty,dive,required"`
	// OnCollapsedChange receives every user-driven collapse change.
	OnCollapsedChange collapse.ChangeFunc `json:"-" yaml:"-"`

	mu          sync.Mutex
	coordinator collapse.Coordinator
}

// Label returns the effective label alignment.
func (c *Context) Label() string {
	if c == nil || strings.TrimSpace(c.LabelAlign) == "" {
		return DefaultLabelAlign
	}
	return strings.ToLower(strings.TrimSpace(c.LabelAlign))
}

// Gutter returns the effective row gutter.
func (c *Context) Gutter() int {
	if c == nil || c.RowGutter == nil {
		return DefaultRowGutter
	}
	return *c.RowGutter
}

// Span returns the configured column span option.
func (c *Context) Span() ColSpan {
	if c == nil {
		return ColSpan{}
	}
	return c.ColSpan
}

// Editor resolves the text editor for the raw JSON modal.
func (c *Context) Editor() editor.TextEditor {
	if c == nil {
		return editor.Select(nil)
	}
	return editor.Select(c.TextEditor)
}

// Coordinator returns the shared collapse coordinator implied by
// CollapsedList and OnCollapsedChange, or nil when neither is supplied. The
// same instance is returned on every call so all panels share it. Safe for
// concurrent use by forms sharing one Context.
func (c *Context) Coordinator() collapse.Coordinator {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.coordinator != nil {
		return c.coordinator
	}
	switch {
	case len(c.CollapsedList) > 0:
		c.coordinator = collapse.NewCollapsedList(c.CollapsedList, c.OnCollapsedChange)
	case c.OnCollapsedChange != nil:
		c.coordinator = collapse.Notifier(c.OnCollapsedChange)
	default:
		return nil
	}
	return c.coordinator
}

// WithCoordinator installs an explicit coordinator, overriding the one
// derived from CollapsedList/OnCollapsedChange.
func (c *Context) WithCoordinator(coordinator collapse.Coordinator) *Context {
	if c == nil {
		c = &Context{}
	}
	c.mu.Lock()
	c.coordinator = coordinator
	c.mu.Unlock()
	return c
}

// Load decodes a form context document. JSON is tried first, then YAML; the
// source is only used for error messages.
func Load(data []byte, source string) (*Context, error) {
	ctx := &Context{}
	if len(strings.TrimSpace(string(data))) == 0 {
		return ctx, nil
	}

	var err error
	if strings.EqualFold(filepath.Ext(source), ".json") {
		err = json.Unmarshal(data, ctx)
	} else if jsonErr := json.Unmarshal(data, ctx); jsonErr != nil {
		ctx = &Context{}
		err = yaml.Unmarshal(data, ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("formcontext: parse %s: %w", source, err)
	}

	if err := ctx.Validate(); err != nil {
		return nil, fmt.Errorf("formcontext: %s: %w", source, err)
	}
	return ctx, nil
}

// LoadFile reads and decodes a form context file.
func LoadFile(path string) (*Context, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("formcontext: read %s: %w", path, err)
	}
	return Load(data, path)
}
