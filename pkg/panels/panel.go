package panels

import (
	"context"
	"fmt"
	"sync"

	"github.com/goliatone/go-formgen-collapsible/pkg/collapse"
	"github.com/goliatone/go-formgen-collapsible/pkg/editor"
	"github.com/goliatone/go-formgen-collapsible/pkg/errorschema"
	"github.com/goliatone/go-formgen-collapsible/pkg/layout"
)

// Kind distinguishes the two panel templates.
type Kind string

const (
	KindArray  Kind = "array"
	KindObject Kind = "object"
)

// Panel is the behaviour shared by ArrayPanel and ObjectPanel.
type Panel interface {
	ID() string
	Kind() Kind
	Update(props Props) error
	Toggle(expanded bool) bool
	Expanded() bool
	Forced() bool
	CanAdd() bool
	Add() error
	OpenEditor() error
	SetDraft(text string)
	Draft() (string, bool)
	EditorOpen() bool
	EditorError() error
	ConfirmEdit() error
	CancelEdit()
	Render(ctx context.Context) (string, error)
}

var (
	_ Panel = (*ArrayPanel)(nil)
	_ Panel = (*ObjectPanel)(nil)
)

// EditorTitle heads the raw JSON modal.
const EditorTitle = "Edit JSON"

// panel holds the state both templates share: the collapse controller, the
// re-expand token source and the raw JSON edit session.
type panel struct {
	mu         sync.Mutex
	kind       Kind
	renderer   *Renderer
	controller *collapse.Controller
	tokens     collapse.TokenSource
	session    editor.Session
	props      Props
}

func mount(kind Kind, renderer *Renderer, props Props) *panel {
	var options []collapse.Option
	if coordinator := props.FormContext.Coordinator(); coordinator != nil {
		options = append(options, collapse.WithCoordinator(coordinator))
	}
	p := &panel{
		kind:       kind,
		renderer:   renderer,
		controller: collapse.New(props.ID, options...),
		props:      props,
	}
	p.sync()
	return p
}

// sync runs a render pass through the controller. Callers hold p.mu.
func (p *panel) sync() {
	p.controller.Sync(errorschema.HasError(p.props.ErrorSchema), p.tokens.Current())
}

// reopen bumps the re-expand token and applies it. Callers hold p.mu.
func (p *panel) reopen() {
	p.controller.Sync(errorschema.HasError(p.props.ErrorSchema), p.tokens.Next())
}

// ID returns the panel id.
func (p *panel) ID() string {
	return p.controller.ID()
}

// Kind reports which template the panel renders with.
func (p *panel) Kind() Kind {
	return p.kind
}

// Update applies the props of a new render pass. A validation error anywhere
// below the panel forces it open until the error clears.
func (p *panel) Update(props Props) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if props.ID != p.controller.ID() {
		return fmt.Errorf("panels: panel %q cannot take props for %q", p.controller.ID(), props.ID)
	}
	p.props = props
	p.sync()
	return nil
}

// Toggle records a user expand/collapse request. It returns false when the
// panel is forced open and the request was ignored.
func (p *panel) Toggle(expanded bool) bool {
	return p.controller.Toggle(expanded)
}

// Expanded reports the state the panel renders with.
func (p *panel) Expanded() bool {
	return p.controller.Expanded()
}

// Forced reports whether validation errors hold the panel open.
func (p *panel) Forced() bool {
	return p.controller.Forced()
}

// CanAdd reports whether the add action is available.
func (p *panel) CanAdd() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.canAdd()
}

func (p *panel) canAdd() bool {
	if p.kind == KindObject {
		return CanExpand(p.props.Schema, p.props.UISchema, p.props.FormData)
	}
	return p.props.CanAdd
}

// Add asks the host to append an item or property and re-expands the panel
// so the new element is visible.
func (p *panel) Add() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.props.locked() || !p.canAdd() {
		return fmt.Errorf("%w: %s", ErrAddNotPermitted, p.controller.ID())
	}
	if p.props.OnAddClick != nil {
		p.props.OnAddClick()
	}
	p.reopen()
	return nil
}

// OpenEditor starts an edit session seeded with the current value.
func (p *panel) OpenEditor() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.props.locked() {
		return fmt.Errorf("%w: %s", ErrEditNotPermitted, p.controller.ID())
	}
	if err := p.session.Open(p.props.FormData, p.fallback()); err != nil {
		return fmt.Errorf("panels: open editor for %s: %w", p.controller.ID(), err)
	}
	return nil
}

// SetDraft replaces the text in the open editor.
func (p *panel) SetDraft(text string) {
	p.session.SetDraft(text)
}

// Draft returns the editor text while a session is open.
func (p *panel) Draft() (string, bool) {
	return p.session.Draft()
}

// EditorOpen reports whether the raw JSON modal is showing.
func (p *panel) EditorOpen() bool {
	return p.session.IsOpen()
}

// EditorError returns the parse error of the last rejected confirm.
func (p *panel) EditorError() error {
	return p.session.Err()
}

// ConfirmEdit parses the draft. On success the parsed value goes to
// OnChange exactly once, the session closes and the panel re-expands, all
// before any other panel operation can observe the intermediate state. A
// parse error leaves the session open with the draft untouched.
func (p *panel) ConfirmEdit() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	value, err := p.session.Confirm(p.props.OnChange)
	if err != nil {
		return err
	}
	p.props.FormData = value
	p.reopen()
	return nil
}

// CancelEdit closes the session and discards the draft.
func (p *panel) CancelEdit() {
	p.session.Cancel()
}

func (p *panel) fallback() any {
	if p.kind == KindArray {
		return []any{}
	}
	return map[string]any{}
}

// render produces the panel markup.
func (p *panel) render(ctx context.Context, partialKey, templateName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.mu.Lock()
	payload, err := p.payload()
	p.mu.Unlock()
	if err != nil {
		return "", err
	}
	return p.renderer.render(partialKey, templateName, map[string]any{"panel": payload})
}

func (p *panel) payload() (map[string]any, error) {
	props := p.props
	fc := props.FormContext

	editorPayload := map[string]any{"open": false, "title": EditorTitle}
	if draft, open := p.session.Draft(); open && p.session.IsOpen() {
		content, err := fc.Editor().RenderEditor(p.renderer.editorTemplates(), editor.Props{
			ID:    props.ID + "__editor",
			Value: draft,
		})
		if err != nil {
			return nil, fmt.Errorf("panels: render editor for %s: %w", props.ID, err)
		}
		editorPayload["open"] = true
		editorPayload["content"] = content
		if err := p.session.Err(); err != nil {
			editorPayload["error"] = err.Error()
		}
	}

	return map[string]any{
		"id":            props.ID,
		"kind":          string(p.kind),
		"title":         sanitizeTitle(props.title()),
		"description":   sanitizeDescription(props.description()),
		"required":      props.Required,
		"disabled":      props.locked(),
		"expanded":      p.controller.Expanded(),
		"forced":        p.controller.Forced(),
		"label_classes": layout.LabelClasses(fc.Label()),
		"can_add":       p.canAdd(),
		"gutter":        fc.Gutter(),
		"errors":        props.ErrorSchema.Errors(),
		"children":      p.children(),
		"editor":        editorPayload,
	}, nil
}

func (p *panel) children() []map[string]any {
	props := p.props
	out := make([]map[string]any, 0, len(props.Children))
	for index, child := range props.Children {
		if child.Hidden {
			continue
		}
		entry := map[string]any{
			"name":    child.Name,
			"index":   index,
			"content": child.Content,
		}
		if p.kind == KindObject {
			entry["span"] = layout.ColSpan(layout.Child{
				Type:   SchemaType(child.Schema),
				Field:  child.UISchema.Field(),
				Widget: child.UISchema.Widget(),
			}, len(props.Children), props.FormContext.Span())
		}
		out = append(out, entry)
	}
	return out
}
