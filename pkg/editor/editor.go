package editor

import (
	"fmt"
	"reflect"
	"strings"

	rendertemplate "github.com/goliatone/go-formgen-collapsible/pkg/render/template"
)

// Kind tags which variant of text editor fills the editor slot.
type Kind string

const (
	// KindBuiltin is the minimal contentEditable editor shipped with the theme.
	KindBuiltin Kind = "builtin"
	// KindExternal is a caller-supplied rich editor.
	KindExternal Kind = "external"
)

// DefaultLoadingTip is shown while an external editor boots on the client.
const DefaultLoadingTip = "Loading TextEditor ..."

// Template names used by the builtin editor and the loading wrapper.
const (
	SimpleTextEditorTemplate = "templates/editor/simple_text_editor.tmpl"
	LoadingTemplate          = "templates/editor/loading.tmpl"
)

// Props describe one editor instance inside the edit modal.
type Props struct {
	ID     string
	Value  string
	Width  string
	Height string
}

// TextEditor renders the editing surface for the raw JSON modal. Editors
// receive the active template renderer so they can reuse the theme bundle.
type TextEditor interface {
	Kind() Kind
	RenderEditor(r rendertemplate.TemplateRenderer, props Props) (string, error)
}

// Select returns the editor for the slot: the builtin editor when custom is
// nil (including a typed nil), otherwise custom wrapped with a loading
// placeholder.
func Select(custom TextEditor) TextEditor {
	if isNil(custom) {
		return SimpleTextEditor{}
	}
	if custom.Kind() == KindBuiltin {
		return custom
	}
	if _, ok := custom.(loadingEditor); ok {
		return custom
	}
	return loadingEditor{inner: custom, tip: DefaultLoadingTip}
}

func isNil(editor TextEditor) bool {
	if editor == nil {
		return true
	}
	value := reflect.ValueOf(editor)
	switch value.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan:
		return value.IsNil()
	default:
		return false
	}
}

// SimpleTextEditor is a contentEditable <pre> that posts its text content
// back through a hidden input.
type SimpleTextEditor struct{}

// Kind implements TextEditor.
func (SimpleTextEditor) Kind() Kind { return KindBuiltin }

// RenderEditor implements TextEditor.
func (SimpleTextEditor) RenderEditor(r rendertemplate.TemplateRenderer, props Props) (string, error) {
	if r == nil {
		return "", fmt.Errorf("editor: template renderer not configured for %q", SimpleTextEditorTemplate)
	}
	out, err := r.RenderTemplate(SimpleTextEditorTemplate, propsPayload(props))
	if err != nil {
		return "", fmt.Errorf("editor: render builtin editor: %w", err)
	}
	return out, nil
}

// Func adapts a plain render function into an external TextEditor.
type Func func(r rendertemplate.TemplateRenderer, props Props) (string, error)

// Kind implements TextEditor.
func (f Func) Kind() Kind { return KindExternal }

// RenderEditor implements TextEditor.
func (f Func) RenderEditor(r rendertemplate.TemplateRenderer, props Props) (string, error) {
	if f == nil {
		return SimpleTextEditor{}.RenderEditor(r, props)
	}
	return f(r, props)
}

type loadingEditor struct {
	inner TextEditor
	tip   string
}

func (l loadingEditor) Kind() Kind { return KindExternal }

func (l loadingEditor) RenderEditor(r rendertemplate.TemplateRenderer, props Props) (string, error) {
	content, err := l.inner.RenderEditor(r, props)
	if err != nil {
		return "", fmt.Errorf("editor: render external editor: %w", err)
	}
	if r == nil {
		return content, nil
	}
	payload := propsPayload(props)
	payload["tip"] = l.tip
	payload["content"] = content
	out, err := r.RenderTemplate(LoadingTemplate, payload)
	if err != nil {
		return "", fmt.Errorf("editor: render loading wrapper: %w", err)
	}
	return out, nil
}

func propsPayload(props Props) map[string]any {
	width := strings.TrimSpace(props.Width)
	if width == "" {
		width = "100%"
	}
	height := strings.TrimSpace(props.Height)
	if height == "" {
		height = "70vh"
	}
	return map[string]any{
		"id":     props.ID,
		"value":  props.Value,
		"width":  width,
		"height": height,
	}
}
