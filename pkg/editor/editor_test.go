package editor_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formgen-collapsible/pkg/editor"
	rendertemplate "github.com/goliatone/go-formgen-collapsible/pkg/render/template"
)

func TestPretty(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  string
	}{
		{name: "array", value: []any{1, 2, 3}, want: "[\n  1,\n  2,\n  3\n]"},
		{name: "empty object", value: map[string]any{}, want: "{}"},
		{name: "empty array", value: []any{}, want: "[]"},
		{name: "nested", value: map[string]any{"b": []any{"<x>"}, "a": true}, want: "{\n  \"a\": true,\n  \"b\": [\n    \"<x>\"\n  ]\n}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := editor.Pretty(tc.value)
			if err != nil {
				t.Fatalf("pretty: %v", err)
			}
			if got != tc.want {
				t.Fatalf("pretty mismatch\nwant: %q\n got: %q", tc.want, got)
			}
		})
	}
}

func TestSession_RoundTrip(t *testing.T) {
	current := map[string]any{
		"name": "Ada",
		"tags": []any{"a", "b"},
		"meta": map[string]any{"age": float64(36), "active": true, "nick": nil},
	}

	var session editor.Session
	if err := session.Open(current, map[string]any{}); err != nil {
		t.Fatalf("open: %v", err)
	}

	var applied []any
	if _, err := session.Confirm(func(v any) { applied = append(applied, v) }); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if len(applied) != 1 {
		t.Fatalf("expected one apply, got %d", len(applied))
	}
	if diff := cmp.Diff(any(current), applied[0]); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_ArrayScenario(t *testing.T) {
	var session editor.Session
	if err := session.Open([]any{1, 2, 3}, []any{}); err != nil {
		t.Fatalf("open: %v", err)
	}

	draft, ok := session.Draft()
	if !ok || draft != "[\n  1,\n  2,\n  3\n]" {
		t.Fatalf("unexpected draft %q", draft)
	}

	session.SetDraft("[1,2,3,4]")

	calls := 0
	var got any
	if _, err := session.Confirm(func(v any) {
		calls++
		got = v
	}); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected onChange once, got %d", calls)
	}
	if diff := cmp.Diff([]any{float64(1), float64(2), float64(3), float64(4)}, got); diff != "" {
		t.Fatalf("parsed mismatch (-want +got):\n%s", diff)
	}
	if session.IsOpen() {
		t.Fatalf("expected session closed after confirm")
	}
	if _, ok := session.Draft(); ok {
		t.Fatalf("expected draft cleared after confirm")
	}
}

func TestSession_InvalidJSONKeepsSessionOpen(t *testing.T) {
	var session editor.Session
	if err := session.Open(map[string]any{}, map[string]any{}); err != nil {
		t.Fatalf("open: %v", err)
	}
	session.SetDraft("{not valid json")

	called := false
	_, err := session.Confirm(func(any) { called = true })
	if err == nil {
		t.Fatalf("expected parse error")
	}
	var parseErr *editor.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *editor.ParseError, got %T", err)
	}
	if called {
		t.Fatalf("onChange must not be called on parse failure")
	}
	if !session.IsOpen() {
		t.Fatalf("session must stay open on parse failure")
	}
	if draft, _ := session.Draft(); draft != "{not valid json" {
		t.Fatalf("draft must stay untouched, got %q", draft)
	}
	if session.Err() == nil {
		t.Fatalf("expected inline error to be retained")
	}
}

func TestSession_CancelDiscardsDraft(t *testing.T) {
	var session editor.Session
	if err := session.Open(nil, []any{}); err != nil {
		t.Fatalf("open: %v", err)
	}
	if draft, _ := session.Draft(); draft != "[]" {
		t.Fatalf("expected fallback draft, got %q", draft)
	}
	session.SetDraft("[1]")
	session.Cancel()

	if session.IsOpen() {
		t.Fatalf("expected session closed after cancel")
	}
	if _, ok := session.Draft(); ok {
		t.Fatalf("expected draft discarded after cancel")
	}
	if _, err := session.Confirm(func(any) { t.Fatalf("unexpected apply") }); !errors.Is(err, editor.ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
}

func TestSession_EmptyDraftUsesFallback(t *testing.T) {
	var session editor.Session
	if err := session.Open([]any{"x"}, []any{}); err != nil {
		t.Fatalf("open: %v", err)
	}
	session.SetDraft("   ")
	got, err := session.Confirm(nil)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if diff := cmp.Diff([]any{}, got); diff != "" {
		t.Fatalf("fallback mismatch (-want +got):\n%s", diff)
	}
}

func TestSelect(t *testing.T) {
	if got := editor.Select(nil); got.Kind() != editor.KindBuiltin {
		t.Fatalf("expected builtin editor when none supplied, got %s", got.Kind())
	}

	custom := editor.Func(func(_ rendertemplate.TemplateRenderer, props editor.Props) (string, error) {
		return "<monaco id=\"" + props.ID + "\"></monaco>", nil
	})
	selected := editor.Select(custom)
	if selected.Kind() != editor.KindExternal {
		t.Fatalf("expected external editor, got %s", selected.Kind())
	}

	renderer := &recordingRenderer{}
	out, err := selected.RenderEditor(renderer, editor.Props{ID: "root_editor", Value: "{}"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if renderer.name != editor.LoadingTemplate {
		t.Fatalf("expected loading wrapper template, got %q", renderer.name)
	}
	if renderer.data["tip"] != editor.DefaultLoadingTip {
		t.Fatalf("unexpected tip %v", renderer.data["tip"])
	}
	if renderer.data["content"] != `<monaco id="root_editor"></monaco>` {
		t.Fatalf("unexpected wrapped content %v", renderer.data["content"])
	}
	if out != "rendered:"+editor.LoadingTemplate {
		t.Fatalf("unexpected output %q", out)
	}
	counting := &recordingRenderer{}
	if _, err := editor.Select(selected).RenderEditor(counting, editor.Props{ID: "root_editor"}); err != nil {
		t.Fatalf("render reselected: %v", err)
	}
	if counting.calls != 1 {
		t.Fatalf("selecting an already wrapped editor must not wrap twice, got %d renders", counting.calls)
	}
}

type pointerEditor struct{}

func (*pointerEditor) Kind() editor.Kind { return editor.KindExternal }

func (*pointerEditor) RenderEditor(rendertemplate.TemplateRenderer, editor.Props) (string, error) {
	return "<custom-editor></custom-editor>", nil
}

func TestSelect_TypedNilFallsBack(t *testing.T) {
	var typed *pointerEditor
	var fn editor.Func
	for name, custom := range map[string]editor.TextEditor{"pointer": typed, "func": fn} {
		got := editor.Select(custom)
		if got.Kind() != editor.KindBuiltin {
			t.Fatalf("%s: expected builtin fallback, got %s", name, got.Kind())
		}
		if _, ok := got.(editor.SimpleTextEditor); !ok {
			t.Fatalf("%s: expected SimpleTextEditor, got %T", name, got)
		}
	}

	if got := editor.Select(&pointerEditor{}); got.Kind() != editor.KindExternal {
		t.Fatalf("a non-nil pointer editor must be kept, got %s", got.Kind())
	}
}

func TestSimpleTextEditor_Defaults(t *testing.T) {
	renderer := &recordingRenderer{}
	if _, err := (editor.SimpleTextEditor{}).RenderEditor(renderer, editor.Props{ID: "x", Value: "[]"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	want := map[string]any{"id": "x", "value": "[]", "width": "100%", "height": "70vh"}
	if diff := cmp.Diff(want, renderer.data); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
	if _, err := (editor.SimpleTextEditor{}).RenderEditor(nil, editor.Props{}); err == nil {
		t.Fatalf("expected error without renderer")
	}
}

type recordingRenderer struct {
	name  string
	data  map[string]any
	calls int
}

func (r *recordingRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	return r.RenderTemplate(name, data, out...)
}

func (r *recordingRenderer) RenderTemplate(name string, data any, _ ...io.Writer) (string, error) {
	r.calls++
	r.name = name
	payload, ok := data.(map[string]any)
	if !ok {
		return "", fmt.Errorf("unexpected payload %T", data)
	}
	r.data = payload
	return "rendered:" + name, nil
}

func (r *recordingRenderer) RenderString(string, any, ...io.Writer) (string, error) {
	return "", nil
}

func (r *recordingRenderer) RegisterFilter(string, func(any, any) (any, error)) error {
	return nil
}

func (r *recordingRenderer) GlobalContext(any) error {
	return nil
}
