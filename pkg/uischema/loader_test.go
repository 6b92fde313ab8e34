package uischema_test

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formgen-collapsible/pkg/uischema"
)

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"article.json": {Data: []byte(`{"ui:title":"Article","tags":{"ui:options":{"orderable":false}}}`)},
		"nested/author.yaml": {Data: []byte(`
ui:description: Author details
bio:
  ui:widget: textarea
`)},
		"README.md": {Data: []byte("ignored")},
	}

	store, err := uischema.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if diff := cmp.Diff([]string{"article", "nested/author"}, store.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	article, ok := store.Get("article")
	if !ok {
		t.Fatalf("expected article document")
	}
	if article.Title() != "Article" {
		t.Fatalf("unexpected title %q", article.Title())
	}
	if article.Child("tags").Bool("orderable", true) {
		t.Fatalf("expected orderable=false from nested ui:options")
	}

	author, _ := store.Get("nested/author")
	if author.Description() != "Author details" {
		t.Fatalf("unexpected description %q", author.Description())
	}
	if author.Child("bio").Widget() != "textarea" {
		t.Fatalf("expected textarea widget, got %q", author.Child("bio").Widget())
	}
}

func TestLoadFS_Nil(t *testing.T) {
	store, err := uischema.LoadFS(nil)
	if err != nil {
		t.Fatalf("load nil: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := uischema.Parse([]byte("tags: [a, b"), "broken.yaml"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestUISchema_Options(t *testing.T) {
	ui := uischema.UISchema{
		"ui:widget":  "textarea",
		"ui:options": map[string]any{"widget": "text", "expandable": "no", "addable": false},
		"items":      map[string]any{"ui:title": "Tag"},
	}

	opts := ui.Options()
	if opts["widget"] != "textarea" {
		t.Fatalf("top-level ui:widget should win, got %v", opts["widget"])
	}
	if ui.Bool("expandable", true) {
		t.Fatalf("expected expandable=false from string option")
	}
	if ui.Bool("addable", true) {
		t.Fatalf("expected addable=false")
	}
	if !ui.Bool("missing", true) {
		t.Fatalf("expected fallback for missing option")
	}
	if ui.Items().Title() != "Tag" {
		t.Fatalf("unexpected items title %q", ui.Items().Title())
	}
	if ui.Child("ui:widget") != nil {
		t.Fatalf("ui:* keys are not children")
	}
}
