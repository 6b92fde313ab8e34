package collapsible_test

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	collapsible "github.com/goliatone/go-formgen-collapsible"
	"github.com/goliatone/go-formgen-collapsible/pkg/form"
	"github.com/goliatone/go-formgen-collapsible/pkg/theme"
)

func TestLoadSchemaFile_YAML(t *testing.T) {
	schema, err := collapsible.LoadSchemaFile(context.Background(), "testdata/profile.schema.yaml", "")
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}
	if schema.Title != "Profile" {
		t.Fatalf("unexpected title %q", schema.Title)
	}
	scores := schema.Properties["scores"].Value
	if scores.MaxItems == nil || *scores.MaxItems != 2 {
		t.Fatalf("expected maxItems 2, got %v", scores.MaxItems)
	}
}

func TestLoadSchemaFile_ComponentOnPlainSchema(t *testing.T) {
	_, err := collapsible.LoadSchemaFile(context.Background(), "testdata/profile.schema.yaml", "Profile")
	if err == nil || !strings.Contains(err.Error(), "not an OpenAPI document") {
		t.Fatalf("expected component misuse error, got %v", err)
	}
}

func TestLoadDocument_WidensIntegers(t *testing.T) {
	doc, err := collapsible.LoadDocument("testdata/profile.schema.yaml")
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	got := doc.(map[string]any)["properties"].(map[string]any)["scores"].(map[string]any)["maxItems"]
	if diff := cmp.Diff(2.0, got); diff != "" {
		t.Fatalf("maxItems mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderHTML(t *testing.T) {
	schema, err := collapsible.LoadSchemaFile(context.Background(), "testdata/profile.schema.yaml", "")
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}
	html, err := collapsible.RenderHTML(context.Background(), schema, map[string]any{
		"name":   "Ada",
		"scores": []any{1.0, 2.0},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := string(html)
	if !strings.Contains(out, `id="root_scores"`) {
		t.Fatalf("expected scores panel:\n%s", out)
	}
	if strings.Contains(out, `data-action="add" data-panel="root_scores"`) {
		t.Fatalf("maxItems reached, add button must be hidden:\n%s", out)
	}
}

func TestWithThemeSelector(t *testing.T) {
	manifest, err := theme.LoadManifest("testdata/theme.yaml")
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}
	selector, err := theme.NewManifestSelector("", "", manifest)
	if err != nil {
		t.Fatalf("selector: %v", err)
	}
	option, err := collapsible.WithThemeSelector(selector, "", "compact")
	if err != nil {
		t.Fatalf("theme option: %v", err)
	}

	schema, err := collapsible.LoadSchemaFile(context.Background(), "testdata/profile.schema.yaml", "")
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}
	f, err := collapsible.NewForm(schema, nil, option)
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	html, err := f.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := string(html)
	for _, want := range []string{`data-theme="slate"`, `data-theme-variant="compact"`, `--gutter: 4px`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}

	if _, err := collapsible.WithThemeSelector(selector, "", "missing"); err == nil {
		t.Fatalf("expected unknown variant error")
	}
	var _ form.Option = option
}

func TestEmbeddedTemplates(t *testing.T) {
	matches, err := fs.Glob(collapsible.EmbeddedTemplates(), "templates/panels/*.tmpl")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("expected embedded panel templates")
	}
}
