package theme_test

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formgen-collapsible/pkg/panels"
	"github.com/goliatone/go-formgen-collapsible/pkg/testsupport"
	"github.com/goliatone/go-formgen-collapsible/pkg/theme"
)

func acmeManifest() *gotheme.Manifest {
	return &gotheme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand": "#123456",
		},
		Templates: map[string]string{
			panels.PartialObject: "themes/acme/object.tmpl",
		},
		Assets: gotheme.Assets{
			Prefix: "/assets/themes/acme",
			Files: map[string]string{
				"panels.stylesheet": "theme.css",
			},
		},
		Variants: map[string]gotheme.Variant{
			"dark": {
				Tokens: map[string]string{
					"brand": "#654321",
				},
				Templates: map[string]string{
					panels.PartialField: "themes/acme/dark/field.tmpl",
				},
				Assets: gotheme.Assets{
					Files: map[string]string{
						"panels.editor": "editor.dark.js",
					},
				},
			},
		},
	}
}

func TestResolve_MergesManifestAndVariant(t *testing.T) {
	selector, err := theme.NewManifestSelector("acme", "dark", acmeManifest())
	if err != nil {
		t.Fatalf("selector: %v", err)
	}

	cfg, err := theme.Resolve(selector, "", "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Theme != "acme" || cfg.Variant != "dark" {
		t.Fatalf("unexpected selection %s/%s", cfg.Theme, cfg.Variant)
	}
	if cfg.Partials[panels.PartialObject] != "themes/acme/object.tmpl" {
		t.Fatalf("expected manifest template override, got %s", cfg.Partials[panels.PartialObject])
	}
	if cfg.Partials[panels.PartialField] != "themes/acme/dark/field.tmpl" {
		t.Fatalf("expected variant template override, got %s", cfg.Partials[panels.PartialField])
	}
	if cfg.Partials[panels.PartialArray] != panels.ArrayTemplate {
		t.Fatalf("expected fallback partial for arrays, got %s", cfg.Partials[panels.PartialArray])
	}
	if cfg.Tokens["brand"] != "#654321" || cfg.CSSVars["--brand"] != "#654321" {
		t.Fatalf("tokens not merged with variant override: %v / %v", cfg.Tokens, cfg.CSSVars)
	}
	if got := cfg.AssetURL("panels.editor"); got != "/assets/themes/acme/editor.dark.js" {
		t.Fatalf("unexpected editor asset url: %s", got)
	}
	if got := cfg.AssetURL("panels.stylesheet"); got != "/assets/themes/acme/theme.css" {
		t.Fatalf("unexpected stylesheet asset url: %s", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("expected empty url for unknown asset, got %s", got)
	}
}

func TestResolve_UnknownVariant(t *testing.T) {
	selector, err := theme.NewManifestSelector("", "", acmeManifest())
	if err != nil {
		t.Fatalf("selector: %v", err)
	}
	if _, err := theme.Resolve(selector, "acme", "sepia"); err == nil {
		t.Fatalf("expected unknown variant error")
	}
	cfg, err := theme.Resolve(selector, "acme", "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Variant != "" || cfg.Tokens["brand"] != "#123456" {
		t.Fatalf("expected base manifest without variant, got %s %v", cfg.Variant, cfg.Tokens)
	}
}

func TestResolve_UsesSelector(t *testing.T) {
	selector := &stubThemeSelector{selection: &gotheme.Selection{
		Theme:    "acme",
		Variant:  "custom-variant",
		Manifest: &gotheme.Manifest{Name: "acme", Tokens: map[string]string{"brand": "#abcdef"}},
	}}

	cfg, err := theme.Resolve(selector, "custom-theme", "custom-variant")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if diff := cmp.Diff([]selectorCall{{name: "custom-theme", variant: "custom-variant"}}, selector.calls, cmp.AllowUnexported(selectorCall{})); diff != "" {
		t.Fatalf("selector calls mismatch (-want +got):\n%s", diff)
	}
	if cfg.Variant != "custom-variant" || cfg.CSSVars["--brand"] != "#abcdef" {
		t.Fatalf("unexpected config %+v", cfg)
	}

	failing := &stubThemeSelector{err: errors.New("boom")}
	if _, err := theme.Resolve(failing, "x", ""); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected selector error, got %v", err)
	}
	if _, err := theme.Resolve(&stubThemeSelector{}, "x", ""); err == nil {
		t.Fatalf("expected empty selection error")
	}
}

func TestGenerate_InstallsTemplates(t *testing.T) {
	generated, err := theme.Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if generated.Name != theme.DefaultName {
		t.Fatalf("unexpected name %q", generated.Name)
	}

	host := &captureHost{}
	if err := generated.Install(host); err != nil {
		t.Fatalf("install: %v", err)
	}
	if host.theme.Name != theme.DefaultName {
		t.Fatalf("expected theme installed on host")
	}

	array := host.theme.Templates.ArrayFieldTemplate(host.theme.Renderer, panels.Props{ID: "root_tags"})
	object := host.theme.Templates.ObjectFieldTemplate(host.theme.Renderer, panels.Props{ID: "root"})
	if array.Kind() != panels.KindArray || object.Kind() != panels.KindObject {
		t.Fatalf("unexpected panel kinds %s/%s", array.Kind(), object.Kind())
	}
	out, err := host.theme.Templates.FieldTemplate(testsupport.Context(), host.theme.Renderer, panels.FieldProps{ID: "root_name", Label: "Name"})
	if err != nil {
		t.Fatalf("field template: %v", err)
	}
	if !strings.Contains(out, `<label for="root_name"`) {
		t.Fatalf("unexpected field output:\n%s", out)
	}

	if err := generated.Install(nil); err == nil {
		t.Fatalf("expected error for nil host")
	}
}

func TestGenerate_WithRendererConfig(t *testing.T) {
	files := fstest.MapFS{
		"custom/object.tmpl": {Data: []byte(`<section data-theme="{{ theme.name }}" data-brand="{{ theme.tokens.brand }}">{{ panel.id }}</section>`)},
	}
	cfg := theme.FromSelection(&gotheme.Selection{
		Theme: "acme",
		Manifest: &gotheme.Manifest{
			Name:      "acme",
			Tokens:    map[string]string{"brand": "#123456"},
			Templates: map[string]string{panels.PartialObject: "custom/object.tmpl"},
		},
	})

	generated, err := theme.Generate(
		theme.WithName("acme-collapsible"),
		theme.WithRendererOptions(panels.WithTemplatesFS(files)),
		theme.WithRendererConfig(cfg),
	)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if generated.Name != "acme-collapsible" || generated.CSSVars()["--brand"] != "#123456" {
		t.Fatalf("unexpected theme %+v", generated)
	}

	panel := generated.Templates.ObjectFieldTemplate(generated.Renderer, panels.Props{ID: "root"})
	got, err := panel.Render(testsupport.Context())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<section data-theme="acme" data-brand="#123456">root</section>`
	if got != want {
		t.Fatalf("override mismatch\nwant: %s\n got: %s", want, got)
	}
}

func TestRegistry(t *testing.T) {
	registry := theme.NewRegistry()
	registry.MustRegister(theme.MustGenerate())
	registry.MustRegister(theme.MustGenerate(theme.WithName("alt")))

	if err := registry.Register(theme.MustGenerate()); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := registry.Register(theme.Theme{Name: "bare"}); err == nil {
		t.Fatalf("expected error for theme without renderer")
	}
	if diff := cmp.Diff([]string{"alt", "collapsible"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("alt") {
		t.Fatalf("expected alt registered")
	}
	if _, err := registry.Get("missing"); err == nil {
		t.Fatalf("expected not found error")
	}

	host := &captureHost{}
	if err := registry.Install("alt", host); err != nil {
		t.Fatalf("install: %v", err)
	}
	if host.theme.Name != "alt" {
		t.Fatalf("expected alt installed, got %q", host.theme.Name)
	}
}

func TestParseManifest(t *testing.T) {
	manifest, err := theme.ParseManifest([]byte(`
name: acme
version: 1.0.0
tokens:
  brand: "#123456"
templates:
  panels.array: themes/acme/array.tmpl
assets:
  prefix: /assets/acme
  files:
    panels.stylesheet: theme.css
variants:
  dark:
    tokens:
      brand: "#000000"
`), "acme.yaml")
	if err != nil {
		t.Fatalf("parse manifest: %v", err)
	}
	if manifest.Name != "acme" || manifest.Assets.Prefix != "/assets/acme" {
		t.Fatalf("unexpected manifest %+v", manifest)
	}
	if manifest.Variants["dark"].Tokens["brand"] != "#000000" {
		t.Fatalf("variant tokens not decoded")
	}

	if _, err := theme.ParseManifest([]byte("version: 1"), "nameless.yaml"); err == nil {
		t.Fatalf("expected error for manifest without name")
	}
}

type captureHost struct {
	theme theme.Theme
}

func (h *captureHost) SetTheme(t theme.Theme) {
	h.theme = t
}

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *gotheme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...gotheme.QueryOption) (*gotheme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}
