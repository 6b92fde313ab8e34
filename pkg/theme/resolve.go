package theme

import (
	"fmt"
	"strings"

	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formgen-collapsible/pkg/editor"
	"github.com/goliatone/go-formgen-collapsible/pkg/panels"
)

// DefaultPartials maps every panel partial key to its embedded template.
func DefaultPartials() map[string]string {
	return map[string]string{
		panels.PartialArray:         panels.ArrayTemplate,
		panels.PartialObject:        panels.ObjectTemplate,
		panels.PartialField:         panels.FieldTemplate,
		panels.PartialForm:          panels.FormTemplate,
		panels.PartialEditor:        editor.SimpleTextEditorTemplate,
		panels.PartialEditorLoading: editor.LoadingTemplate,
	}
}

// Resolve asks selector for a theme and flattens the selection into a
// renderer configuration. Variant tokens, templates and assets override the
// manifest's; partials not named by either fall back to DefaultPartials.
func Resolve(selector gotheme.ThemeSelector, name, variant string) (*gotheme.RendererConfig, error) {
	if selector == nil {
		return nil, fmt.Errorf("theme: selector is nil")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("theme: select %q/%q: %w", name, variant, err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil, fmt.Errorf("theme: select %q/%q: empty selection", name, variant)
	}
	return FromSelection(selection), nil
}

// FromSelection builds a renderer configuration from a go-theme selection.
func FromSelection(selection *gotheme.Selection) *gotheme.RendererConfig {
	manifest := selection.Manifest
	variant, hasVariant := gotheme.Variant{}, false
	if manifest.Variants != nil && selection.Variant != "" {
		variant, hasVariant = manifest.Variants[selection.Variant]
	}

	tokens := mergeStrings(manifest.Tokens)
	partials := mergeStrings(DefaultPartials(), manifest.Templates)
	files := mergeStrings(manifest.Assets.Files)
	prefix := manifest.Assets.Prefix
	if hasVariant {
		tokens = mergeStrings(tokens, variant.Tokens)
		partials = mergeStrings(partials, variant.Templates)
		files = mergeStrings(files, variant.Assets.Files)
		if strings.TrimSpace(variant.Assets.Prefix) != "" {
			prefix = variant.Assets.Prefix
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+strings.TrimPrefix(key, "--")] = value
	}

	name := selection.Theme
	if name == "" {
		name = manifest.Name
	}
	return &gotheme.RendererConfig{
		Theme:    name,
		Variant:  selection.Variant,
		Tokens:   tokens,
		CSSVars:  cssVars,
		Partials: partials,
		AssetURL: assetResolver(prefix, files),
	}
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	return func(key string) string {
		file := strings.TrimSpace(files[key])
		if file == "" {
			return ""
		}
		if strings.Contains(file, "://") || strings.HasPrefix(file, "/") || prefix == "" {
			return file
		}
		return prefix + "/" + strings.TrimPrefix(file, "./")
	}
}

func mergeStrings(layers ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, layer := range layers {
		for key, value := range layer {
			key = strings.TrimSpace(key)
			value = strings.TrimSpace(value)
			if key == "" || value == "" {
				continue
			}
			out[key] = value
		}
	}
	return out
}
