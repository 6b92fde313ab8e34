package theme

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	gotheme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

type manifestFile struct {
	Name      string                 `yaml:"name"`
	Version   string                 `yaml:"version"`
	Tokens    map[string]string      `yaml:"tokens"`
	Templates map[string]string      `yaml:"templates"`
	Assets    assetsFile             `yaml:"assets"`
	Variants  map[string]variantFile `yaml:"variants"`
}

type assetsFile struct {
	Prefix string            `yaml:"prefix"`
	Files  map[string]string `yaml:"files"`
}

type variantFile struct {
	Tokens    map[string]string `yaml:"tokens"`
	Templates map[string]string `yaml:"templates"`
	Assets    assetsFile        `yaml:"assets"`
}

// ParseManifest decodes a YAML (or JSON) theme manifest.
func ParseManifest(data []byte, source string) (*gotheme.Manifest, error) {
	var raw manifestFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("theme: parse manifest %s: %w", source, err)
	}
	if strings.TrimSpace(raw.Name) == "" {
		return nil, fmt.Errorf("theme: manifest %s: name is required", source)
	}

	manifest := &gotheme.Manifest{
		Name:      strings.TrimSpace(raw.Name),
		Version:   strings.TrimSpace(raw.Version),
		Tokens:    raw.Tokens,
		Templates: raw.Templates,
		Assets:    gotheme.Assets{Prefix: raw.Assets.Prefix, Files: raw.Assets.Files},
	}
	if len(raw.Variants) > 0 {
		manifest.Variants = make(map[string]gotheme.Variant, len(raw.Variants))
		for name, variant := range raw.Variants {
			manifest.Variants[name] = gotheme.Variant{
				Tokens:    variant.Tokens,
				Templates: variant.Templates,
				Assets:    gotheme.Assets{Prefix: variant.Assets.Prefix, Files: variant.Assets.Files},
			}
		}
	}
	return manifest, nil
}

// LoadManifest reads a manifest file from disk.
func LoadManifest(path string) (*gotheme.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: read manifest %s: %w", path, err)
	}
	return ParseManifest(data, path)
}

// ManifestSelector is a go-theme ThemeSelector over an in-memory set of
// manifests with default theme and variant names.
type ManifestSelector struct {
	mu             sync.RWMutex
	manifests      map[string]*gotheme.Manifest
	defaultTheme   string
	defaultVariant string
}

var _ gotheme.ThemeSelector = (*ManifestSelector)(nil)

// NewManifestSelector builds a selector. The first manifest becomes the
// default theme when defaultTheme is blank.
func NewManifestSelector(defaultTheme, defaultVariant string, manifests ...*gotheme.Manifest) (*ManifestSelector, error) {
	selector := &ManifestSelector{
		manifests:      make(map[string]*gotheme.Manifest, len(manifests)),
		defaultTheme:   strings.TrimSpace(defaultTheme),
		defaultVariant: strings.TrimSpace(defaultVariant),
	}
	for _, manifest := range manifests {
		if err := selector.Add(manifest); err != nil {
			return nil, err
		}
		if selector.defaultTheme == "" {
			selector.defaultTheme = manifest.Name
		}
	}
	return selector, nil
}

// Add registers a manifest. Duplicate names return an error.
func (s *ManifestSelector) Add(manifest *gotheme.Manifest) error {
	if manifest == nil || strings.TrimSpace(manifest.Name) == "" {
		return fmt.Errorf("theme: manifest name is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.manifests[manifest.Name]; exists {
		return fmt.Errorf("theme: manifest %q already registered", manifest.Name)
	}
	s.manifests[manifest.Name] = manifest
	return nil
}

// Names lists the registered manifests in sorted order.
func (s *ManifestSelector) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.manifests))
	for name := range s.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select implements gotheme.ThemeSelector. Blank names fall back to the
// defaults; the default variant applies only when the manifest defines it.
func (s *ManifestSelector) Select(name, variant string, _ ...gotheme.QueryOption) (*gotheme.Selection, error) {
	name = strings.TrimSpace(name)
	variant = strings.TrimSpace(variant)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if name == "" {
		name = s.defaultTheme
	}
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("theme: manifest %q not found", name)
	}
	if variant == "" {
		if _, ok := manifest.Variants[s.defaultVariant]; ok {
			variant = s.defaultVariant
		}
	} else if _, ok := manifest.Variants[variant]; !ok {
		return nil, fmt.Errorf("theme: manifest %q has no variant %q", name, variant)
	}
	return &gotheme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}
