package theme

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores themes by name, providing discovery and duplication
// safeguards.
type Registry struct {
	mu     sync.RWMutex
	themes map[string]Theme
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		themes: make(map[string]Theme),
	}
}

// Register adds a theme by name. Duplicate names return an error.
func (r *Registry) Register(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: theme name is required")
	}
	if t.Renderer == nil {
		return fmt.Errorf("theme: theme %q has no renderer", t.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.themes[t.Name]; exists {
		return fmt.Errorf("theme: theme %q already registered", t.Name)
	}
	r.themes[t.Name] = t
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(t Theme) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

// Get retrieves a theme by name.
func (r *Registry) Get(name string) (Theme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("theme: theme %q not found", name)
	}
	return t, nil
}

// List returns a sorted list of theme names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a theme is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.themes[name]
	return ok
}

// Install looks up name and installs it on host.
func (r *Registry) Install(name string, host Host) error {
	t, err := r.Get(name)
	if err != nil {
		return err
	}
	return t.Install(host)
}
