package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formgen-collapsible/pkg/uischema"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetCheckbox = "checkbox"
	WidgetSelect   = "select"
	WidgetTextarea = "textarea"
	WidgetNumber   = "number"
	WidgetEmail    = "email"
	WidgetDate     = "date"
	WidgetDateTime = "datetime"
	WidgetURL      = "url"
	WidgetText     = "text"
)

// Leaf is the input a matcher inspects: the schema of a scalar field and its
// UI hints.
type Leaf struct {
	Schema   *openapi3.Schema
	UISchema uischema.UISchema
}

// Type returns the primary JSON type of the leaf schema.
func (l Leaf) Type() string {
	if l.Schema == nil || l.Schema.Type == nil {
		return ""
	}
	for _, value := range l.Schema.Type.Slice() {
		if value != "null" {
			return value
		}
	}
	return ""
}

// Format returns the normalised schema format.
func (l Leaf) Format() string {
	if l.Schema == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(l.Schema.Format))
}

// Matcher decides whether a widget should handle the supplied leaf.
type Matcher func(leaf Leaf) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects the control for scalar fields based on explicit hints or
// registered matchers. Higher priority wins; ties fall back to registration
// order. Unmatched leaves resolve to WidgetText.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a widget matcher with the provided name and priority. Higher
// priority values take precedence.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget name for a leaf. ui:widget is honoured before
// matcher evaluation.
func (r *Registry) Resolve(leaf Leaf) string {
	if explicit := leaf.UISchema.Widget(); explicit != "" {
		return explicit
	}
	if r == nil {
		return WidgetText
	}
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(leaf) {
			return entry.name
		}
	}
	return WidgetText
}

// Names lists the registered widget names in resolution order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rules := append([]rule(nil), r.rules...)
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	names := make([]string, 0, len(rules))
	for _, entry := range rules {
		names = append(names, entry.name)
	}
	return names
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetSelect, 90, func(leaf Leaf) bool {
		return leaf.Schema != nil && len(leaf.Schema.Enum) > 0
	})

	r.Register(WidgetCheckbox, 80, func(leaf Leaf) bool {
		return leaf.Type() == openapi3.TypeBoolean
	})

	r.Register(WidgetNumber, 70, func(leaf Leaf) bool {
		kind := leaf.Type()
		return kind == openapi3.TypeNumber || kind == openapi3.TypeInteger
	})

	r.Register(WidgetTextarea, 60, func(leaf Leaf) bool {
		if leaf.Type() != openapi3.TypeString {
			return false
		}
		switch leaf.Format() {
		case "textarea", "markdown", "json", "yaml":
			return true
		}
		return leaf.Schema.MaxLength != nil && *leaf.Schema.MaxLength > 255
	})

	r.Register(WidgetEmail, 50, func(leaf Leaf) bool {
		return leaf.Format() == "email"
	})

	r.Register(WidgetDateTime, 50, func(leaf Leaf) bool {
		return leaf.Format() == "date-time"
	})

	r.Register(WidgetDate, 50, func(leaf Leaf) bool {
		return leaf.Format() == "date"
	})

	r.Register(WidgetURL, 50, func(leaf Leaf) bool {
		format := leaf.Format()
		return format == "uri" || format == "url"
	})
}
