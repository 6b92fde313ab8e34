package panels

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formgen-collapsible/pkg/errorschema"
	"github.com/goliatone/go-formgen-collapsible/pkg/formcontext"
	"github.com/goliatone/go-formgen-collapsible/pkg/uischema"
)

// Element is one child the host engine already rendered: an array item or
// an object property.
type Element struct {
	Name     string
	Content  string
	Hidden   bool
	Schema   *openapi3.Schema
	UISchema uischema.UISchema
}

// Props is everything a render pass hands to a panel.
type Props struct {
	ID          string
	Title       string
	Description string
	Schema      *openapi3.Schema
	UISchema    uischema.UISchema
	FormData    any
	ErrorSchema errorschema.ErrorSchema
	// Children are array items or object properties, in display order.
	Children []Element
	Required bool
	Disabled bool
	Readonly bool
	// CanAdd is the host's verdict on whether an array may grow. Objects
	// derive it from CanExpand instead.
	CanAdd      bool
	FormContext *formcontext.Context
	// OnChange receives the whole new value of this field.
	OnChange func(value any)
	// OnAddClick appends an item or property in the host.
	OnAddClick func()
}

func (p Props) title() string {
	if title := p.UISchema.Title(); title != "" {
		return title
	}
	if title := strings.TrimSpace(p.Title); title != "" {
		return title
	}
	if p.Schema != nil {
		return strings.TrimSpace(p.Schema.Title)
	}
	return ""
}

func (p Props) description() string {
	if description := p.UISchema.Description(); description != "" {
		return description
	}
	if description := strings.TrimSpace(p.Description); description != "" {
		return description
	}
	if p.Schema != nil {
		return strings.TrimSpace(p.Schema.Description)
	}
	return ""
}

func (p Props) locked() bool {
	return p.Disabled || p.Readonly
}
