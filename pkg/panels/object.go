package panels

import "context"

// ObjectPanel renders an object value as a collapsible grid of pre-rendered
// properties. Column spans follow the form context colSpan option and an
// add button closes the grid when the schema allows extra properties.
type ObjectPanel struct {
	*panel
}

// NewObjectPanel mounts an object panel for props.ID.
func NewObjectPanel(renderer *Renderer, props Props) *ObjectPanel {
	return &ObjectPanel{panel: mount(KindObject, renderer, props)}
}

// Render returns the panel markup for the current state.
func (o *ObjectPanel) Render(ctx context.Context) (string, error) {
	return o.render(ctx, PartialObject, ObjectTemplate)
}
