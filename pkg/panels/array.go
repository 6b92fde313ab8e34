package panels

import "context"

// ArrayPanel renders an array value as a collapsible list of pre-rendered
// items with add and edit-as-JSON actions in its header.
type ArrayPanel struct {
	*panel
}

// NewArrayPanel mounts an array panel for props.ID. The panel starts
// expanded unless the form context lists it as collapsed.
func NewArrayPanel(renderer *Renderer, props Props) *ArrayPanel {
	return &ArrayPanel{panel: mount(KindArray, renderer, props)}
}

// Render returns the panel markup for the current state.
func (a *ArrayPanel) Render(ctx context.Context) (string, error) {
	return a.render(ctx, PartialArray, ArrayTemplate)
}
