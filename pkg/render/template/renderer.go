package template

import (
	"io"
)

// TemplateRenderer is the engine seam panel templates render through. It
// follows the github.com/goliatone/go-template contract so callers can swap
// the pongo2 adapter for any compatible engine.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
