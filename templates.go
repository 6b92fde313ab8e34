package collapsible

import (
	"io/fs"

	"github.com/goliatone/go-formgen-collapsible/pkg/panels"
)

// EmbeddedTemplates exposes the built-in panel templates so callers can copy
// or extend them without importing the panels package directly. Pair with
// panels.WithTemplatesFS or a theme manifest's templates map to override.
func EmbeddedTemplates() fs.FS {
	return panels.TemplatesFS()
}
