package form

import (
	"embed"
	"io/fs"
)

//go:embed templates/controls/*.tmpl
var embeddedTemplates embed.FS

const controlTemplate = "templates/controls/control.tmpl"

// TemplatesFS exposes the embedded control templates.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
