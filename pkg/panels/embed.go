package panels

import (
	"embed"
	"io/fs"
)

//go:embed templates/panels/*.tmpl templates/editor/*.tmpl
var embeddedTemplates embed.FS

// Template names inside the embedded bundle.
const (
	ArrayTemplate  = "templates/panels/array_field.tmpl"
	ObjectTemplate = "templates/panels/object_field.tmpl"
	FieldTemplate  = "templates/panels/field.tmpl"
	FormTemplate   = "templates/panels/form.tmpl"
)

// Partial keys a theme may use to point a template at its own file.
const (
	PartialArray         = "panels.array"
	PartialObject        = "panels.object"
	PartialField         = "panels.field"
	PartialForm          = "panels.form"
	PartialEditor        = "panels.editor"
	PartialEditorLoading = "panels.editor-loading"
)

// TemplatesFS exposes the embedded template bundle, editor templates
// included, so hosts can layer their own overrides on top of it.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
