// Package uischema models the rendering hints that accompany a JSON Schema:
// "ui:title", "ui:description", "ui:widget", "ui:field" and the "ui:options"
// bag, plus nested entries keyed by property name. Documents can be loaded
// from JSON or YAML files.
package uischema
