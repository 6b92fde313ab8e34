// Package template defines the engine-agnostic rendering contract used by the
// panel templates. The gotemplate subpackage provides the default
// pongo2-backed implementation.
package template
