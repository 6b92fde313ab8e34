// Package form is a small schema-driven form host. It owns the form data,
// walks an OpenAPI/JSON schema to render leaf controls, and delegates object
// and array arrangement to the installed panel theme. Panels stay mounted by
// id across renders so their collapse state and edit sessions survive.
package form
