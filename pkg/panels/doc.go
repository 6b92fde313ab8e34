// Package panels renders object and array values as collapsible, editable
// panels and wraps scalar fields with their label and errors.
//
// Panels never walk a schema themselves. The hosting engine supplies the
// already rendered children together with the schema node, current value
// and nested error report, and receives edits back through Props.OnChange.
// Each panel keeps its collapse state and the raw JSON edit session for as
// long as the host keeps it mounted.
package panels
