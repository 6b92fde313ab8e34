// Package collapse owns the expand/collapse state of individual panels.
//
// A Controller presents a single boolean to the rendering layer while three
// triggers compete for it: user toggles, forced expansion while the panel's
// subtree carries validation errors, and re-expansion tokens bumped after an
// add-item or edit-confirm action. Controllers are self-contained by default;
// a Coordinator can be injected when a host wants to persist or centrally
// manage collapsed panels.
package collapse
