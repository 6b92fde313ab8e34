package panels

import "errors"

var (
	// ErrAddNotPermitted is returned by Add when the schema, ui:options or
	// disabled/readonly state forbid growing the value.
	ErrAddNotPermitted = errors.New("panels: add not permitted")
	// ErrEditNotPermitted is returned by OpenEditor on disabled or readonly
	// panels.
	ErrEditNotPermitted = errors.New("panels: edit not permitted")
)
