package form

import "errors"

// ErrPanelNotFound is returned by panel operations on ids that are not
// mounted in the current render tree.
var ErrPanelNotFound = errors.New("form: panel not found")
