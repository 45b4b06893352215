package align

import "errors"

// ErrNoMatch reports that no subtitle line shares a single normalized token
// with the reference stream, so alignment cannot proceed for this file.
var ErrNoMatch = errors.New("align: no matching tokens between subtitle and reference")
