package capture

import "errors"

// Sentinel markers for error classification. Callers match with errors.Is
// to decide exit behavior; everything wrapped in ErrOutput or ErrInput is
// fatal regardless of error-policy mode, while ErrValidation only surfaces
// in strict mode.
var (
	ErrValidation    = errors.New("frame validation error")
	ErrInput         = errors.New("input error")
	ErrOutput        = errors.New("output error")
	ErrConfiguration = errors.New("configuration error")
)
