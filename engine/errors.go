package engine

import "github.com/cwbudde/tidaw/dsp/core"

// ErrInvalidConfig is the error kind for rejected configuration or parameters.
var ErrInvalidConfig = core.ErrInvalidConfig

// InvalidConfigError carries the reason a value was rejected.
type InvalidConfigError = core.InvalidConfigError
