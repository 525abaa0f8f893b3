package scheduler

import "errors"

// ErrUnknownStrategy indicates Config.Strategy did not match any defined
// Strategy constant.
var ErrUnknownStrategy = errors.New("scheduler: unknown strategy")

// ErrInvalidMaxIterations indicates Config.MaxIterations was not positive.
var ErrInvalidMaxIterations = errors.New("scheduler: MaxIterations must be positive")
