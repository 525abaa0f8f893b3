package factor

import "errors"

// ErrNoInputs indicates a probabilistic-adder factor was requested with no
// member variables; a group with zero inputs has no evidence to aggregate.
var ErrNoInputs = errors.New("factor: probabilistic adder requires at least one input")

// ErrArityMismatch indicates an assignment passed to Factor.Value does not
// match the factor's variable count.
var ErrArityMismatch = errors.New("factor: assignment length does not match variable count")
