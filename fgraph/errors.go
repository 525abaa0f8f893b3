package fgraph

import "errors"

// ErrAlreadyBuilt indicates ToGraph was called more than once on the same
// Builder.
var ErrAlreadyBuilt = errors.New("fgraph: ToGraph already called on this builder")

// ErrNoFactors indicates ToGraph was called before any InsertDependency.
var ErrNoFactors = errors.New("fgraph: builder has no factors to materialize")

// ErrUnknownVariable indicates a message was requested for a variable not
// present in the graph.
var ErrUnknownVariable = errors.New("fgraph: unknown variable")
