// Package gridsearch explores the Cartesian product of candidate (α, β, γ)
// values, invoking a caller-supplied apply function for each tuple and an
// external Scorer to obtain a scalar "goodness", tracking the best tuple
// seen. A negative configured value expands to a default sweep; a value
// already in [0,1] collapses to a singleton axis.
package gridsearch
