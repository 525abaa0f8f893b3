// Package ccdriver applies a per-connected-component functor across an
// identification graph's connected components: a CC with fewer than two
// vertices, or made of a single Which value, is skipped silently; an
// eligible CC's functor error is logged and never aborts the remaining
// components, so only a validation failure the caller surfaces before
// reaching this package (epifany.ParameterError) is fatal to a run.
//
// ApplyFunctorOnCCs processes components in parallel, bounded by
// Config.MaxConcurrency and built on golang.org/x/sync/errgroup;
// ApplyFunctorOnCCsST is the sequential variant, processing components one
// at a time in slice order.
package ccdriver
