// Package inference runs loopy belief propagation over one fgraph.Graph to
// convergence (or the iteration cap) and extracts single-variable marginal
// posteriors, via an injected scheduler.Config. It is the thin layer
// between the scheduler's per-round message updates and the caller-facing
// posterior extraction: "run until settled, then read off P(x=1) for the
// variables I asked for".
package inference
