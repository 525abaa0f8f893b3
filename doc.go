// Package epifany is a Bayesian protein inference engine.
//
// Given a bipartite association between candidate proteins and the
// peptide-spectrum matches (PSMs) that support them, epifany assigns a
// posterior probability of presence to every protein (and, optionally,
// to indistinguishable protein groups and individual PSMs) by running
// loopy belief propagation over a factor graph derived from the
// identification graph, with an outer grid search over the model's three
// hyperparameters (α, β, γ).
//
// Under the hood, the engine is organized as:
//
//	pmf/        probability mass tables over {0,1}-valued variables
//	factor/     protein/peptide/sum-evidence/adder factor primitives
//	fgraph/     bipartite factor graph plus Bethe cluster region builder
//	scheduler/  priority, FIFO, and random-spanning-tree message schedules
//	inference/  the loopy belief propagation engine itself
//	idgraph/    the identification graph (proteins, groups, PSMs, CCs)
//	ccdriver/   applies the per-CC inference functor across components
//	groups/     indistinguishable-protein-group annotation
//	gridsearch/ (α, β, γ) grid search controller
//
// The root package wires these together behind InferPosteriorProbabilities,
// the orchestrator entry point.
//
// This module does not parse FASTA, run a database search, compute FDR, or
// do enzymatic digestion: it consumes an already-built identification graph
// and an external FDR-based scoring callback, and writes posteriors back
// into the structures it was handed.
package epifany
