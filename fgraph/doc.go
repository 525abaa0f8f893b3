// Package fgraph builds the bipartite factor graph that loopy belief
// propagation runs over: Variables (one per vertex of interest in a
// connected component) and FactorNodes (one per protein/peptide-evidence/
// sum-evidence/probabilistic-adder factor).
//
// A Builder accumulates factors via InsertDependency and materializes the
// graph, plus its Bethe cluster region decomposition, via ToGraph. ToGraph
// must be called exactly once; it is also what releases the builder's
// scratch state, on both the success and the error path, following the
// "apply N constructors, wrap and return on first error" contract common
// to accumulate-then-materialize builders.
package fgraph
