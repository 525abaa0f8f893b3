// Package factor implements the numeric factor primitives used to build a
// protein-inference factor graph: the protein prior, the peptide-evidence
// emission, the noisy-OR "sum-evidence" factor linking a PSM to its parent,
// and the probabilistic-adder (logical OR) factor used for both
// peptide-group and protein-group aggregation.
//
// Every Factor is a dense table over {0,1}^k for its ordered variable list;
// a Factory fixes the model hyperparameters (α, β, γ, the peptide prior,
// and the p-norm) once and is reused to build every factor for a
// connected component.
package factor
