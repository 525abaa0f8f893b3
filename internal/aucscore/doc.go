// Package aucscore is a concrete gridsearch.Scorer: it computes the area
// under the ROC curve over a set of protein hits using
// gonum.org/v1/gonum/stat. The engine treats grid-search scoring as an
// opaque external collaborator; this package is the one implementation
// shipped for tests and examples, not the only one a caller may use.
package aucscore
