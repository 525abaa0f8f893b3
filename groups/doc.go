// Package groups materializes indistinguishable-protein-group records from
// an identification graph's connected components: for each CC with at
// least two vertices, every protein-group vertex yields one Group carrying
// the accessions of its adjacent protein vertices and the group variable's
// current value (its posterior, if the caller requested group-probability
// annotation and the per-CC functor wrote one; otherwise whatever
// pre-inference aggregate the vertex already carried).
//
// Annotate runs single-threaded and walks components and their vertices in
// a fixed sorted order, so repeated runs over the same graph append groups
// in the same order.
package groups
