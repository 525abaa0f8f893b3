// Package pmf implements the probability mass table used throughout epifany
// to represent a factor's marginal over a single {0,1}-valued variable, or
// (for group factors) over a small integer domain.
//
// A Table stores only the support it needs: FirstSupport is the integer
// value of index 0, and Values[i] is the mass at value FirstSupport+i.
// Anything outside [FirstSupport, FirstSupport+len(Values)-1] is an implicit
// zero. This mirrors how group factors (probabilistic adders) can carry
// support that does not start at 0.
package pmf
