package pmf

import "errors"

// ErrEmptyTable indicates an operation was attempted on a table with no values.
var ErrEmptyTable = errors.New("pmf: table has no support")

// ErrAllZero indicates every entry in a table underflowed to zero, so it
// cannot be renormalized. Callers treat this as a numeric failure of the
// connected component that produced it.
var ErrAllZero = errors.New("pmf: table sums to zero, cannot normalize")

// ErrNonFinite indicates a NaN or Inf entry was found in a table.
var ErrNonFinite = errors.New("pmf: table contains a non-finite value")

// ErrDimensionMismatch indicates two tables expected to share a support range
// do not.
var ErrDimensionMismatch = errors.New("pmf: tables have mismatched support")
