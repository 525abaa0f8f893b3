package pmf

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// PNormPool combines a set of non-negative configuration weights using
// L-p pooling: for finite p>0 this is (mean(x_i^p))^(1/p); for p<=0 (or
// p=+Inf) it degenerates to max-product pooling, max(x_i). p=1 is
// ordinary sum-product-style averaging of configurations, which is how a
// multi-variable factor table collapses onto one variable's marginal when
// summing out the others; intermediate p values interpolate between the
// sum and the max.
//
// A configured p <= 0 is treated as +Inf, per the engine-wide p-norm
// convention (spec'd as "any configured p <= 0 is treated as +Inf").
func PNormPool(weights []float64, p float64) float64 {
	if len(weights) == 0 {
		return 0
	}
	if p <= 0 || math.IsInf(p, 1) {
		return floats.Max(weights)
	}
	powered := make([]float64, len(weights))
	for i, w := range weights {
		powered[i] = math.Pow(w, p)
	}
	mean := floats.Sum(powered) / float64(len(powered))
	return math.Pow(mean, 1/p)
}

// NormalizePNorm renormalizes p-norm-pooled marginalization, summing the
// pooled weights to 1. It's the same contract as Table.Normalize but
// operates on a plain slice, used when a variable's domain is not exactly
// {0,1} (group variables with wider support).
func NormalizePNorm(weights []float64) ([]float64, error) {
	sum := floats.Sum(weights)
	if sum <= 0 || math.IsNaN(sum) {
		return nil, ErrAllZero
	}
	out := make([]float64, len(weights))
	copy(out, weights)
	floats.Scale(1/sum, out)
	return out, nil
}
