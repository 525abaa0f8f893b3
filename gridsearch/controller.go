package gridsearch

import "math"

// Tuple is one (α, β, γ) candidate.
type Tuple struct {
	Alpha, Beta, Gamma float64
}

// Scorer evaluates the current posterior assignment after a grid cell's
// inference pass has run, returning a scalar goodness where higher is
// better. It takes no arguments because, by the time Run calls it, the
// apply callback has already written that cell's posteriors into the
// caller's identification data; Scorer reads whatever state apply left
// behind.
type Scorer interface {
	Evaluate() (float64, error)
}

// Run explores the Cartesian product of alphas x betas x gammas. For each
// tuple it calls apply (expected to run inference across all CCs with that
// tuple's model parameters), then scorer.Evaluate(), tracking the
// argmax. It returns the best tuple and its score.
func Run(alphas, betas, gammas []float64, apply func(Tuple) error, scorer Scorer) (Tuple, float64, error) {
	var best Tuple
	bestScore := math.Inf(-1)
	found := false

	for _, a := range alphas {
		for _, b := range betas {
			for _, g := range gammas {
				t := Tuple{Alpha: a, Beta: b, Gamma: g}
				if err := apply(t); err != nil {
					return Tuple{}, 0, err
				}
				score, err := scorer.Evaluate()
				if err != nil {
					return Tuple{}, 0, err
				}
				if !found || score > bestScore {
					found = true
					bestScore = score
					best = t
				}
			}
		}
	}
	return best, bestScore, nil
}
