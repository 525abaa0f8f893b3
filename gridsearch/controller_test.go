package gridsearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openms-go/epifany/gridsearch"
)

type constScorer struct{ last gridsearch.Tuple }

func (s *constScorer) Evaluate() (float64, error) { return s.last.Alpha, nil }

// TestRun_SelectsHighestScoringAlpha sweeps alpha over {0.1,0.5,0.9}; since
// the scoring callback returns alpha itself, the controller must select
// alpha=0.9.
func TestRun_SelectsHighestScoringAlpha(t *testing.T) {
	t.Parallel()
	scorer := &constScorer{}
	var applied []gridsearch.Tuple

	best, bestScore, err := gridsearch.Run(
		[]float64{0.1, 0.5, 0.9}, []float64{0.01}, []float64{0.5},
		func(t gridsearch.Tuple) error {
			applied = append(applied, t)
			scorer.last = t
			return nil
		},
		scorer,
	)

	require.NoError(t, err)
	assert.Equal(t, 0.9, best.Alpha)
	assert.Equal(t, 0.9, bestScore)
	assert.Len(t, applied, 3)
}

func TestAxis_NegativeExpandsToDefaultSweep(t *testing.T) {
	t.Parallel()
	assert.Equal(t, gridsearch.DefaultAlphaSweep, gridsearch.AlphaAxis(-1))
	assert.Equal(t, gridsearch.DefaultBetaSweep, gridsearch.BetaAxis(-1))
	assert.Equal(t, gridsearch.DefaultGammaSweep, gridsearch.GammaAxis(-1))
}

func TestAxis_InRangeCollapsesToSingleton(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []float64{0.7}, gridsearch.AlphaAxis(0.7))
}

func TestNeedsSearch(t *testing.T) {
	t.Parallel()
	assert.False(t, gridsearch.NeedsSearch([]float64{0.5}, []float64{0.01}, []float64{0.5}))
	assert.True(t, gridsearch.NeedsSearch(gridsearch.DefaultAlphaSweep, []float64{0.01}, []float64{0.5}))
}
