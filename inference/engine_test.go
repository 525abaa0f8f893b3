package inference_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openms-go/epifany/factor"
	"github.com/openms-go/epifany/fgraph"
	"github.com/openms-go/epifany/inference"
	"github.com/openms-go/epifany/scheduler"
)

// scenario1Graph is the smallest nontrivial case: one protein, one PSM,
// alpha=0.8, beta=0.01, gamma=0.5, PSM score 0.9.
func scenario1Graph(t *testing.T) *fgraph.Graph {
	t.Helper()
	fac := factor.NewFactory(0.8, 0.01, 0.5, 0.5, 1)
	b := fgraph.NewBuilder()
	b.InsertDependency(fac.CreateProteinFactor("p1"))
	b.InsertDependency(fac.CreatePeptideEvidenceFactor("psm1", 0.9))
	b.InsertDependency(fac.CreateSumEvidenceFactor(1, "p1", "psm1"))
	g, err := b.ToGraph()
	require.NoError(t, err)
	return g
}

func scenario1Want() float64 {
	alpha, beta, gamma, score := 0.8, 0.01, 0.5, 0.9
	pPresent := (1-(1-alpha)*(1-beta))*score + (1-alpha)*(1-beta)*(1-score)
	pAbsent := beta*score + (1-beta)*(1-score)
	num1 := gamma * pPresent
	num0 := (1 - gamma) * pAbsent
	return num1 / (num1 + num0)
}

func TestEngine_Run_ConvergesToClosedForm(t *testing.T) {
	t.Parallel()
	g := scenario1Graph(t)
	eng := inference.NewEngine(scheduler.Config{
		Strategy:             scheduler.FIFO,
		PNorm:                1,
		ConvergenceThreshold: 1e-10,
		MaxIterations:        50,
	})

	warn, err := eng.Run(g)
	require.NoError(t, err)
	assert.Nil(t, warn)

	posteriors, err := eng.EstimatePosteriors(g, []string{"p1"})
	require.NoError(t, err)
	assert.InDelta(t, scenario1Want(), posteriors["p1"], 1e-6)
}

func TestEngine_Run_CapReturnsConvergenceWarningNotError(t *testing.T) {
	t.Parallel()
	g := scenario1Graph(t)
	eng := inference.NewEngine(scheduler.Config{
		Strategy:             scheduler.Priority,
		PNorm:                1,
		ConvergenceThreshold: -1, // unreachable
		MaxIterations:        2,
	})

	warn, err := eng.Run(g)
	require.NoError(t, err)
	require.NotNil(t, warn)
	assert.Equal(t, 2, warn.Iterations)
}

func TestEngine_EstimatePosteriors_SkipsUnknownVariable(t *testing.T) {
	t.Parallel()
	g := scenario1Graph(t)
	eng := inference.NewEngine(scheduler.Config{
		Strategy:             scheduler.FIFO,
		PNorm:                1,
		ConvergenceThreshold: 1e-10,
		MaxIterations:        50,
	})
	_, err := eng.Run(g)
	require.NoError(t, err)

	posteriors, err := eng.EstimatePosteriors(g, []string{"p1", "no-such-variable"})
	require.NoError(t, err)
	assert.Contains(t, posteriors, "p1")
	assert.NotContains(t, posteriors, "no-such-variable")
}
