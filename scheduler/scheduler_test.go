package scheduler_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openms-go/epifany/factor"
	"github.com/openms-go/epifany/fgraph"
	"github.com/openms-go/epifany/pmf"
	"github.com/openms-go/epifany/scheduler"
)

// buildScenario1 mirrors fgraph's TestScenario1_SingleProteinSinglePSM: one
// protein, one PSM, alpha=0.8, beta=0.01, gamma=0.5, PSM score 0.9. Its
// closed-form P(p1=1) is reused by every strategy test below.
func buildScenario1(t *testing.T) *fgraph.Graph {
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

// finalPosterior folds every factor->var message incident to variableID, the
// same extraction the inference engine performs once scheduling settles.
func finalPosterior(g *fgraph.Graph, variableID string) (float64, error) {
	v, ok := g.Variables[variableID]
	if !ok {
		return 0, fmt.Errorf("scheduler_test: no such variable %q", variableID)
	}
	tables := make([]pmf.Table, 0, len(v.Edges))
	for _, e := range v.Edges {
		tables = append(tables, e.Message(fgraph.FactorToVar))
	}
	prod, err := pmf.MultiplyAll(tables)
	if err != nil {
		return 0, err
	}
	norm, err := prod.Normalize()
	if err != nil {
		return 0, err
	}
	return norm.P1(), nil
}

func TestScheduler_Priority_Scenario1Converges(t *testing.T) {
	t.Parallel()
	runScenario1(t, scheduler.Priority)
}

func TestScheduler_FIFO_Scenario1Converges(t *testing.T) {
	t.Parallel()
	runScenario1(t, scheduler.FIFO)
}

func TestScheduler_RandomSpanningTree_Scenario1Converges(t *testing.T) {
	t.Parallel()
	runScenario1(t, scheduler.RandomSpanningTree)
}

func runScenario1(t *testing.T, strategy scheduler.Strategy) {
	t.Helper()
	g := buildScenario1(t)
	cfg := scheduler.Config{
		Strategy:             strategy,
		PNorm:                1,
		DampingLambda:        0,
		ConvergenceThreshold: 1e-10,
		MaxIterations:        50,
		RandSeed:             7,
	}
	sched, err := scheduler.New(cfg)
	require.NoError(t, err)

	_, warn, err := scheduler.Run(g, sched, cfg)
	require.NoError(t, err)
	assert.Nil(t, warn)

	got, err := finalPosterior(g, "p1")
	require.NoError(t, err)
	assert.InDelta(t, scenario1Want(), got, 1e-6)
}

func TestScheduler_New_UnknownStrategy(t *testing.T) {
	t.Parallel()
	_, err := scheduler.New(scheduler.Config{Strategy: scheduler.Strategy(99)})
	require.ErrorIs(t, err, scheduler.ErrUnknownStrategy)
}

func TestScheduler_Run_InvalidMaxIterations(t *testing.T) {
	t.Parallel()
	g := buildScenario1(t)
	cfg := scheduler.Config{Strategy: scheduler.Priority, PNorm: 1}
	sched, err := scheduler.New(cfg)
	require.NoError(t, err)

	_, _, err = scheduler.Run(g, sched, cfg)
	require.ErrorIs(t, err, scheduler.ErrInvalidMaxIterations)
}

func TestScheduler_Run_CapReportsConvergenceWarning(t *testing.T) {
	t.Parallel()
	g := buildScenario1(t)
	cfg := scheduler.Config{
		Strategy:             scheduler.Priority,
		PNorm:                1,
		ConvergenceThreshold: -1, // unreachable: forces the iteration cap
		MaxIterations:        3,
	}
	sched, err := scheduler.New(cfg)
	require.NoError(t, err)

	iters, warn, err := scheduler.Run(g, sched, cfg)
	require.NoError(t, err)
	require.NotNil(t, warn)
	assert.Equal(t, 3, iters)
	assert.Equal(t, 3, warn.Iterations)
}
