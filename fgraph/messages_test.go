package fgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openms-go/epifany/factor"
	"github.com/openms-go/epifany/fgraph"
	"github.com/openms-go/epifany/pmf"
)

// TestScenario1_SingleProteinSinglePSM checks the single-protein,
// single-PSM closed form exactly: alpha=0.8, beta=0.01, gamma=0.5, PSM
// score 0.9.
func TestScenario1_SingleProteinSinglePSM(t *testing.T) {
	fac := factor.NewFactory(0.8, 0.01, 0.5, 0.5, 1)
	b := fgraph.NewBuilder()
	b.InsertDependency(fac.CreateProteinFactor("p1"))
	b.InsertDependency(fac.CreatePeptideEvidenceFactor("psm1", 0.9))
	b.InsertDependency(fac.CreateSumEvidenceFactor(1, "p1", "psm1"))

	g, err := b.ToGraph()
	require.NoError(t, err)

	p1 := g.Variables["p1"]
	require.Len(t, p1.Edges, 2)

	var sumEvidenceEdge, proteinFactorEdge *fgraph.Edge
	for _, e := range p1.Edges {
		if len(e.Factor.Factor.Vars) == 2 {
			sumEvidenceEdge = e
		} else {
			proteinFactorEdge = e
		}
	}
	require.NotNil(t, sumEvidenceEdge)
	require.NotNil(t, proteinFactorEdge)

	// Send the PSM's evidence-factor message, then fold it into the PSM's
	// message toward the sum-evidence factor (two directed messages away
	// from the ab-initio seed).
	psmVar := g.Variables["psm1"]
	var psmToSumEdge, evidenceToPsmEdge *fgraph.Edge
	for _, e := range psmVar.Edges {
		if e.Factor == sumEvidenceEdge.Factor {
			psmToSumEdge = e
		} else {
			evidenceToPsmEdge = e
		}
	}
	require.NotNil(t, psmToSumEdge)
	require.NotNil(t, evidenceToPsmEdge)

	evidenceMsg, err := g.ComputeFactorToVar(evidenceToPsmEdge, 1)
	require.NoError(t, err)
	evidenceToPsmEdge.Commit(fgraph.FactorToVar, evidenceMsg)

	v2f, err := g.ComputeVarToFactor(psmToSumEdge)
	require.NoError(t, err)
	psmToSumEdge.Commit(fgraph.VarToFactor, v2f)

	sumToP1, err := g.ComputeFactorToVar(sumEvidenceEdge, 1)
	require.NoError(t, err)

	protMsg, err := g.ComputeFactorToVar(proteinFactorEdge, 1)
	require.NoError(t, err)

	finalNorm, err := pmf.Multiply(sumToP1, protMsg).Normalize()
	require.NoError(t, err)

	// Closed form for the single-protein, single-PSM case.
	alpha, beta, gamma, score := 0.8, 0.01, 0.5, 0.9
	pPresent := (1-(1-alpha)*(1-beta))*score + (1-alpha)*(1-beta)*(1-score)
	pAbsent := beta*score + (1-beta)*(1-score)
	num1 := gamma * pPresent
	num0 := (1 - gamma) * pAbsent
	want := num1 / (num1 + num0)

	assert.InDelta(t, want, finalNorm.P1(), 1e-9)
}

func TestComputeVarToFactor_DegreeOneIsUniform(t *testing.T) {
	t.Parallel()

	fac := factor.NewFactory(0.8, 0.01, 0.5, 0.5, 1)
	b := fgraph.NewBuilder()
	b.InsertDependency(fac.CreateProteinFactor("p1"))
	g, err := b.ToGraph()
	require.NoError(t, err)

	msg, err := g.ComputeVarToFactor(g.Edges[0])
	require.NoError(t, err)
	assert.InDelta(t, 0.5, msg.At(0), 1e-12)
	assert.InDelta(t, 0.5, msg.At(1), 1e-12)
}
