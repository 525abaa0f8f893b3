package idgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openms-go/epifany/idgraph"
)

func TestConnectedComponents_SplitsDisjointGraphs(t *testing.T) {
	t.Parallel()
	g := idgraph.NewGraph()

	g.AddVertex(&idgraph.Vertex{ID: "p1", Which: idgraph.ProteinVertex, Protein: newFakeProtein("P1", 0.5)})
	g.AddVertex(&idgraph.Vertex{ID: "psm1", Which: idgraph.PSMVertex, Peptide: &fakePeptide{score: 0.9, evidenceMultiplicity: 1}})
	require.NoError(t, g.AddEdge("p1", "psm1"))

	g.AddVertex(&idgraph.Vertex{ID: "p2", Which: idgraph.ProteinVertex, Protein: newFakeProtein("P2", 0.3)})

	comps := g.ConnectedComponents()
	require.Len(t, comps, 2)

	sizes := map[int]int{}
	for _, c := range comps {
		sizes[len(c.Vertices)]++
	}
	assert.Equal(t, 1, sizes[1]) // the isolated p2
	assert.Equal(t, 1, sizes[2]) // p1+psm1
}

func TestConnectedComponents_PreservesEdgesWithinComponent(t *testing.T) {
	t.Parallel()
	g := idgraph.NewGraph()
	g.AddVertex(&idgraph.Vertex{ID: "p1", Which: idgraph.ProteinVertex, Protein: newFakeProtein("P1", 0.5)})
	g.AddVertex(&idgraph.Vertex{ID: "psm1", Which: idgraph.PSMVertex, Peptide: &fakePeptide{score: 0.9, evidenceMultiplicity: 1}})
	require.NoError(t, g.AddEdge("p1", "psm1"))

	comps := g.ConnectedComponents()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0].InputsOf("psm1"), 1)
}

func TestSimpleBuilder_TopPSMsTrimsPerParent(t *testing.T) {
	t.Parallel()
	g := idgraph.NewGraph()
	g.AddVertex(&idgraph.Vertex{ID: "p1", Which: idgraph.ProteinVertex, Protein: newFakeProtein("P1", 0.5)})
	for i, score := range []float64{0.9, 0.5, 0.1} {
		id := "psm" + string(rune('1'+i))
		g.AddVertex(&idgraph.Vertex{ID: id, Which: idgraph.PSMVertex, Peptide: &fakePeptide{score: score, evidenceMultiplicity: 1}})
		require.NoError(t, g.AddEdge("p1", id))
	}

	b := idgraph.NewSimpleBuilder(g)
	trimmed, err := b.BuildGraph(2)
	require.NoError(t, err)

	assert.Len(t, trimmed.InputsOf("psm1"), 1) // psm1 (top score) keeps its edge to p1
	assert.Len(t, trimmed.Vertices, 3)         // p1 + top 2 PSMs by score
}
