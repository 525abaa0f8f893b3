package idgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openms-go/epifany/idgraph"
)

type fakeProtein struct {
	accession string
	score     float64
	meta      map[string]float64
}

func newFakeProtein(accession string, score float64) *fakeProtein {
	return &fakeProtein{accession: accession, score: score, meta: map[string]float64{}}
}

func (p *fakeProtein) Accession() string       { return p.accession }
func (p *fakeProtein) Score() float64          { return p.score }
func (p *fakeProtein) SetScore(s float64)      { p.score = s }
func (p *fakeProtein) Meta(k string) (float64, bool) {
	v, ok := p.meta[k]
	return v, ok
}
func (p *fakeProtein) SetMeta(k string, v float64) { p.meta[k] = v }

type fakePeptide struct {
	score                 float64
	evidenceMultiplicity  int
}

func (p *fakePeptide) Score() float64             { return p.score }
func (p *fakePeptide) SetScore(s float64)         { p.score = s }
func (p *fakePeptide) EvidenceMultiplicity() int  { return p.evidenceMultiplicity }

func TestGraph_AddEdge_RejectsSameWhich(t *testing.T) {
	t.Parallel()
	g := idgraph.NewGraph()
	g.AddVertex(&idgraph.Vertex{ID: "p1", Which: idgraph.ProteinVertex, Protein: newFakeProtein("P1", 0.5)})
	g.AddVertex(&idgraph.Vertex{ID: "p2", Which: idgraph.ProteinVertex, Protein: newFakeProtein("P2", 0.5)})

	err := g.AddEdge("p1", "p2")
	require.ErrorIs(t, err, idgraph.ErrSameWhich)
}

func TestGraph_AddEdge_UnknownVertex(t *testing.T) {
	t.Parallel()
	g := idgraph.NewGraph()
	g.AddVertex(&idgraph.Vertex{ID: "p1", Which: idgraph.ProteinVertex, Protein: newFakeProtein("P1", 0.5)})

	err := g.AddEdge("p1", "ghost")
	require.ErrorIs(t, err, idgraph.ErrUnknownVertex)
}

func TestGraph_InputsOf_StrictlyLowerWhich(t *testing.T) {
	t.Parallel()
	g := idgraph.NewGraph()
	g.AddVertex(&idgraph.Vertex{ID: "p1", Which: idgraph.ProteinVertex, Protein: newFakeProtein("P1", 0.5)})
	g.AddVertex(&idgraph.Vertex{ID: "psm1", Which: idgraph.PSMVertex, Peptide: &fakePeptide{score: 0.9, evidenceMultiplicity: 1}})
	require.NoError(t, g.AddEdge("p1", "psm1"))

	ins := g.InputsOf("psm1")
	require.Len(t, ins, 1)
	assert.Equal(t, "p1", ins[0].ID)

	assert.Empty(t, g.InputsOf("p1"))
}

func TestGraph_HasMixedWhich(t *testing.T) {
	t.Parallel()
	g := idgraph.NewGraph()
	g.AddVertex(&idgraph.Vertex{ID: "p1", Which: idgraph.ProteinVertex, Protein: newFakeProtein("P1", 0.5)})
	assert.False(t, g.HasMixedWhich())

	g.AddVertex(&idgraph.Vertex{ID: "psm1", Which: idgraph.PSMVertex, Peptide: &fakePeptide{score: 0.9, evidenceMultiplicity: 1}})
	require.NoError(t, g.AddEdge("p1", "psm1"))
	assert.True(t, g.HasMixedWhich())
}
