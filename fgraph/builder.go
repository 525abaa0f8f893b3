package fgraph

import "github.com/openms-go/epifany/factor"

// Builder accumulates factor dependencies for one connected component and
// materializes them into a Graph exactly once.
type Builder struct {
	factors []factor.Factor
	built   bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// InsertDependency registers a factor node; its incident variables are
// deduplicated by id when the graph is materialized. Calling InsertDependency
// after ToGraph has no effect on the already-materialized Graph.
func (b *Builder) InsertDependency(f factor.Factor) {
	b.factors = append(b.factors, f)
}

// ToGraph materializes the bipartite graph and its Bethe cluster region
// decomposition. It must be called exactly once per Builder; the scratch
// slice of accumulated factors is released (set to nil) when ToGraph
// returns, on both the success and the error path, so a caller that
// recovers from a downstream inference failure and still wants to release
// builder scratch can rely on ToGraph having already done so.
func (b *Builder) ToGraph() (g *Graph, err error) {
	defer func() {
		b.factors = nil
		b.built = true
	}()

	if b.built {
		return nil, ErrAlreadyBuilt
	}
	if len(b.factors) == 0 {
		return nil, ErrNoFactors
	}

	g = &Graph{Variables: make(map[string]*Variable, len(b.factors)*2)}
	edgeID := 0
	for fi, f := range b.factors {
		fn := &FactorNode{ID: fi, Factor: f}
		for _, id := range f.Vars {
			v, ok := g.Variables[id]
			if !ok {
				v = &Variable{ID: id}
				g.Variables[id] = v
			}
			e := &Edge{ID: edgeID, Var: v, Factor: fn}
			edgeID++
			v.Edges = append(v.Edges, e)
			fn.Vars = append(fn.Vars, v)
			fn.Edges = append(fn.Edges, e)
			g.Edges = append(g.Edges, e)
		}
		g.Factors = append(g.Factors, fn)
	}
	g.Regions = buildRegions(g)
	g.Seed()
	return g, nil
}
