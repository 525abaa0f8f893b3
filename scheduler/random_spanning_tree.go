package scheduler

import (
	"math/rand"

	"github.com/openms-go/epifany/fgraph"
)

// randomSpanningTreeScheduler samples a uniform random spanning tree of the
// factor graph each round via Wilson's loop-erased random walk algorithm,
// then performs one exact two-pass sum-product sweep along it: messages
// flow leaf-to-root, then root-to-leaf. Edges outside the sampled tree keep
// whatever message they were last committed with; the tree is resampled
// fresh next round, so every edge is exercised across enough rounds.
//
// This is the one strategy in the package a caller must supply a fixed
// Config.RandSeed for to get reproducible output; the other two strategies
// are deterministic unconditionally.
type randomSpanningTreeScheduler struct {
	cfg Config
	rng *rand.Rand
}

func newRandomSpanningTreeScheduler(cfg Config) *randomSpanningTreeScheduler {
	seed := cfg.RandSeed
	if seed == 0 {
		seed = 1
	}
	return &randomSpanningTreeScheduler{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

func (s *randomSpanningTreeScheduler) Step(g *fgraph.Graph) (float64, error) {
	keys := g.NodeKeys()
	if len(keys) == 0 {
		return 0, nil
	}

	root := keys[0]
	parentEdge, order := sampleSpanningTree(g, keys, root, s.rng)

	var maxDelta float64

	// Leaf-to-root pass: each non-root node sends its message toward its
	// parent, in post-order so every child has already updated before its
	// parent's turn.
	for _, k := range order {
		if k == root {
			continue
		}
		e := parentEdge[k]
		dir := g.DirectionFrom(e, k)
		delta, err := sendOn(g, e, dir, s.cfg)
		if err != nil {
			return 0, err
		}
		if delta > maxDelta {
			maxDelta = delta
		}
	}

	// Root-to-leaf pass: walk the same order in reverse so a parent is
	// updated before any of its children, then send the opposite-direction
	// message down each tree edge.
	for i := len(order) - 1; i >= 0; i-- {
		k := order[i]
		if k == root {
			continue
		}
		e := parentEdge[k]
		dir := oppositeDirection(g.DirectionFrom(e, k))
		delta, err := sendOn(g, e, dir, s.cfg)
		if err != nil {
			return 0, err
		}
		if delta > maxDelta {
			maxDelta = delta
		}
	}

	return maxDelta, nil
}

func oppositeDirection(d fgraph.Direction) fgraph.Direction {
	if d == fgraph.VarToFactor {
		return fgraph.FactorToVar
	}
	return fgraph.VarToFactor
}

func sendOn(g *fgraph.Graph, e *fgraph.Edge, dir fgraph.Direction, cfg Config) (float64, error) {
	cand, err := computeCandidate(g, directedEdge{edge: e, dir: dir}, cfg.PNorm)
	if err != nil {
		return 0, err
	}
	cand = cand.Damp(e.Message(dir), cfg.DampingLambda)
	return e.Commit(dir, cand), nil
}

// sampleSpanningTree runs Wilson's algorithm over the graph's node keys and
// returns, for every non-root node, the edge connecting it to its parent in
// the sampled tree, plus a post-order traversal (children before parents)
// of every node reachable from root.
func sampleSpanningTree(g *fgraph.Graph, keys []fgraph.NodeKey, root fgraph.NodeKey, rng *rand.Rand) (map[fgraph.NodeKey]*fgraph.Edge, []fgraph.NodeKey) {
	inTree := map[fgraph.NodeKey]bool{root: true}
	parentEdge := map[fgraph.NodeKey]*fgraph.Edge{}

	for _, u := range keys {
		if inTree[u] {
			continue
		}

		walkNext := map[fgraph.NodeKey]*fgraph.Edge{}
		cur := u
		for !inTree[cur] {
			edges := g.EdgesAt(cur)
			if len(edges) == 0 {
				inTree[cur] = true
				break
			}
			e := edges[rng.Intn(len(edges))]
			walkNext[cur] = e
			cur = g.OtherKey(e, cur)
		}

		cur = u
		for !inTree[cur] {
			inTree[cur] = true
			e := walkNext[cur]
			parentEdge[cur] = e
			cur = g.OtherKey(e, cur)
		}
	}

	children := map[fgraph.NodeKey][]fgraph.NodeKey{}
	for _, k := range keys {
		if e, ok := parentEdge[k]; ok {
			parent := g.OtherKey(e, k)
			children[parent] = append(children[parent], k)
		}
	}

	var order []fgraph.NodeKey
	visited := map[fgraph.NodeKey]bool{}
	var visit func(fgraph.NodeKey)
	visit = func(k fgraph.NodeKey) {
		if visited[k] {
			return
		}
		visited[k] = true
		for _, c := range children[k] {
			visit(c)
		}
		order = append(order, k)
	}
	visit(root)
	for _, k := range keys {
		visit(k)
	}

	return parentEdge, order
}
