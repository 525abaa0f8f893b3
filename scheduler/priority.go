package scheduler

import (
	"container/heap"

	"github.com/openms-go/epifany/fgraph"
	"github.com/openms-go/epifany/pmf"
)

// directedEdge names one of the two message slots carried by a fgraph.Edge.
type directedEdge struct {
	edge *fgraph.Edge
	dir  fgraph.Direction
}

// directedEdgeKey is directedEdge's comparable form, used as a map key to
// track each directed edge's most recently pushed heap entry.
type directedEdgeKey struct {
	edgeID int
	dir    fgraph.Direction
}

// pendingItem is one entry in the priority scheduler's heap: a directed
// edge together with the message it would send, how much that message
// would change versus what is currently stored, and the generation it was
// pushed at. generation lets Step recognize and discard a heap entry that a
// later recompute of the same directed edge has superseded.
type pendingItem struct {
	de         directedEdge
	priority   float64
	candidate  pmf.Table
	generation int64
}

// pendingQueue implements heap.Interface as a max-heap on priority, tie-broken
// by edge id then direction for determinism, ranking pending
// belief-propagation messages instead of tentative path distances.
type pendingQueue []*pendingItem

func (pq pendingQueue) Len() int { return len(pq) }

func (pq pendingQueue) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority > pq[j].priority
	}
	if pq[i].de.edge.ID != pq[j].de.edge.ID {
		return pq[i].de.edge.ID < pq[j].de.edge.ID
	}
	return pq[i].de.dir < pq[j].de.dir
}

func (pq pendingQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *pendingQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*pendingItem))
}

func (pq *pendingQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// priorityScheduler implements residual belief propagation: a single
// priority queue persists across Step calls, always ordered by the
// L-infinity size of each directed edge's pending update. Step pops the
// largest one, commits it, and immediately recomputes and re-pushes the
// receiving node's other outgoing edges, so a commit's downstream effect on
// its neighbors is reflected in the queue before any lower-priority, now
// stale candidate gets sent.
type priorityScheduler struct {
	cfg        Config
	pq         pendingQueue
	generation map[directedEdgeKey]int64
	seq        int64
	seeded     bool
}

func newPriorityScheduler(cfg Config) *priorityScheduler {
	return &priorityScheduler{cfg: cfg, generation: make(map[directedEdgeKey]int64)}
}

// push computes de's candidate message against g's current state, damps it,
// and heap-pushes it under a fresh generation number, which invalidates any
// earlier heap entry for the same directed edge still sitting in the queue.
func (s *priorityScheduler) push(g *fgraph.Graph, de directedEdge) error {
	cand, err := computeCandidate(g, de, s.cfg.PNorm)
	if err != nil {
		return err
	}
	cand = cand.Damp(de.edge.Message(de.dir), s.cfg.DampingLambda)

	s.seq++
	s.generation[directedEdgeKey{edgeID: de.edge.ID, dir: de.dir}] = s.seq

	heap.Push(&s.pq, &pendingItem{
		de:         de,
		priority:   pmf.LInfDiff(cand, de.edge.Message(de.dir)),
		candidate:  cand,
		generation: s.seq,
	})
	return nil
}

// seed pushes every directed edge's initial candidate, computed against the
// ab-initio seeded graph, and is run once on the scheduler's first Step.
func (s *priorityScheduler) seed(g *fgraph.Graph) error {
	heap.Init(&s.pq)
	for _, v := range g.Variables {
		for _, e := range v.Edges {
			if err := s.push(g, directedEdge{edge: e, dir: fgraph.VarToFactor}); err != nil {
				return err
			}
		}
	}
	for _, fn := range g.Factors {
		for _, e := range fn.Edges {
			if err := s.push(g, directedEdge{edge: e, dir: fgraph.FactorToVar}); err != nil {
				return err
			}
		}
	}
	s.seeded = true
	return nil
}

// Step commits up to one full directed-edge pass worth of messages in
// descending residual order: pop the top of the queue, discard it if a
// later recompute has superseded it, otherwise commit it and push fresh
// candidates for the receiving node's other outgoing edges. It reports the
// largest L-infinity change committed.
func (s *priorityScheduler) Step(g *fgraph.Graph) (float64, error) {
	if !s.seeded {
		if err := s.seed(g); err != nil {
			return 0, err
		}
	}

	n := 2 * len(g.Edges)
	var maxDelta float64
	for processed := 0; processed < n && s.pq.Len() > 0; {
		item := heap.Pop(&s.pq).(*pendingItem)
		key := directedEdgeKey{edgeID: item.de.edge.ID, dir: item.de.dir}
		if s.generation[key] != item.generation {
			continue // superseded by a later recompute; discard without spending budget
		}
		processed++

		delta := item.de.edge.Commit(item.de.dir, item.candidate)
		if delta > maxDelta {
			maxDelta = delta
		}

		recipientEdges, outDir := outgoingFrom(item.de)
		for _, oe := range recipientEdges {
			if oe == item.de.edge {
				continue
			}
			if err := s.push(g, directedEdge{edge: oe, dir: outDir}); err != nil {
				return 0, err
			}
		}
	}
	return maxDelta, nil
}
