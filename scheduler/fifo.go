package scheduler

import (
	"github.com/openms-go/epifany/fgraph"
	"github.com/openms-go/epifany/pmf"
)

// fifoScheduler processes directed edges in arrival order. A directed edge
// is enqueued at most once at any given time (pending tracks membership);
// once an edge is sent, the recipient node's other outgoing edges are
// enqueued if they are not already pending, so a single highly-connected
// hub does not starve the rest of the graph.
type fifoScheduler struct {
	cfg     Config
	queue   []directedEdge
	pending map[directedEdge]bool
	seeded  bool
}

func newFIFOScheduler(cfg Config) *fifoScheduler {
	return &fifoScheduler{cfg: cfg, pending: make(map[directedEdge]bool)}
}

func (s *fifoScheduler) enqueue(de directedEdge) {
	if s.pending[de] {
		return
	}
	s.pending[de] = true
	s.queue = append(s.queue, de)
}

func (s *fifoScheduler) seed(g *fgraph.Graph) {
	for _, e := range g.Edges {
		s.enqueue(directedEdge{edge: e, dir: fgraph.VarToFactor})
	}
	for _, fn := range g.Factors {
		for _, e := range fn.Edges {
			s.enqueue(directedEdge{edge: e, dir: fgraph.FactorToVar})
		}
	}
	s.seeded = true
}

// Step dequeues and commits up to one full directed-edge pass worth of
// messages, re-enqueueing recipients' outgoing edges as it goes, and
// reports the largest L-infinity change committed.
func (s *fifoScheduler) Step(g *fgraph.Graph) (float64, error) {
	if !s.seeded {
		s.seed(g)
	}

	n := 2 * len(g.Edges)
	var maxDelta float64
	for i := 0; i < n && len(s.queue) > 0; i++ {
		de := s.queue[0]
		s.queue = s.queue[1:]
		delete(s.pending, de)

		cand, err := computeCandidate(g, de, s.cfg.PNorm)
		if err != nil {
			return 0, err
		}
		cand = cand.Damp(de.edge.Message(de.dir), s.cfg.DampingLambda)
		delta := de.edge.Commit(de.dir, cand)
		if delta > maxDelta {
			maxDelta = delta
		}

		recipientEdges, outDir := outgoingFrom(de)
		for _, oe := range recipientEdges {
			if oe == de.edge {
				continue
			}
			s.enqueue(directedEdge{edge: oe, dir: outDir})
		}
	}
	return maxDelta, nil
}

// computeCandidate dispatches to the fgraph message computation matching
// de's direction, shared by the fifo and random-spanning-tree strategies.
func computeCandidate(g *fgraph.Graph, de directedEdge, pNorm float64) (pmf.Table, error) {
	if de.dir == fgraph.VarToFactor {
		return g.ComputeVarToFactor(de.edge)
	}
	return g.ComputeFactorToVar(de.edge, pNorm)
}

// outgoingFrom returns the edge set and direction of the messages that
// become eligible to send once de's message is received, i.e. the
// recipient node's other incident edges, travelling onward away from it.
func outgoingFrom(de directedEdge) ([]*fgraph.Edge, fgraph.Direction) {
	if de.dir == fgraph.VarToFactor {
		return de.edge.Factor.Edges, fgraph.FactorToVar
	}
	return de.edge.Var.Edges, fgraph.VarToFactor
}
