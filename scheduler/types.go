package scheduler

import "github.com/openms-go/epifany/fgraph"

// Strategy selects which message-ordering algorithm a Scheduler uses.
type Strategy int

const (
	// Priority processes the directed edge whose candidate message would
	// change the most first, via a container/heap max-priority queue.
	Priority Strategy = iota
	// FIFO processes directed edges in arrival order, re-enqueueing a
	// message's recipient's outgoing edges once it is committed.
	FIFO
	// RandomSpanningTree samples a uniform random spanning tree of the
	// factor graph each round (Wilson's algorithm) and performs one exact
	// two-pass sum-product sweep along it.
	RandomSpanningTree
)

// String returns the strategy's configuration name.
func (s Strategy) String() string {
	switch s {
	case Priority:
		return "priority"
	case FIFO:
		return "fifo"
	case RandomSpanningTree:
		return "random_spanning_tree"
	default:
		return "unknown"
	}
}

// Config holds the scheduling parameters shared by every strategy.
type Config struct {
	Strategy Strategy

	// PNorm is the p passed to fgraph.Graph.ComputeFactorToVar's p-norm
	// marginalization. p<=0 behaves as +Inf (max-product).
	PNorm float64

	// DampingLambda blends each freshly computed message with the edge's
	// previous one: (1-lambda)*new + lambda*old. Zero disables damping.
	DampingLambda float64

	// ConvergenceThreshold is the per-round max L-infinity change below
	// which Run declares convergence.
	ConvergenceThreshold float64

	// MaxIterations bounds the number of rounds Run will perform.
	MaxIterations int

	// RandSeed seeds the RandomSpanningTree strategy's RNG. Zero selects a
	// fixed default seed; Run is reproducible for a given seed, not
	// otherwise.
	RandSeed int64
}

// Scheduler performs one round of message updates over g and reports the
// largest L-infinity change committed during that round.
type Scheduler interface {
	Step(g *fgraph.Graph) (float64, error)
}

// New returns the Scheduler implementing cfg.Strategy.
func New(cfg Config) (Scheduler, error) {
	switch cfg.Strategy {
	case Priority:
		return newPriorityScheduler(cfg), nil
	case FIFO:
		return newFIFOScheduler(cfg), nil
	case RandomSpanningTree:
		return newRandomSpanningTreeScheduler(cfg), nil
	default:
		return nil, ErrUnknownStrategy
	}
}
