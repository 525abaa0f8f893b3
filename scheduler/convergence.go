package scheduler

import (
	"fmt"

	"github.com/openms-go/epifany/fgraph"
)

// ConvergenceWarning reports that Run reached Config.MaxIterations before
// the per-round max L-infinity change fell below Config.ConvergenceThreshold.
// It is returned alongside a nil error: the graph's messages are still
// usable, just not certified converged.
type ConvergenceWarning struct {
	Iterations int
	MaxDelta   float64
	Threshold  float64
}

func (w *ConvergenceWarning) Error() string {
	return fmt.Sprintf("scheduler: did not converge within %d iterations (max delta %.3g, threshold %.3g)",
		w.Iterations, w.MaxDelta, w.Threshold)
}

// Run repeatedly steps sched over g until the per-round max L-infinity
// change drops below cfg.ConvergenceThreshold or cfg.MaxIterations rounds
// have run, whichever comes first. It returns the number of rounds
// performed and, if the cap was hit first, a non-nil *ConvergenceWarning.
// A non-nil error indicates a genuine failure from the underlying message
// computation (propagated from sched.Step, e.g. a pmf.ErrAllZero) rather
// than a failure to converge.
func Run(g *fgraph.Graph, sched Scheduler, cfg Config) (int, *ConvergenceWarning, error) {
	if cfg.MaxIterations <= 0 {
		return 0, nil, ErrInvalidMaxIterations
	}

	var maxDelta float64
	i := 0
	for ; i < cfg.MaxIterations; i++ {
		delta, err := sched.Step(g)
		if err != nil {
			return i, nil, err
		}
		maxDelta = delta
		if maxDelta < cfg.ConvergenceThreshold {
			return i + 1, nil, nil
		}
	}
	return i, &ConvergenceWarning{Iterations: i, MaxDelta: maxDelta, Threshold: cfg.ConvergenceThreshold}, nil
}
