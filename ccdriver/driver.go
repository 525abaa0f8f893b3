package ccdriver

import (
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/openms-go/epifany/idgraph"
)

// Functor processes one connected component's subgraph: building its
// factor graph, running inference, and writing posteriors back into the
// identification data it references. Functors must be reentrant, since they
// may be invoked concurrently across CCs by ApplyFunctorOnCCs, and must
// operate only on the supplied CC subgraph plus data they were constructed
// with, since writes to shared identification data are partitioned by
// vertex identity across CCs and rely on that discipline to stay race-free
// without locking.
type Functor func(cc *idgraph.Graph) error

// Config controls the driver's concurrency and logging.
type Config struct {
	// MaxConcurrency bounds how many CCs ApplyFunctorOnCCs processes at
	// once; <=0 means unbounded.
	MaxConcurrency int
	Logger         *slog.Logger
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// eligible is the criterion for handing a CC to the functor at all: at
// least two vertices, with a mix of Which values.
func eligible(cc *idgraph.Graph) bool {
	return len(cc.Vertices) >= 2 && cc.HasMixedWhich()
}

// ApplyFunctorOnCCs invokes f once per eligible CC in ccs, in parallel,
// bounded by cfg.MaxConcurrency. A functor error is logged at
// slog.LevelWarn and does not abort sibling CCs.
func ApplyFunctorOnCCs(ccs []*idgraph.Graph, f Functor, cfg Config) {
	var grp errgroup.Group
	if cfg.MaxConcurrency > 0 {
		grp.SetLimit(cfg.MaxConcurrency)
	}
	log := cfg.logger()

	for i, cc := range ccs {
		if !eligible(cc) {
			continue
		}
		idx, component := i, cc
		grp.Go(func() error {
			if err := f(component); err != nil {
				log.Warn("LBP encountered a problem in a connected component; skipping inference there.",
					"cc_index", idx, "error", err)
			}
			return nil
		})
	}
	_ = grp.Wait() // always nil: functor errors are logged above, never propagated
}

// ApplyFunctorOnCCsST is the sequential counterpart to ApplyFunctorOnCCs:
// it processes eligible components one at a time, in slice order.
func ApplyFunctorOnCCsST(ccs []*idgraph.Graph, f Functor, cfg Config) {
	log := cfg.logger()
	for i, cc := range ccs {
		if !eligible(cc) {
			continue
		}
		if err := f(cc); err != nil {
			log.Warn("LBP encountered a problem in a connected component; skipping inference there.",
				"cc_index", i, "error", err)
		}
	}
}
