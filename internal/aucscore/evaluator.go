package aucscore

import (
	"sort"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"

	"github.com/openms-go/epifany/idgraph"
)

// Evaluator computes the area under the ROC curve over a fixed set of
// protein hits, classifying each as target (1) or decoy (0) via IsTarget.
// It satisfies gridsearch.Scorer.
type Evaluator struct {
	Hits     []idgraph.ProteinHit
	IsTarget func(idgraph.ProteinHit) bool
}

// NewEvaluator returns an Evaluator over hits, labelled by isTarget.
func NewEvaluator(hits []idgraph.ProteinHit, isTarget func(idgraph.ProteinHit) bool) *Evaluator {
	return &Evaluator{Hits: hits, IsTarget: isTarget}
}

// Evaluate reads each hit's current score (the posterior written by that
// grid cell's inference pass) and returns the ROC AUC over the whole set;
// higher is better, matching gridsearch.Scorer's contract.
func (e *Evaluator) Evaluate() (float64, error) {
	if len(e.Hits) == 0 {
		return 0, ErrNoObservations
	}

	scores := make([]float64, len(e.Hits))
	classes := make([]bool, len(e.Hits))
	for i, h := range e.Hits {
		scores[i] = h.Score()
		classes[i] = e.IsTarget(h)
	}

	// stat.ROC requires its y argument sorted in increasing order.
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return scores[idx[i]] < scores[idx[j]] })

	sortedScores := make([]float64, len(scores))
	sortedClasses := make([]bool, len(scores))
	for i, j := range idx {
		sortedScores[i] = scores[j]
		sortedClasses[i] = classes[j]
	}

	tpr, fpr, _ := stat.ROC(nil, sortedScores, sortedClasses, nil)
	return integrate.Trapezoidal(fpr, tpr), nil
}
