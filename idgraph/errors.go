package idgraph

import (
	"errors"
	"fmt"
)

// ErrSameWhich indicates AddEdge was asked to connect two vertices with
// equal Which; the identification graph only has edges between differing
// discriminants.
var ErrSameWhich = errors.New("idgraph: edge endpoints must have differing Which")

// ErrUnknownVertex indicates an operation referenced a vertex id not
// present in the graph.
var ErrUnknownVertex = errors.New("idgraph: unknown vertex")

// GraphShapeError reports a structural defect in one connected component,
// most commonly a PSM with no parent edge. It is per-CC and recoverable:
// the inference functor catches it, logs a warning, and skips that CC
// without aborting the run.
type GraphShapeError struct {
	VertexID string
	Which    Which
	Reason   string
}

func (e *GraphShapeError) Error() string {
	return fmt.Sprintf("idgraph: vertex %q (which=%d): %s", e.VertexID, e.Which, e.Reason)
}
