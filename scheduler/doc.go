// Package scheduler orders loopy-belief-propagation message updates over a
// fgraph.Graph and drives them to convergence or the iteration cap.
//
// Three strategies are available, selected by Config.Strategy:
//
//	priority             a max-priority queue keyed by the L-infinity change
//	                     each candidate message would make, tie-broken by
//	                     edge id for determinism.
//	fifo                 each directed edge is enqueued once; after it is
//	                     sent, its recipient's outgoing edges are
//	                     re-enqueued if not already pending.
//	random_spanning_tree each iteration samples a uniform random spanning
//	                     tree of the factor graph (Wilson's algorithm) and
//	                     performs one exact two-pass sum-product sweep
//	                     along it.
//
// Every sent message is damped against the edge's previous message:
// m_new = (1-lambda)*m_computed + lambda*m_old, applied after normalization.
// Convergence is declared when the largest pending L-infinity change falls
// below ConvergenceThreshold, or MaxIterations is reached; the latter is
// reported as a ConvergenceWarning, not an error.
package scheduler
