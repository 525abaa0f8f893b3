package aucscore

import "errors"

// ErrNoObservations indicates Evaluate was called with no protein hits.
var ErrNoObservations = errors.New("aucscore: no observations to evaluate")
