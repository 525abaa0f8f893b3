package gridsearch

// DefaultAlphaSweep, DefaultBetaSweep and DefaultGammaSweep are the sweeps a
// negative configured model parameter expands to.
var (
	DefaultAlphaSweep = []float64{0.1, 0.3, 0.5, 0.7, 0.9}
	DefaultBetaSweep  = []float64{0.001}
	DefaultGammaSweep = []float64{0.5}
)

// Axis collapses configured to a singleton if it is already in [0,1], or
// expands it to defaults if negative.
func Axis(configured float64, defaults []float64) []float64 {
	if configured < 0 {
		return defaults
	}
	return []float64{configured}
}

// AlphaAxis, BetaAxis and GammaAxis apply Axis with each parameter's own
// default sweep.
func AlphaAxis(configured float64) []float64 { return Axis(configured, DefaultAlphaSweep) }
func BetaAxis(configured float64) []float64  { return Axis(configured, DefaultBetaSweep) }
func GammaAxis(configured float64) []float64 { return Axis(configured, DefaultGammaSweep) }

// NeedsSearch reports whether the Cartesian product of the three axes has
// more than one tuple; a degenerate 1x1x1 grid should skip the search
// entirely rather than call Run.
func NeedsSearch(alphas, betas, gammas []float64) bool {
	return len(alphas) > 1 || len(betas) > 1 || len(gammas) > 1
}
