package core

import "github.com/charmbracelet/log"

// graphConfig holds the constructor-time settings New resolves into a
// bound equality.Rule and a handful of scalar knobs on Graph. Everything
// flows through here; there are no package-level defaults hidden
// elsewhere.
type graphConfig struct {
	delta     float64
	parallel  bool
	strictTWA bool
	logger    *log.Logger
}

func defaultConfig() *graphConfig {
	return &graphConfig{
		delta:    1e-5,
		parallel: true,
	}
}

// Option customizes a Graph at construction time.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*graphConfig)

// WithConvergenceDelta overrides the default convergence threshold δ
// (1e-5). Panics on a non-positive delta.
func WithConvergenceDelta(delta float64) Option {
	if delta <= 0 {
		panic("core: WithConvergenceDelta(delta<=0)")
	}
	return func(c *graphConfig) {
		c.delta = delta
	}
}

// WithParallel overrides the default (true) for whether the factor and
// variable sweeps run across goroutines via package sweep.
func WithParallel(parallel bool) Option {
	return func(c *graphConfig) {
		c.parallel = parallel
	}
}

// WithStrictTWA puts the bound TWA equality rule into strict mode: every
// incident INF message is compared instead of short-circuiting on the
// first one, and a disagreement makes Iterate panic with an error wrapping
// equality.ErrConflictingINF instead of silently picking the first-seen
// value. logger, if non-nil, receives a structured warning before that
// panic. Ignored under ADMM.
func WithStrictTWA(logger *log.Logger) Option {
	return func(c *graphConfig) {
		c.strictTWA = true
		c.logger = logger
	}
}
