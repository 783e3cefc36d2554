package geopath

import "math"

// Options configures a MultiSource search.
type Options struct {
	// MaxDistance caps exploration: vertices whose shortest distance would
	// exceed this value are left unreached. Default math.MaxFloat64 (no
	// cap).
	MaxDistance float64
}

// Option is a functional option mutating Options.
type Option func(*Options)

// WithMaxDistance sets a cap on distances to explore.
func WithMaxDistance(d float64) Option {
	return func(o *Options) { o.MaxDistance = d }
}

// defaultOptions returns the zero-configuration Options.
func defaultOptions() Options {
	return Options{MaxDistance: math.MaxFloat64}
}

// Result holds the output of a multi-source search: dist[i] is the
// geodesic distance from vertex i to its nearest seed, and nearest[i] is
// the rank (index into the seed slice) of that seed. Unreached vertices
// carry dist=+Inf and nearest=-1.
type Result struct {
	Dist    []float64
	Nearest []int32
}
