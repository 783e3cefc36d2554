package vfps

// Options configures a Sample run.
type Options struct {
	// InitialSeed, if non-negative, is used as the first seed instead of
	// the automatically chosen vertex 0 of the largest connected
	// component. Default -1 (automatic choice).
	InitialSeed int32
}

// Option is a functional option mutating Options.
type Option func(*Options)

// WithInitialSeed overrides the automatically chosen first seed.
func WithInitialSeed(v int32) Option {
	return func(o *Options) { o.InitialSeed = v }
}

// defaultOptions returns the zero-configuration Options.
func defaultOptions() Options {
	return Options{InitialSeed: -1}
}

// Result is the outcome of Sample: the ordered, duplicate-free seed set
// (seed rank == its index), and the Voronoi partition over all of the
// graph's vertices induced by that seed set.
//
// StoppedEarly is true when Sample could not reach the requested N before
// running out of distinct candidate vertices: the farthest vertex was
// already at distance zero from the seed set (e.g. N exceeds the vertex
// count).
// Radius is the sampling radius: the maximum entry of Dist over reachable
// vertices at termination, a natural input to any external resampling
// heuristic built on top of this package.
type Result struct {
	Seeds        []int32
	Nearest      []int32
	Dist         []float64
	Radius       float64
	StoppedEarly bool
}
