package pixscale

// ScaleOption configures a Scaler during creation.
// Use functional options to customize Scaler behavior.
//
// Example:
//
//	// Default: sharp filter, GOMAXPROCS workers
//	s := pixscale.New()
//
//	// Linear filter, single-threaded
//	s := pixscale.New(pixscale.WithFilter(pixscale.FilterLinear), pixscale.WithWorkers(1))
type ScaleOption func(*scaleOptions)

// scaleOptions holds optional configuration for Scaler creation.
type scaleOptions struct {
	filter  Filter
	workers int
	noAccel bool
}

// defaultOptions returns the default scaler options.
func defaultOptions() scaleOptions {
	return scaleOptions{
		filter:  FilterSharp,
		workers: 0, // GOMAXPROCS
	}
}

// WithFilter selects the scaling algorithm. The default is FilterSharp,
// the content-adaptive pixel-art filter; FilterNearest and FilterLinear
// select the simple paths.
func WithFilter(f Filter) ScaleOption {
	return func(o *scaleOptions) {
		o.filter = f
	}
}

// WithWorkers sets the number of worker goroutines used for the CPU
// scaling path. Zero or negative selects GOMAXPROCS.
func WithWorkers(n int) ScaleOption {
	return func(o *scaleOptions) {
		o.workers = n
	}
}

// WithoutAccelerator forces the CPU path even when a GPU accelerator is
// registered. Useful for deterministic testing and benchmarking.
func WithoutAccelerator() ScaleOption {
	return func(o *scaleOptions) {
		o.noAccel = true
	}
}
