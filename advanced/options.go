package advanced

import "go.uber.org/zap"

// Option configures mesh construction and legalization.
//
// Example:
//
//	mesh, err := TriangulatePoints(points, Fan,
//		WithMaxIterations(5000),
//		WithLogger(zap.NewExample()))
type Option func(*Options)

// Options holds the tunables shared by every engine operation.
type Options struct {
	// Upper bound on legalization passes before giving up with
	// ErrLegalizationTimeout.
	MaxIterations int
	// Relative tolerance for the in-circle and degeneracy predicates.
	Epsilon float64
	// Absolute tolerance for the sum-of-areas test used when looking for ears.
	AreaTolerance float64
	// Points closer than this in both coordinates are treated as duplicates
	// during construction.
	DuplicateTolerance float64
	Logger             *zap.Logger
}

const (
	DefaultMaxIterations      = 1000
	DefaultEpsilon            = 1e-10
	DefaultAreaTolerance      = 1e-5
	DefaultDuplicateTolerance = 1e-9
)

func defaultOptions() Options {
	return Options{
		MaxIterations:      DefaultMaxIterations,
		Epsilon:            DefaultEpsilon,
		AreaTolerance:      DefaultAreaTolerance,
		DuplicateTolerance: DefaultDuplicateTolerance,
		Logger:             zap.NewNop(),
	}
}

// NewOptions applies opts over the defaults.
func NewOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// WithMaxIterations caps the number of legalization passes. Values below one
// are ignored.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxIterations = n
		}
	}
}

func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		o.Epsilon = eps
	}
}

func WithAreaTolerance(tol float64) Option {
	return func(o *Options) {
		o.AreaTolerance = tol
	}
}

func WithDuplicateTolerance(tol float64) Option {
	return func(o *Options) {
		o.DuplicateTolerance = tol
	}
}

// WithLogger routes engine diagnostics to l. Nil restores the silent default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
