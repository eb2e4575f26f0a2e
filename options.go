package approx

import "log/slog"

const (
	// defaultProbeFactor scales the tolerance for the cheap cross-section
	// fits of the initial guess.
	defaultProbeFactor = 100.0

	// defaultMaxIterations bounds the refinement loop. The loop terminates
	// on its own well before this for any grid; the cap only guards against
	// a fitter that misbehaves.
	defaultMaxIterations = 1000
)

// Option configures an approximation call.
//
// Example:
//
//	res, err := approx.Approximate(ctx, grid, 0.01,
//	    approx.WithLogger(slog.Default()),
//	    approx.WithMaxIterations(50))
type Option func(*options)

type options struct {
	fitter        CurveFitter
	logger        *slog.Logger
	probeFactor   float64
	maxIterations int
}

func defaultOptions() options {
	return options{
		fitter:        LeastSquaresFitter{},
		probeFactor:   defaultProbeFactor,
		maxIterations: defaultMaxIterations,
	}
}

// WithFitter replaces the default least-squares fitter.
func WithFitter(f CurveFitter) Option {
	return func(o *options) {
		if f != nil {
			o.fitter = f
		}
	}
}

// WithLogger logs this call to l instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithProbeFactor sets the multiple of the tolerance used for the
// cross-section fits that produce the initial segment counts. Values below 1
// are ignored.
func WithProbeFactor(f float64) Option {
	return func(o *options) {
		if f >= 1 {
			o.probeFactor = f
		}
	}
}

// WithMaxIterations caps the number of fit/evaluate rounds. When the cap is
// reached the interpolation surface is returned. Values below 1 are ignored.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.maxIterations = n
		}
	}
}
