package fft

// Strategy selects the butterfly implementation. All strategies produce the
// same spectrum up to floating point rounding.
type Strategy int

const (
	// StrategyRecursive runs the depth-first recursion over two ping-pong
	// buffers whose source/destination roles swap at every level.
	StrategyRecursive Strategy = iota
	// StrategyIterative runs a bottom-up decimation-in-time pass after an
	// explicit bit-reversal permutation.
	StrategyIterative
	// StrategySplit copies even and odd samples into fresh slices at every
	// level before combining them.
	StrategySplit
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyRecursive:
		return "recursive"
	case StrategyIterative:
		return "iterative"
	case StrategySplit:
		return "split"
	default:
		return "unknown"
	}
}

// Option configures a transform.
type Option func(*config)

type config struct {
	truncate bool
	strategy Strategy
}

func applyOptions(opts []Option) config {
	cfg := config{strategy: StrategyRecursive}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithTruncate cuts the result back to the input length instead of returning
// every bin of the padded transform. The bins kept are still those of the
// padded signal.
func WithTruncate() Option {
	return func(c *config) {
		c.truncate = true
	}
}

// WithStrategy selects the butterfly implementation. Unknown values fall back
// to StrategyRecursive.
func WithStrategy(s Strategy) Option {
	return func(c *config) {
		switch s {
		case StrategyRecursive, StrategyIterative, StrategySplit:
			c.strategy = s
		default:
			c.strategy = StrategyRecursive
		}
	}
}
