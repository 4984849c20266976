package core

// ProcessorConfig holds the settings shared by sources, framers and analyzers.
type ProcessorConfig struct {
	SampleRate float64
	// BlockSize is the number of samples handed to one transform.
	BlockSize int
	// HopSize is the number of new samples between two consecutive blocks.
	HopSize int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the live-analysis defaults: a 4096-sample
// block refreshed every 2048 samples at 48 kHz.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 48000,
		BlockSize:  4096,
		HopSize:    2048,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the analysis block size.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// WithHopSize sets the distance between consecutive blocks.
func WithHopSize(hopSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if hopSize > 0 {
			cfg.HopSize = hopSize
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
// A hop larger than the block is clamped to the block size.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.HopSize > cfg.BlockSize {
		cfg.HopSize = cfg.BlockSize
	}
	return cfg
}

// BinWidth returns the spacing in Hz between two bins of an n-point spectrum.
func (c ProcessorConfig) BinWidth(n int) float64 {
	if n <= 0 {
		return 0
	}
	return c.SampleRate / float64(n)
}
