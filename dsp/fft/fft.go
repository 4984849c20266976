package fft

import (
	"math"
	"math/bits"

	"github.com/cwbudde/fftscope/dsp/spectrum"
)

// MaxRecursionDepth bounds the nesting of the recursive strategy. Transforms
// with log2(n) above it run the iterative strategy instead.
const MaxRecursionDepth = 32

// NextPowerOfTwo returns the smallest power of two >= n, and 1 for n <= 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// Magnitude returns |X[k]| for every bin of the zero-padded input using the
// recursive strategy. The result has NextPowerOfTwo(len(input)) elements.
func Magnitude(input []float64) []float64 {
	return Transform(input)
}

// Transform returns the magnitude spectrum of input configured by opts.
func Transform(input []float64, opts ...Option) []float64 {
	cfg := applyOptions(opts)

	mag := spectrum.Norm(coefficients(input, cfg.strategy))
	if cfg.truncate {
		mag = mag[:len(input)]
	}
	return mag
}

// Coefficients returns the complex DFT bins X[0..n-1] of the zero-padded
// input, before magnitude reduction.
func Coefficients(input []float64, opts ...Option) []complex128 {
	cfg := applyOptions(opts)

	bins := coefficients(input, cfg.strategy)
	if cfg.truncate {
		bins = bins[:len(input)]
	}
	return bins
}

func coefficients(input []float64, strategy Strategy) []complex128 {
	buf := pad(input)

	switch strategy {
	case StrategyIterative:
		iterative(buf)
	case StrategySplit:
		split(buf)
	default:
		recursive(buf)
	}
	return buf
}

// pad maps samples to (v, 0) and appends zeros up to the working length.
func pad(input []float64) []complex128 {
	buf := make([]complex128, NextPowerOfTwo(len(input)))
	for i, v := range input {
		buf[i] = complex(v, 0)
	}
	return buf
}

// twiddle returns exp(-i*pi*i/n).
func twiddle(i, n int) complex128 {
	sin, cos := math.Sincos(math.Pi * float64(i) / float64(n))
	return complex(cos, -sin)
}

func log2(n int) int {
	return bits.Len(uint(n)) - 1
}
