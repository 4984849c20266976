package testutil

import (
	"math"
	"math/cmplx"
)

// NaiveDFT evaluates X[k] = sum x[j]*exp(-2*pi*i*k*j/n) directly in O(n^2).
func NaiveDFT(x []float64) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := range out {
		var acc complex128
		for j, v := range x {
			angle := -2 * math.Pi * float64(k*j%n) / float64(n)
			acc += complex(v, 0) * cmplx.Exp(complex(0, angle))
		}
		out[k] = acc
	}
	return out
}

// NaiveMagnitude returns |NaiveDFT(x)| per bin.
func NaiveMagnitude(x []float64) []float64 {
	bins := NaiveDFT(x)
	out := make([]float64, len(bins))
	for i, c := range bins {
		out[i] = cmplx.Abs(c)
	}
	return out
}

// ZeroPad returns x extended with zeros to length n. x is returned as a copy
// when it is already at least n long.
func ZeroPad(x []float64, n int) []float64 {
	if n < len(x) {
		n = len(x)
	}
	out := make([]float64, n)
	copy(out, x)
	return out
}
