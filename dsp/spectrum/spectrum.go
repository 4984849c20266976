package spectrum

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/fftscope/dsp/core"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func splitParts(in []complex128) (re, im []float64, buf *scratchBuf) {
	re, im, buf = getScratch(len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im, buf
}

// Magnitude returns |X[k]| = sqrt(re^2 + im^2) for each bin.
//
// Scratch buffers are pooled, so in steady state only the output slice is
// allocated. An empty input returns nil.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := splitParts(in)
	vecmath.Magnitude(out, re, im)
	scratchPool.Put(buf)
	return out
}

// MagnitudeFromParts computes |X[k]| into dst from separate real and
// imaginary parts. All three slices must have the same length.
func MagnitudeFromParts(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// Norm returns |X[k]| for each bin computed with math.Hypot, so bins whose
// squared parts would overflow or underflow keep their exact magnitude.
// Infinite parts give +Inf even when the other part is NaN.
func Norm(in []complex128) []float64 {
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Abs(c)
	}
	return out
}

// Power returns |X[k]|^2 for each bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := splitParts(in)
	vecmath.Power(out, re, im)
	scratchPool.Put(buf)
	return out
}

// PowerFromMagnitude squares every magnitude into a new slice.
func PowerFromMagnitude(mag []float64) []float64 {
	out := make([]float64, len(mag))
	for i, v := range mag {
		out[i] = v * v
	}
	return out
}

// Phase returns arg(X[k]) in radians for each bin.
func Phase(in []complex128) []float64 {
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// OneSided returns the bins 0..n/2 of an n-bin spectrum of a real signal.
// The upper half mirrors the lower one and carries no extra information.
// The result aliases values.
func OneSided(values []float64) []float64 {
	if len(values) <= 1 {
		return values
	}
	return values[:len(values)/2+1]
}

// BinFrequency returns the centre frequency in Hz of bin k of an n-point
// transform at sampleRate.
func BinFrequency(k, n int, sampleRate float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(k) * sampleRate / float64(n)
}

// NearestBin returns the bin of an n-point transform closest to freqHz.
func NearestBin(freqHz float64, n int, sampleRate float64) int {
	if n <= 0 || sampleRate <= 0 {
		return 0
	}
	k := int(freqHz*float64(n)/sampleRate + 0.5)
	if k < 0 {
		return 0
	}
	if k >= n {
		return n - 1
	}
	return k
}

// ToDB converts magnitudes to dB (20*log10) with a floor at floorDB.
func ToDB(mag []float64, floorDB float64) []float64 {
	out := make([]float64, len(mag))
	for i, v := range mag {
		db := core.LinearToDB(v)
		if db < floorDB || math.IsNaN(db) {
			db = floorDB
		}
		out[i] = db
	}
	return out
}

// PowerToDB converts powers to dB (10*log10) with a floor at floorDB.
func PowerToDB(pow []float64, floorDB float64) []float64 {
	out := make([]float64, len(pow))
	for i, v := range pow {
		db := core.LinearPowerToDB(v)
		if db < floorDB || math.IsNaN(db) {
			db = floorDB
		}
		out[i] = db
	}
	return out
}
