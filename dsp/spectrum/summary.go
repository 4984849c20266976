package spectrum

import "math"

// rolloffFraction is the share of energy below the reported rolloff frequency.
const rolloffFraction = 0.85

// Summary describes a one-sided magnitude spectrum.
type Summary struct {
	Bins      int
	PeakBin   int
	PeakHz    float64
	Peak      float64
	DC        float64
	Energy    float64 // sum of squared magnitudes
	Centroid  float64 // Hz
	Flatness  float64 // geometric over arithmetic mean of bins 1.., in 0..1
	Rolloff   float64 // Hz below which 85% of the energy lies
	BinWidth  float64 // Hz
	FFTLength int
}

// Summarize computes a Summary over mag, the one-sided half (bins 0..n/2) of
// an n-point transform with n = 2*(len(mag)-1). A single bin is treated as a
// 1-point transform.
func Summarize(mag []float64, sampleRate float64) Summary {
	var s Summary
	s.Bins = len(mag)
	if s.Bins == 0 {
		return s
	}

	s.FFTLength = 2 * (s.Bins - 1)
	if s.FFTLength == 0 {
		s.FFTLength = 1
	}
	s.BinWidth = sampleRate / float64(s.FFTLength)
	s.DC = mag[0]

	sum := 0.0
	weighted := 0.0
	for i, v := range mag {
		sum += v
		s.Energy += v * v
		weighted += float64(i) * s.BinWidth * v
		if v > s.Peak {
			s.Peak = v
			s.PeakBin = i
		}
	}
	s.PeakHz = float64(s.PeakBin) * s.BinWidth

	if sum > 0 {
		s.Centroid = weighted / sum
	}
	s.Flatness = flatness(mag)
	s.Rolloff = rolloff(mag, s.BinWidth, s.Energy)
	return s
}

// flatness skips the DC bin. Any zero bin makes the geometric mean zero.
func flatness(mag []float64) float64 {
	if len(mag) < 2 {
		return 0
	}

	sumLin := 0.0
	sumLog := 0.0
	for _, v := range mag[1:] {
		if v <= 0 {
			return 0
		}
		sumLin += v
		sumLog += math.Log(v)
	}

	count := float64(len(mag) - 1)
	return math.Exp(sumLog/count) / (sumLin / count)
}

func rolloff(mag []float64, binWidth, energy float64) float64 {
	if energy == 0 {
		return 0
	}

	threshold := rolloffFraction * energy
	acc := 0.0
	for i, v := range mag {
		acc += v * v
		if acc >= threshold {
			return float64(i) * binWidth
		}
	}
	return float64(len(mag)-1) * binWidth
}
