package spectrum

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/fftscope/internal/testutil"
)

func TestGoertzelMatchesDFTBin(t *testing.T) {
	const (
		sampleRate = 48000.0
		n          = 1024
		bin        = 21
	)
	freq := BinFrequency(bin, n, sampleRate)
	sig := testutil.DeterministicNoise(7, 1, n)

	g, err := NewGoertzel(freq, sampleRate)
	if err != nil {
		t.Fatalf("NewGoertzel: %v", err)
	}
	g.ProcessBlock(sig)

	want := cmplx.Abs(testutil.NaiveDFT(sig)[bin])
	if got := g.Magnitude(); math.Abs(got-want) > 1e-8*want {
		t.Fatalf("Magnitude = %v, want %v", got, want)
	}
}

func TestGoertzelReset(t *testing.T) {
	g, err := NewGoertzel(1000, 48000)
	if err != nil {
		t.Fatalf("NewGoertzel: %v", err)
	}
	g.ProcessBlock([]float64{1})
	if g.Power() == 0 {
		t.Fatal("Power should be non-zero after processing")
	}

	g.Reset()
	if g.Power() != 0 {
		t.Fatalf("Power after Reset = %v, want 0", g.Power())
	}
	if g.Frequency() != 1000 {
		t.Fatalf("Frequency = %v, want 1000", g.Frequency())
	}
}

func TestGoertzelDCAndNyquist(t *testing.T) {
	g, _ := NewGoertzel(0, 48000)
	g.ProcessBlock(testutil.DC(1.0, 100))
	if math.Abs(g.Power()-10000) > 1e-9 {
		t.Fatalf("DC power = %v, want 10000", g.Power())
	}

	sig := make([]float64, 100)
	for i := range sig {
		sig[i] = 1
		if i%2 == 1 {
			sig[i] = -1
		}
	}
	g, _ = NewGoertzel(24000, 48000)
	g.ProcessBlock(sig)
	if math.Abs(g.Power()-10000) > 1e-9 {
		t.Fatalf("Nyquist power = %v, want 10000", g.Power())
	}
}

func TestNewGoertzelRejectsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		freq, fs float64
	}{
		{"zero rate", 100, 0},
		{"nan rate", 100, math.NaN()},
		{"negative freq", -1, 48000},
		{"above nyquist", 24001, 48000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGoertzel(tt.freq, tt.fs); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestAnalyzeBlock(t *testing.T) {
	sig := testutil.DeterministicSine(1000, 48000, 1, 480)

	mag, err := AnalyzeBlock(sig, 1000, 48000)
	if err != nil {
		t.Fatalf("AnalyzeBlock: %v", err)
	}
	// 10 whole cycles: |X| = N/2.
	if math.Abs(mag-240) > 1e-6 {
		t.Fatalf("AnalyzeBlock = %v, want 240", mag)
	}

	if _, err := AnalyzeBlock(sig, 30000, 48000); err == nil {
		t.Fatal("expected error above Nyquist")
	}
}
