package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/fftscope/dsp/core"
)

func TestSineLength(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))
	s, err := g.Sine(1000, 1, 64)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
}

func TestGeneratorRejectsEmpty(t *testing.T) {
	g := NewGenerator()
	if _, err := g.Sine(1000, 1, 0); err == nil {
		t.Fatal("Sine: expected error for zero samples")
	}
	if _, err := g.Square(1000, 1, -1); err == nil {
		t.Fatal("Square: expected error for negative samples")
	}
	if _, err := g.WhiteNoise(1, 0); err == nil {
		t.Fatal("WhiteNoise: expected error for zero samples")
	}
	if _, err := g.WhiteNoise(-1, 4); err == nil {
		t.Fatal("WhiteNoise: expected error for negative amplitude")
	}
}

func TestSquareQuarterRate(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))
	s, err := g.Square(12000, 0.5, 8)
	if err != nil {
		t.Fatalf("Square() error = %v", err)
	}
	want := []float64{0.5, 0.5, -0.5, -0.5, 0.5, 0.5, -0.5, -0.5}
	for i := range want {
		if s[i] != want[i] {
			t.Fatalf("s[%d] = %v, want %v", i, s[i], want[i])
		}
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	g1 := NewGeneratorWithOptions(nil, WithSeed(42))
	g2 := NewGeneratorWithOptions(nil, WithSeed(42))
	g3 := NewGeneratorWithOptions(nil, WithSeed(43))

	n1, _ := g1.WhiteNoise(1, 16)
	n2, _ := g2.WhiteNoise(1, 16)
	n3, _ := g3.WhiteNoise(1, 16)

	same := true
	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, n1[i], n2[i])
		}
		if n1[i] != n3[i] {
			same = false
		}
		if math.Abs(n1[i]) > 1 {
			t.Fatalf("noise[%d] = %v out of range", i, n1[i])
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{-0.5, 1.0, -0.25}, 0.5)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out[1] != 0.5 || out[0] != -0.25 {
		t.Fatalf("Normalize = %v", out)
	}

	out, err = Normalize([]float64{0, 0}, 1)
	if err != nil || out[0] != 0 || out[1] != 0 {
		t.Fatalf("Normalize(silence) = %v, %v", out, err)
	}

	if _, err := Normalize(nil, 1); err == nil {
		t.Fatal("expected error for empty input")
	}
	if _, err := Normalize([]float64{1}, -1); err == nil {
		t.Fatal("expected error for negative target")
	}
}
