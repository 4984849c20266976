package spectrum

import (
	"math"
	"testing"

	"github.com/cwbudde/fftscope/internal/testutil"
)

func TestMagnitudePowerPhase(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0}

	mag := Magnitude(bins)
	testutil.RequireSliceNearlyEqual(t, mag, []float64{5, math.Sqrt2, 0}, 1e-12)

	pow := Power(bins)
	testutil.RequireSliceNearlyEqual(t, pow, []float64{25, 2, 0}, 1e-12)

	phase := Phase(bins)
	if math.Abs(phase[0]-math.Atan2(4, 3)) > 1e-12 {
		t.Fatalf("Phase[0] = %v, want %v", phase[0], math.Atan2(4, 3))
	}
}

func TestMagnitudeEmpty(t *testing.T) {
	if got := Magnitude(nil); got != nil {
		t.Fatalf("Magnitude(nil) = %v, want nil", got)
	}
	if got := Power([]complex128{}); got != nil {
		t.Fatalf("Power(empty) = %v, want nil", got)
	}
}

func TestNormExtremes(t *testing.T) {
	got := Norm([]complex128{complex(1e-300, 0), complex(-1e200, 0), 3 + 4i})
	want := []float64{1e-300, 1e200, 5}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("Norm[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if got := Norm(nil); len(got) != 0 {
		t.Fatalf("Norm(nil) = %v, want empty", got)
	}
}

func TestMagnitudeFromParts(t *testing.T) {
	dst := make([]float64, 2)
	MagnitudeFromParts(dst, []float64{3, 0}, []float64{4, -2})
	testutil.RequireSliceNearlyEqual(t, dst, []float64{5, 2}, 1e-12)
}

func TestPowerFromMagnitude(t *testing.T) {
	got := PowerFromMagnitude([]float64{2, 0.5, 0})
	testutil.RequireSliceNearlyEqual(t, got, []float64{4, 0.25, 0}, 0)
}

func TestOneSided(t *testing.T) {
	tests := []struct {
		in   []float64
		want int
	}{
		{nil, 0},
		{[]float64{1}, 1},
		{[]float64{1, 2}, 2},
		{[]float64{1, 2, 3, 2}, 3},
		{make([]float64, 4096), 2049},
	}
	for _, tt := range tests {
		if got := OneSided(tt.in); len(got) != tt.want {
			t.Fatalf("len(OneSided(len %d)) = %d, want %d", len(tt.in), len(got), tt.want)
		}
	}
}

func TestBinFrequencyAndNearestBin(t *testing.T) {
	if got := BinFrequency(1, 4096, 48000); math.Abs(got-48000.0/4096) > 1e-12 {
		t.Fatalf("BinFrequency = %v", got)
	}
	if got := BinFrequency(3, 0, 48000); got != 0 {
		t.Fatalf("BinFrequency with n=0 = %v, want 0", got)
	}

	if got := NearestBin(12000, 4096, 48000); got != 1024 {
		t.Fatalf("NearestBin(12000) = %d, want 1024", got)
	}
	if got := NearestBin(-5, 16, 48000); got != 0 {
		t.Fatalf("NearestBin(-5) = %d, want 0", got)
	}
	if got := NearestBin(1e9, 16, 48000); got != 15 {
		t.Fatalf("NearestBin(huge) = %d, want 15", got)
	}
}

func TestToDB(t *testing.T) {
	got := ToDB([]float64{1, 10, 0, math.NaN()}, -120)
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 20, -120, -120}, 1e-12)

	got = PowerToDB([]float64{1, 100, 0}, -90)
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 20, -90}, 1e-12)
}
