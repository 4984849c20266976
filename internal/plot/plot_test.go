package plot

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestBandsShortInputIsCopied(t *testing.T) {
	in := []float64{1, 2, 3}
	got := Bands(in, 8)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	got[0] = 42
	if in[0] != 1 {
		t.Fatal("Bands must not alias its input")
	}
}

func TestBandsSkipsDC(t *testing.T) {
	values := make([]float64, 513)
	values[0] = 1000
	for i := 1; i < len(values); i++ {
		values[i] = 1
	}
	got := Bands(values, 16)
	if len(got) != 16 {
		t.Fatalf("len = %d, want 16", len(got))
	}
	for i, v := range got {
		if v > 1+1e-12 {
			t.Fatalf("band %d = %v includes the DC bin", i, v)
		}
	}
	if got[15] != 1 {
		t.Fatalf("top band = %v, want 1", got[15])
	}
}

func TestBandsInvalidCount(t *testing.T) {
	if got := Bands([]float64{1, 2}, 0); got != nil {
		t.Fatalf("Bands(n=0) = %v, want nil", got)
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize([]float64{0, 2, 4, -1, math.NaN(), math.Inf(1)})
	want := []float64{0, 0.5, 1, 0, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Normalize()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	for i, v := range Normalize([]float64{0, 0}) {
		if v != 0 {
			t.Fatalf("zero input[%d] = %v", i, v)
		}
	}
}

func TestRenderDimensions(t *testing.T) {
	out := DefaultChart().Render([]float64{0, 0.5, 1, 0.25}, 20, 6)
	if h := lipgloss.Height(out); h != 6 {
		t.Fatalf("height = %d, want 6", h)
	}
	if w := lipgloss.Width(out); w != 20 {
		t.Fatalf("width = %d, want 20", w)
	}
}

func TestRenderFullAndEmptyColumns(t *testing.T) {
	plain := Chart{}
	out := plain.Render([]float64{1, 0}, 2, 3)
	rows := strings.Split(out, "\n")
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	for i, row := range rows {
		r := []rune(row)
		if r[0] != '█' {
			t.Fatalf("row %d column 0 = %q, want full block", i, r[0])
		}
		if r[1] != ' ' {
			t.Fatalf("row %d column 1 = %q, want blank", i, r[1])
		}
	}
}

func TestRenderPartialBlock(t *testing.T) {
	out := Chart{}.Render([]float64{0.5}, 1, 1)
	if out != "▄" {
		t.Fatalf("Render(0.5) = %q, want %q", out, "▄")
	}
}

func TestRenderClampsLevels(t *testing.T) {
	out := Chart{}.Render([]float64{-3, math.NaN(), 7}, 3, 1)
	if out != "  █" {
		t.Fatalf("Render() = %q", out)
	}
}

func TestBarsEmpty(t *testing.T) {
	if got := Bars(nil, 10, 5); got != "" {
		t.Fatalf("Bars(nil) = %q, want empty", got)
	}
	if got := Bars([]float64{1}, 0, 5); got != "" {
		t.Fatalf("Bars(width=0) = %q, want empty", got)
	}
}

func TestBarsShape(t *testing.T) {
	values := make([]float64, 257)
	values[40] = 10
	out := Bars(values, 32, 8)
	if h := lipgloss.Height(out); h != 8 {
		t.Fatalf("height = %d, want 8", h)
	}
	if !strings.ContainsRune(out, '█') {
		t.Fatal("expected the peak band to reach the top")
	}
}
