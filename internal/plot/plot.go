// Package plot renders spectra as terminal bar charts.
package plot

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var barChars = []rune(" ▁▂▃▄▅▆▇█")

// Chart holds the styles used for the lower, middle and upper thirds of the
// bars.
type Chart struct {
	Low  lipgloss.Style
	Mid  lipgloss.Style
	High lipgloss.Style
}

// DefaultChart returns a green to red chart.
func DefaultChart() Chart {
	return Chart{
		Low:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00875F", Dark: "#14FFA1"}),
		Mid:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFE65C"}),
		High: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF503C"}),
	}
}

// Bars groups values into log-spaced bands sized to width and renders them
// as a chart of height rows, normalized to the largest band.
func Bars(values []float64, width, height int) string {
	if len(values) == 0 || width < 1 || height < 1 {
		return ""
	}
	cols := width / 2
	if cols < 1 {
		cols = 1
	}
	return DefaultChart().Render(Normalize(Bands(values, cols)), width, height)
}

// Bands averages values into n log-spaced bands, skipping bin 0 (DC). When
// there are no more values than bands, a copy of values is returned.
func Bands(values []float64, n int) []float64 {
	if n < 1 || len(values) == 0 {
		return nil
	}
	if len(values) <= n {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}

	maxBin := len(values)
	out := make([]float64, n)
	for b := range n {
		lo := int(math.Pow(float64(maxBin), float64(b)/float64(n)))
		hi := int(math.Pow(float64(maxBin), float64(b+1)/float64(n)))
		if lo < 1 {
			lo = 1
		}
		if hi <= lo {
			hi = lo + 1
		}
		if hi > maxBin {
			hi = maxBin
		}

		sum := 0.0
		count := 0
		for i := lo; i < hi; i++ {
			sum += values[i]
			count++
		}
		if count > 0 {
			out[b] = sum / float64(count)
		}
	}
	return out
}

// Normalize scales values into [0, 1] against the largest finite value.
// Negative and non-finite entries map to 0.
func Normalize(values []float64) []float64 {
	maxVal := 0.0
	for _, v := range values {
		if v > maxVal && !math.IsInf(v, 1) {
			maxVal = v
		}
	}

	out := make([]float64, len(values))
	if maxVal == 0 {
		return out
	}
	for i, v := range values {
		if v > 0 && !math.IsInf(v, 1) {
			out[i] = v / maxVal
		}
	}
	return out
}

// Render draws levels in [0, 1] as vertical bars filling width columns and
// height rows. Each level gets an equal share of the width.
func (c Chart) Render(levels []float64, width, height int) string {
	if len(levels) == 0 || width < 1 || height < 1 {
		return ""
	}

	cols := len(levels)
	if cols > width {
		cols = width
	}
	colWidth := width / cols
	gap := 1
	if colWidth <= 1 {
		gap = 0
	}

	rows := make([]string, height)
	for row := range height {
		var line strings.Builder
		rowFromBottom := float64(height - 1 - row)
		for b := range cols {
			level := clamp01(levels[b]) * float64(height)
			charIdx := 0
			if level >= rowFromBottom+1 {
				charIdx = len(barChars) - 1
			} else if level > rowFromBottom {
				charIdx = int((level - rowFromBottom) * float64(len(barChars)-1))
			}
			ch := barChars[charIdx]
			for range colWidth - gap {
				line.WriteRune(ch)
			}
			for range gap {
				line.WriteByte(' ')
			}
		}
		rows[row] = c.styleFor(row, height).Render(line.String())
	}
	return strings.Join(rows, "\n")
}

func (c Chart) styleFor(row, height int) lipgloss.Style {
	frac := float64(height-row) / float64(height)
	switch {
	case frac > 0.75:
		return c.High
	case frac > 0.4:
		return c.Mid
	default:
		return c.Low
	}
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
