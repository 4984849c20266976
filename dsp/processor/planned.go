package processor

import (
	"fmt"
	"sync"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/cwbudde/fftscope/dsp/fft"
	"github.com/cwbudde/fftscope/dsp/spectrum"
)

// Planned runs transforms through precomputed algo-fft plans, one per
// power-of-two size. Plans are created on first use and shared by all
// callers; calls on the same size are serialized.
type Planned struct {
	mu    sync.Mutex
	plans map[int]*sizedPlan
}

type sizedPlan struct {
	mu   sync.Mutex
	plan *algofft.Plan[complex128]
}

var defaultPlanned = NewPlanned()

// NewPlanned returns an empty plan cache.
func NewPlanned() *Planned {
	return &Planned{plans: make(map[int]*sizedPlan)}
}

func (p *Planned) plan(n int) (*sizedPlan, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if sp, ok := p.plans[n]; ok {
		return sp, nil
	}
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("planned fft init size %d: %w", n, err)
	}
	sp := &sizedPlan{plan: plan}
	p.plans[n] = sp
	return sp, nil
}

// Coefficients returns the DFT bins of the zero-padded samples.
func (p *Planned) Coefficients(samples []float64) ([]complex128, error) {
	n := fft.NextPowerOfTwo(len(samples))
	in := make([]complex128, n)
	for i, v := range samples {
		in[i] = complex(v, 0)
	}
	if n == 1 {
		return in, nil
	}

	sp, err := p.plan(n)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, n)
	sp.mu.Lock()
	err = sp.plan.Forward(out, in)
	sp.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("planned fft forward size %d: %w", n, err)
	}
	return out, nil
}

// Magnitude returns the magnitude spectrum of the zero-padded samples. A
// plan failure falls back to the recursive engine, so the result is always
// complete.
func (p *Planned) Magnitude(samples []float64) []float64 {
	bins, err := p.Coefficients(samples)
	if err != nil {
		return fft.Magnitude(samples)
	}
	return spectrum.Magnitude(bins)
}

// Sizes returns the number of cached plans.
func (p *Planned) Sizes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.plans)
}
