package signal

import (
	"fmt"
	"math"
	"strings"
)

// Waveform selects the oscillator shape.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
)

// String returns the waveform name.
func (w Waveform) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveSquare:
		return "square"
	default:
		return "unknown"
	}
}

// ParseWaveform maps a name to a Waveform.
func ParseWaveform(name string) (Waveform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sine", "sin":
		return WaveSine, nil
	case "square", "sqr":
		return WaveSquare, nil
	default:
		return 0, fmt.Errorf("unknown waveform: %q", name)
	}
}

// Oscillator produces a continuous periodic signal. Phase carries over
// between Read calls, so consecutive blocks join without discontinuity.
type Oscillator struct {
	wave       Waveform
	freq       float64
	sampleRate float64
	amplitude  float64
	phase      float64 // cycles, in [0, 1)
}

// NewOscillator creates an oscillator at freqHz. freqHz must lie in
// [0, sampleRate/2].
func NewOscillator(wave Waveform, freqHz, sampleRate float64) (*Oscillator, error) {
	if wave != WaveSine && wave != WaveSquare {
		return nil, fmt.Errorf("oscillator: unknown waveform %d", wave)
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("oscillator: sample rate must be > 0: %v", sampleRate)
	}
	if freqHz < 0 || freqHz > sampleRate/2 || math.IsNaN(freqHz) {
		return nil, fmt.Errorf("oscillator: frequency must be between 0 and sampleRate/2: %v", freqHz)
	}
	return &Oscillator{
		wave:       wave,
		freq:       freqHz,
		sampleRate: sampleRate,
		amplitude:  1,
	}, nil
}

// Waveform returns the oscillator shape.
func (o *Oscillator) Waveform() Waveform { return o.wave }

// Frequency returns the oscillator frequency in Hz.
func (o *Oscillator) Frequency() float64 { return o.freq }

// SetAmplitude sets the peak amplitude.
func (o *Oscillator) SetAmplitude(a float64) {
	o.amplitude = a
}

// Reset rewinds the phase to zero.
func (o *Oscillator) Reset() {
	o.phase = 0
}

// Read fills dst with the next len(dst) samples.
func (o *Oscillator) Read(dst []float64) {
	inc := o.freq / o.sampleRate
	for i := range dst {
		switch o.wave {
		case WaveSquare:
			if o.phase < 0.5 {
				dst[i] = o.amplitude
			} else {
				dst[i] = -o.amplitude
			}
		default:
			dst[i] = o.amplitude * math.Sin(2*math.Pi*o.phase)
		}

		o.phase += inc
		if o.phase >= 1 {
			o.phase -= math.Floor(o.phase)
		}
	}
}
