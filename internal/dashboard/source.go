package dashboard

import (
	"fmt"

	"github.com/cwbudde/fftscope/dsp/signal"
	"github.com/cwbudde/fftscope/internal/wavfile"
)

// Source produces the samples fed to the analyser.
type Source interface {
	Name() string
	Read(dst []float64)
}

type oscillatorSource struct {
	osc *signal.Oscillator
}

// NewOscillatorSource wraps osc as a Source.
func NewOscillatorSource(osc *signal.Oscillator) Source {
	return &oscillatorSource{osc: osc}
}

func (s *oscillatorSource) Name() string {
	return fmt.Sprintf("%s %.0f Hz", s.osc.Waveform(), s.osc.Frequency())
}

func (s *oscillatorSource) Read(dst []float64) { s.osc.Read(dst) }

type clipSource struct {
	name    string
	samples []float64
	pos     int
}

// NewClipSource plays clip in a loop. An empty clip yields silence.
func NewClipSource(name string, clip wavfile.Clip) Source {
	return &clipSource{name: name, samples: clip.Samples}
}

func (s *clipSource) Name() string { return s.name }

func (s *clipSource) Read(dst []float64) {
	if len(s.samples) == 0 {
		clear(dst)
		return
	}
	for len(dst) > 0 {
		n := copy(dst, s.samples[s.pos:])
		dst = dst[n:]
		s.pos += n
		if s.pos == len(s.samples) {
			s.pos = 0
		}
	}
}
