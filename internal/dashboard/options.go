package dashboard

import (
	"fmt"

	"github.com/cwbudde/fftscope/internal/wavfile"
)

// Data selects what the chart shows.
type Data int

const (
	// DataFFT plots the one-sided power spectrum, magnitude squared.
	DataFFT Data = iota
	// DataRaw plots the leading samples of the current frame.
	DataRaw
)

func (d Data) String() string {
	if d == DataRaw {
		return "raw"
	}
	return "fft"
}

// ParseData maps "fft" or "raw" to a Data value.
func ParseData(name string) (Data, error) {
	switch name {
	case "fft", "":
		return DataFFT, nil
	case "raw":
		return DataRaw, nil
	default:
		return DataFFT, fmt.Errorf("unknown data %q (want fft or raw)", name)
	}
}

const defaultFPS = 20

// Option configures a Model.
type Option func(*settings)

type settings struct {
	processor string
	data      Data
	fps       int
	clipName  string
	clip      *wavfile.Clip
}

// WithProcessor selects the initial processor by name.
func WithProcessor(name string) Option {
	return func(s *settings) { s.processor = name }
}

// WithData selects the initial chart data.
func WithData(d Data) Option {
	return func(s *settings) { s.data = d }
}

// WithFPS sets the refresh rate. Values <= 0 are ignored.
func WithFPS(fps int) Option {
	return func(s *settings) {
		if fps > 0 {
			s.fps = fps
		}
	}
}

// WithClip adds a looping WAV source and starts on it.
func WithClip(name string, clip wavfile.Clip) Option {
	return func(s *settings) {
		s.clipName = name
		s.clip = &clip
	}
}
