// Package wavfile loads WAV audio as mono float64 samples for analysis.
package wavfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// ErrNoSamples is returned for files without PCM frames.
var ErrNoSamples = errors.New("wav file contains no samples")

// Clip is decoded audio mixed down to one channel and scaled to [-1, 1].
type Clip struct {
	Samples    []float64
	SampleRate float64
	Channels   int
	BitDepth   int
}

// Duration returns the clip length in seconds.
func (c Clip) Duration() float64 {
	if c.SampleRate <= 0 {
		return 0
	}
	return float64(len(c.Samples)) / c.SampleRate
}

// Load opens and decodes the WAV file at path.
func Load(path string) (Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return Clip{}, fmt.Errorf("open wav: %w", err)
	}
	defer f.Close()

	clip, err := Decode(f)
	if err != nil {
		return Clip{}, fmt.Errorf("%s: %w", path, err)
	}
	return clip, nil
}

// Decode reads a complete WAV stream from r.
func Decode(r io.ReadSeeker) (Clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return Clip{}, fmt.Errorf("invalid WAV file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Clip{}, fmt.Errorf("reading WAV PCM data: %w", err)
	}

	channels := int(dec.NumChans)
	if channels < 1 {
		return Clip{}, fmt.Errorf("invalid channel count: %d", channels)
	}
	if len(buf.Data) < channels {
		return Clip{}, ErrNoSamples
	}

	return Clip{
		Samples:    mixDown(buf, channels, int(dec.BitDepth)),
		SampleRate: float64(dec.SampleRate),
		Channels:   channels,
		BitDepth:   int(dec.BitDepth),
	}, nil
}

// mixDown averages interleaved channels and scales integer PCM to [-1, 1].
// 8-bit WAV data is unsigned and is re-centred around zero first.
func mixDown(buf *audio.IntBuffer, channels, bitDepth int) []float64 {
	if bitDepth <= 0 {
		bitDepth = 16
	}
	offset := 0
	if bitDepth == 8 {
		offset = 128
	}
	scale := 1 / float64(int64(1)<<(bitDepth-1))

	frames := len(buf.Data) / channels
	out := make([]float64, frames)
	for i := range out {
		sum := 0
		for ch := 0; ch < channels; ch++ {
			sum += buf.Data[i*channels+ch] - offset
		}
		out[i] = float64(sum) / float64(channels) * scale
	}
	return out
}
