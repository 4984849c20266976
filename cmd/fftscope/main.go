// Command fftscope shows a live magnitude spectrum in the terminal.
//
// Usage:
//
//	fftscope [flags]
//
// Keys: s cycles the source, d toggles fft/raw data, p cycles the
// processor, q quits.
//
// Examples:
//
//	fftscope
//	fftscope -processor iterative -block 2048 -hop 1024
//	fftscope -wav tone.wav -data raw
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cwbudde/fftscope/dsp/core"
	"github.com/cwbudde/fftscope/internal/dashboard"
	"github.com/cwbudde/fftscope/internal/wavfile"
)

func main() {
	defaults := core.DefaultProcessorConfig()
	rate := flag.Float64("rate", defaults.SampleRate, "sample rate in Hz for the oscillators")
	block := flag.Int("block", defaults.BlockSize, "samples per transform")
	hop := flag.Int("hop", defaults.HopSize, "samples between transforms")
	proc := flag.String("processor", "", "initial processor (recursive, iterative, split, planned)")
	data := flag.String("data", "fft", "initial data: fft or raw")
	wavPath := flag.String("wav", "", "loop a WAV file as an extra source")
	fps := flag.Int("fps", 20, "refresh rate")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fftscope [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Live radix-2 FFT spectrum of an oscillator or WAV file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys: s source  d data  p processor  q quit\n")
	}
	flag.Parse()

	kind, err := dashboard.ParseData(*data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	opts := []dashboard.Option{
		dashboard.WithProcessor(*proc),
		dashboard.WithData(kind),
		dashboard.WithFPS(*fps),
	}
	coreOpts := []core.ProcessorOption{
		core.WithSampleRate(*rate),
		core.WithBlockSize(*block),
		core.WithHopSize(*hop),
	}

	if *wavPath != "" {
		clip, err := wavfile.Load(*wavPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		// The clip paces playback at its own rate.
		coreOpts = append(coreOpts, core.WithSampleRate(clip.SampleRate))
		opts = append(opts, dashboard.WithClip(filepath.Base(*wavPath), clip))
	}

	model, err := dashboard.New(core.ApplyProcessorOptions(coreOpts...), opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
