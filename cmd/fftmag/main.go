// Command fftmag prints the magnitude spectrum of a sample sequence.
//
// Usage:
//
//	fftmag [flags] < samples.txt
//
// Samples come from a WAV file (-wav), a generated test signal (-source) or
// whitespace separated numbers on stdin.
//
// Examples:
//
//	echo 1 0 0 0 | fftmag
//	fftmag -source square -freq 12000 -n 4096 -stats
//	fftmag -wav tone.wav -power -db -plot
//	fftmag -source sine -freq 440 -probe 440
//	fftmag -source noise -bench 200 -processor planned
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/fftscope/dsp/core"
	"github.com/cwbudde/fftscope/dsp/fft"
	"github.com/cwbudde/fftscope/dsp/processor"
	"github.com/cwbudde/fftscope/dsp/signal"
	"github.com/cwbudde/fftscope/dsp/spectrum"
	"github.com/cwbudde/fftscope/internal/meter"
	"github.com/cwbudde/fftscope/internal/plot"
	"github.com/cwbudde/fftscope/internal/wavfile"
)

const dbFloor = -120

type options struct {
	wav       string
	source    string
	freq      float64
	amplitude float64
	samples   int
	seed      int64
	rate      float64
	processor string
	truncate  bool
	power     bool
	db        bool
	stats     bool
	plot      bool
	width     int
	height    int
	probe     float64
	bench     int
	list      bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var o options
	fs := flag.NewFlagSet("fftmag", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.wav, "wav", "", "read samples from a WAV file (mixed to mono)")
	fs.StringVar(&o.source, "source", "", "generate samples: sine, square or noise")
	fs.Float64Var(&o.freq, "freq", 1000, "frequency in Hz for -source sine|square")
	fs.Float64Var(&o.amplitude, "amp", 1, "amplitude for -source")
	fs.IntVar(&o.samples, "n", 1024, "number of samples for -source")
	fs.Int64Var(&o.seed, "seed", 1, "seed for -source noise")
	fs.Float64Var(&o.rate, "rate", 48000, "sample rate in Hz (a WAV file sets its own)")
	fs.StringVar(&o.processor, "processor", processor.Default, "transform implementation (see -list)")
	fs.BoolVar(&o.truncate, "truncate", false, "print only as many bins as input samples")
	fs.BoolVar(&o.power, "power", false, "print power (magnitude squared) instead of magnitude")
	fs.BoolVar(&o.db, "db", false, "print values in dB")
	fs.BoolVar(&o.stats, "stats", false, "print a summary of the one-sided spectrum instead of the table")
	fs.BoolVar(&o.plot, "plot", false, "draw the one-sided spectrum as a bar chart instead of the table")
	fs.IntVar(&o.width, "width", 80, "chart width for -plot")
	fs.IntVar(&o.height, "height", 12, "chart height for -plot")
	fs.Float64Var(&o.probe, "probe", 0, "cross-check the bin nearest this frequency (Hz) with a Goertzel filter")
	fs.IntVar(&o.bench, "bench", 0, "time N runs of the processor and report the mean on stderr")
	fs.BoolVar(&o.list, "list", false, "list available processors")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: fftmag [flags] < samples.txt\n\n")
		fmt.Fprintf(stderr, "Prints the radix-2 FFT magnitude spectrum of a sample sequence.\n")
		fmt.Fprintf(stderr, "Input is zero padded to the next power of two.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  echo 1 0 0 0 | fftmag\n")
		fmt.Fprintf(stderr, "  fftmag -source square -freq 12000 -n 4096 -stats\n")
		fmt.Fprintf(stderr, "  fftmag -wav tone.wav -power -db -plot\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if o.list {
		for _, name := range processor.Names() {
			fmt.Fprintf(stdout, "%s\t%s\n", name, processor.Label(name))
		}
		return 0
	}

	if err := analyze(o, stdin, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func analyze(o options, stdin io.Reader, stdout, stderr io.Writer) error {
	process, err := processor.Lookup(o.processor)
	if err != nil {
		return err
	}

	samples, rate, err := loadSamples(o, stdin)
	if err != nil {
		return err
	}

	mag := process(samples)
	n := fft.NextPowerOfTwo(len(samples))

	if o.bench > 0 {
		m := meter.New(o.bench)
		for range o.bench {
			m.Time(func() { process(samples) })
		}
		fmt.Fprintf(stderr, "%s: mean %v over %d runs (n=%d)\n", processor.Label(o.processor), m.Mean(), m.Count(), n)
	}

	if o.probe > 0 {
		if err := printProbe(stderr, samples, mag, o.probe, rate); err != nil {
			return err
		}
	}

	switch {
	case o.stats:
		return printSummary(stdout, spectrum.Summarize(spectrum.OneSided(mag), rate))
	case o.plot:
		values := spectrum.OneSided(mag)
		if o.power {
			values = spectrum.PowerFromMagnitude(values)
		}
		fmt.Fprintln(stdout, plot.Bars(values, o.width, o.height))
		return nil
	}

	values, header := scale(mag, o.power, o.db)
	if o.truncate && len(values) > len(samples) {
		values = values[:len(samples)]
	}
	return printTable(stdout, values, header, n, rate)
}

// loadSamples returns the input samples and their sample rate.
func loadSamples(o options, stdin io.Reader) ([]float64, float64, error) {
	switch {
	case o.wav != "":
		clip, err := wavfile.Load(o.wav)
		if err != nil {
			return nil, 0, err
		}
		return clip.Samples, clip.SampleRate, nil

	case o.source != "":
		gen := signal.NewGeneratorWithOptions(
			[]core.ProcessorOption{core.WithSampleRate(o.rate)},
			signal.WithSeed(o.seed),
		)
		rate := gen.Config().SampleRate
		var samples []float64
		var err error
		switch o.source {
		case "sine":
			samples, err = gen.Sine(o.freq, o.amplitude, o.samples)
		case "square":
			samples, err = gen.Square(o.freq, o.amplitude, o.samples)
		case "noise":
			samples, err = gen.WhiteNoise(o.amplitude, o.samples)
		default:
			err = fmt.Errorf("unknown source %q (want sine, square or noise)", o.source)
		}
		return samples, rate, err

	default:
		samples, err := readNumbers(stdin)
		return samples, o.rate, err
	}
}

func readNumbers(r io.Reader) ([]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var out []float64
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", len(out)+1, err)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading samples: %w", err)
	}
	return out, nil
}

func scale(mag []float64, power, db bool) ([]float64, string) {
	switch {
	case power && db:
		return spectrum.PowerToDB(spectrum.PowerFromMagnitude(mag), dbFloor), "Power [dB]"
	case power:
		return spectrum.PowerFromMagnitude(mag), "Power"
	case db:
		return spectrum.ToDB(mag, dbFloor), "Magnitude [dB]"
	default:
		return mag, "Magnitude"
	}
}

func printTable(w io.Writer, values []float64, header string, n int, rate float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Bin\tFrequency [Hz]\t%s\n", header); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	for k, v := range values {
		if _, err := fmt.Fprintf(tw, "%d\t%.2f\t%.6g\n", k, spectrum.BinFrequency(k, n, rate), v); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func printSummary(w io.Writer, s spectrum.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := []struct {
		label string
		value string
	}{
		{"FFT length", strconv.Itoa(s.FFTLength)},
		{"Bins (one-sided)", strconv.Itoa(s.Bins)},
		{"Bin width [Hz]", fmt.Sprintf("%.4f", s.BinWidth)},
		{"Peak bin", strconv.Itoa(s.PeakBin)},
		{"Peak frequency [Hz]", fmt.Sprintf("%.2f", s.PeakHz)},
		{"Peak magnitude", fmt.Sprintf("%.6g", s.Peak)},
		{"DC", fmt.Sprintf("%.6g", s.DC)},
		{"Energy", fmt.Sprintf("%.6g", s.Energy)},
		{"Centroid [Hz]", fmt.Sprintf("%.2f", s.Centroid)},
		{"Flatness", fmt.Sprintf("%.4f", s.Flatness)},
		{"Rolloff 85% [Hz]", fmt.Sprintf("%.2f", s.Rolloff)},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", r.label, r.value); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func printProbe(w io.Writer, samples, mag []float64, freq, rate float64) error {
	n := len(mag)
	k := spectrum.NearestBin(freq, n, rate)
	padded := make([]float64, n)
	copy(padded, samples)
	g, err := spectrum.AnalyzeBlock(padded, spectrum.BinFrequency(k, n, rate), rate)
	if err != nil {
		return fmt.Errorf("probe: %w", err)
	}
	fmt.Fprintf(w, "probe %.2f Hz: bin %d (%.2f Hz) fft %.6g goertzel %.6g\n",
		freq, k, spectrum.BinFrequency(k, n, rate), mag[k], g)
	return nil
}
