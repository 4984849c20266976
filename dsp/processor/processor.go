// Package processor names the interchangeable magnitude-spectrum
// implementations so hosts can select and compare them at run time.
package processor

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cwbudde/fftscope/dsp/fft"
)

// Processor maps samples to a magnitude spectrum of
// fft.NextPowerOfTwo(len(samples)) bins.
type Processor func(samples []float64) []float64

// Default is the processor used when none is named.
const Default = "recursive"

// ErrUnknown is returned by Lookup for unregistered names.
var ErrUnknown = errors.New("unknown processor")

type entry struct {
	label string
	run   Processor
}

var registry = map[string]entry{
	"recursive": {
		label: "Recursive (ping-pong)",
		run:   fft.Magnitude,
	},
	"iterative": {
		label: "Iterative (bit reversal)",
		run:   strategy(fft.StrategyIterative),
	},
	"split": {
		label: "Split radix-2 (allocating)",
		run:   strategy(fft.StrategySplit),
	},
	"planned": {
		label: "algo-fft plan",
		run:   defaultPlanned.Magnitude,
	},
}

func strategy(s fft.Strategy) Processor {
	return func(samples []float64) []float64 {
		return fft.Transform(samples, fft.WithStrategy(s))
	}
}

// Lookup returns the processor registered under name. An empty name selects
// Default.
func Lookup(name string) (Processor, error) {
	if name == "" {
		name = Default
	}
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknown, name, Names())
	}
	return e.run, nil
}

// Names returns the registered processor names, Default first and the rest
// sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		if name != Default {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{Default}, names...)
}

// Label returns the display label for name, or name itself when unknown.
func Label(name string) string {
	if e, ok := registry[name]; ok {
		return e.label
	}
	return name
}

// Next returns the name registered after name in Names order, wrapping
// around.
func Next(name string) string {
	names := Names()
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
