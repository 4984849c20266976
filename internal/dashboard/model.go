// Package dashboard is the live spectrum view behind cmd/fftscope.
//
// A tick pulls samples from the current source into a framer. Every full
// frame runs through the selected processor while a meter keeps the mean
// run time of the last runs. The chart shows either the one-sided power
// spectrum or the raw frame.
package dashboard

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cwbudde/fftscope/dsp/buffer"
	"github.com/cwbudde/fftscope/dsp/core"
	"github.com/cwbudde/fftscope/dsp/processor"
	"github.com/cwbudde/fftscope/dsp/signal"
	"github.com/cwbudde/fftscope/dsp/spectrum"
	"github.com/cwbudde/fftscope/internal/meter"
	"github.com/cwbudde/fftscope/internal/plot"
)

const (
	minChartWidth  = 16
	minChartHeight = 4
	chrome         = 8 // non-chart rows in View
)

// Model is the Bubbletea model for the fftscope dashboard.
type Model struct {
	cfg      core.ProcessorConfig
	sources  []Source
	source   int
	data     Data
	procName string
	process  processor.Processor
	framer   *buffer.Framer
	meter    *meter.Meter
	springs  springField
	interval time.Duration

	chunk  []float64
	frame  []float64
	mag    []float64
	frames int
	levels []float64

	width    int
	height   int
	quitting bool
}

// New builds a dashboard for cfg. The square oscillator at a quarter of the
// sample rate is the default source.
func New(cfg core.ProcessorConfig, opts ...Option) (Model, error) {
	s := settings{processor: processor.Default, fps: defaultFPS}
	for _, opt := range opts {
		opt(&s)
	}

	process, err := processor.Lookup(s.processor)
	if err != nil {
		return Model{}, err
	}
	framer, err := buffer.NewFramer(cfg.BlockSize, cfg.HopSize)
	if err != nil {
		return Model{}, err
	}

	square, err := signal.NewOscillator(signal.WaveSquare, cfg.SampleRate/4, cfg.SampleRate)
	if err != nil {
		return Model{}, err
	}
	sine, err := signal.NewOscillator(signal.WaveSine, math.Min(1000, cfg.SampleRate/8), cfg.SampleRate)
	if err != nil {
		return Model{}, err
	}
	sources := []Source{NewOscillatorSource(square), NewOscillatorSource(sine)}
	source := 0
	if s.clip != nil {
		sources = append(sources, NewClipSource(s.clipName, *s.clip))
		source = len(sources) - 1
	}

	perTick := int(cfg.SampleRate) / s.fps
	if perTick < 1 {
		perTick = 1
	}

	return Model{
		cfg:      cfg,
		sources:  sources,
		source:   source,
		data:     s.data,
		procName: processorName(s.processor),
		process:  process,
		framer:   framer,
		meter:    meter.New(meter.DefaultWindow),
		springs:  newSpringField(s.fps),
		interval: time.Second / time.Duration(s.fps),
		chunk:    make([]float64, perTick),
		frame:    make([]float64, cfg.BlockSize),
	}, nil
}

func processorName(name string) string {
	if name == "" {
		return processor.Default
	}
	return name
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.interval), tea.SetWindowTitle("fftscope"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg) {
			m.quitting = true
			return m, tea.Quit
		}
		switch msg.String() {
		case "s":
			m.source = (m.source + 1) % len(m.sources)
			m.restart()
		case "d":
			if m.data == DataFFT {
				m.data = DataRaw
			} else {
				m.data = DataFFT
			}
		case "p":
			name := processor.Next(m.procName)
			if process, err := processor.Lookup(name); err == nil {
				m.procName = name
				m.process = process
				m.meter.Reset()
			}
		}
		return m, nil

	case tickMsg:
		m.advance()
		return m, tickCmd(m.interval)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// restart drops buffered audio and timings after a source change.
func (m *Model) restart() {
	m.framer.Reset()
	m.meter.Reset()
	clear(m.frame)
	m.mag = nil
	m.frames = 0
}

// advance reads one tick of samples, analyses every completed frame and
// moves the chart towards the new levels.
func (m *Model) advance() {
	m.sources[m.source].Read(m.chunk)
	m.framer.Push(m.chunk, m.analyze)
	m.levels = m.springs.step(m.targets(m.columns()))
}

func (m *Model) analyze(frame []float64) {
	copy(m.frame, frame)
	var mag []float64
	m.meter.Time(func() { mag = m.process(frame) })
	m.mag = mag
	m.frames++
}

// targets returns chart levels in [0, 1] for cols columns.
func (m *Model) targets(cols int) []float64 {
	if m.data == DataRaw {
		n := min(cols, len(m.frame))
		out := make([]float64, n)
		for i, x := range m.frame[:n] {
			out[i] = (x + 1) / 2
		}
		return out
	}

	if len(m.mag) == 0 {
		return make([]float64, cols)
	}
	power := spectrum.PowerFromMagnitude(spectrum.OneSided(m.mag))
	return plot.Normalize(plot.Bands(power, cols))
}

func (m Model) chartSize() (width, height int) {
	width = m.width - 4
	if width < minChartWidth {
		width = 76
	}
	height = m.height - chrome
	if height < minChartHeight {
		height = 12
	}
	return width, height
}

func (m Model) columns() int {
	w, _ := m.chartSize()
	return max(w/2, 1)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.chartSize()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + headerStyle.Render("fftscope") + "\n")
	b.WriteString("\n")
	b.WriteString("  " + field("source", m.sources[m.source].Name()) +
		"   " + field("data", m.data.String()) +
		"   " + field("processor", processor.Label(m.procName)) + "\n")
	b.WriteString("  " + field("mean", m.meanText()) +
		"   " + field("frame", fmt.Sprintf("%d @ %.0f Hz", m.cfg.BlockSize, m.cfg.SampleRate)) + "\n")
	b.WriteString("\n")
	if len(m.levels) > 0 {
		b.WriteString(chartStyle.Render(plot.DefaultChart().Render(m.levels, w, h)))
	} else {
		b.WriteString(strings.Repeat("\n", h-1))
	}
	b.WriteString("\n\n")
	b.WriteString("  " + helpStyle.Render(helpText()) + "\n")
	return b.String()
}

func (m Model) meanText() string {
	if m.meter.Count() == 0 {
		return "n/a"
	}
	ms := float64(m.meter.Mean()) / float64(time.Millisecond)
	return fmt.Sprintf("%.3f ms over %d runs", ms, m.meter.Count())
}

func field(label, value string) string {
	return labelStyle.Render(label+" ") + valueStyle.Render(value)
}
