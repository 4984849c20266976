// Package meter keeps a moving mean of recent run times.
package meter

import "time"

// DefaultWindow is the number of recent runs averaged by default.
const DefaultWindow = 100

// Meter averages the last Window observed durations. The zero value is not
// usable; call New.
type Meter struct {
	samples []time.Duration
	next    int
	count   int
	sum     time.Duration
	now     func() time.Time
}

// New returns a Meter over the last window durations. A window below 1 uses
// DefaultWindow.
func New(window int) *Meter {
	if window < 1 {
		window = DefaultWindow
	}
	return &Meter{
		samples: make([]time.Duration, window),
		now:     time.Now,
	}
}

// Window returns the number of durations averaged.
func (m *Meter) Window() int { return len(m.samples) }

// Count returns how many durations are currently averaged.
func (m *Meter) Count() int { return m.count }

// Observe records d, evicting the oldest duration once the window is full.
func (m *Meter) Observe(d time.Duration) {
	if m.count == len(m.samples) {
		m.sum -= m.samples[m.next]
	} else {
		m.count++
	}
	m.samples[m.next] = d
	m.sum += d
	m.next = (m.next + 1) % len(m.samples)
}

// Mean returns the average of the recorded durations, or 0 when empty.
func (m *Meter) Mean() time.Duration {
	if m.count == 0 {
		return 0
	}
	return m.sum / time.Duration(m.count)
}

// Reset forgets all recorded durations.
func (m *Meter) Reset() {
	clear(m.samples)
	m.next = 0
	m.count = 0
	m.sum = 0
}

// Time runs fn, records its duration and returns it.
func (m *Meter) Time(fn func()) time.Duration {
	start := m.now()
	fn()
	d := m.now().Sub(start)
	m.Observe(d)
	return d
}
