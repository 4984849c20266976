package meter

import (
	"testing"
	"time"
)

func TestMeanOverPartialWindow(t *testing.T) {
	m := New(4)
	if m.Mean() != 0 {
		t.Fatalf("empty Mean() = %v, want 0", m.Mean())
	}

	m.Observe(2 * time.Millisecond)
	m.Observe(4 * time.Millisecond)
	if m.Mean() != 3*time.Millisecond {
		t.Fatalf("Mean() = %v, want 3ms", m.Mean())
	}
	if m.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", m.Count())
	}
}

func TestMeanEvictsOldest(t *testing.T) {
	m := New(3)
	for _, ms := range []int{100, 1, 2, 3} {
		m.Observe(time.Duration(ms) * time.Millisecond)
	}
	if m.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", m.Count())
	}
	if m.Mean() != 2*time.Millisecond {
		t.Fatalf("Mean() = %v, want 2ms", m.Mean())
	}
}

func TestReset(t *testing.T) {
	m := New(2)
	m.Observe(time.Second)
	m.Reset()
	if m.Count() != 0 || m.Mean() != 0 {
		t.Fatalf("after Reset Count=%d Mean=%v", m.Count(), m.Mean())
	}
	m.Observe(time.Millisecond)
	if m.Mean() != time.Millisecond {
		t.Fatalf("Mean() = %v, want 1ms", m.Mean())
	}
}

func TestDefaultWindow(t *testing.T) {
	if got := New(0).Window(); got != DefaultWindow {
		t.Fatalf("Window() = %d, want %d", got, DefaultWindow)
	}
}

func TestTimeUsesClock(t *testing.T) {
	m := New(10)
	base := time.Unix(0, 0)
	calls := 0
	m.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * 5 * time.Millisecond)
	}

	ran := false
	d := m.Time(func() { ran = true })
	if !ran {
		t.Fatal("Time did not run fn")
	}
	if d != 5*time.Millisecond || m.Mean() != 5*time.Millisecond {
		t.Fatalf("Time() = %v, Mean() = %v, want 5ms", d, m.Mean())
	}
}
