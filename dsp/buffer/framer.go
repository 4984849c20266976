package buffer

import "fmt"

// Framer collects pushed samples in a ring and emits the latest size samples
// every hop samples once the ring has filled. With hop < size consecutive
// frames overlap by size-hop samples.
type Framer struct {
	size     int
	hop      int
	ring     *Buffer
	frame    *Buffer
	filled   int
	sinceHop int
}

// NewFramer creates a Framer. size and hop must be > 0 and hop <= size.
func NewFramer(size, hop int) (*Framer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("framer size must be > 0: %d", size)
	}
	if hop <= 0 || hop > size {
		return nil, fmt.Errorf("framer hop must be in [1, %d]: %d", size, hop)
	}
	return &Framer{
		size:  size,
		hop:   hop,
		ring:  New(size),
		frame: New(size),
	}, nil
}

// Size returns the frame length.
func (f *Framer) Size() int { return f.size }

// Hop returns the number of samples between two frames.
func (f *Framer) Hop() int { return f.hop }

// Push appends samples and calls emit for every completed frame, oldest
// sample first. The frame slice is reused and only valid during emit.
// Push returns the number of frames emitted.
func (f *Framer) Push(samples []float64, emit func(frame []float64)) int {
	frames := 0
	for _, x := range samples {
		f.ring.Push(x)
		if f.filled < f.size {
			f.filled++
		}

		f.sinceHop++
		if f.filled < f.size || f.sinceHop < f.hop {
			continue
		}
		f.sinceHop = 0

		frame := f.frame.Samples()
		f.ring.Unroll(frame)
		frames++
		if emit != nil {
			emit(frame)
		}
	}
	return frames
}

// Reset drops all buffered samples.
func (f *Framer) Reset() {
	f.ring.Zero()
	f.filled = 0
	f.sinceHop = 0
}
