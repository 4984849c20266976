package buffer

// Buffer is fixed-length sample storage. Besides plain slice access it works
// as a ring: Push overwrites the oldest sample and Unroll reads the contents
// oldest first.
type Buffer struct {
	samples []float64
	head    int // next Push position, the oldest sample once full
}

// New returns a zero-filled Buffer of the given length.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{samples: make([]float64, length)}
}

// Samples returns the underlying slice in storage order.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Push writes x over the oldest sample.
func (b *Buffer) Push(x float64) {
	if len(b.samples) == 0 {
		return
	}
	b.samples[b.head] = x
	b.head++
	if b.head == len(b.samples) {
		b.head = 0
	}
}

// Unroll copies the ring into dst, oldest sample first, and returns the
// number of samples copied.
func (b *Buffer) Unroll(dst []float64) int {
	n := copy(dst, b.samples[b.head:])
	return n + copy(dst[n:], b.samples[:b.head])
}

// Zero clears all samples and rewinds the ring.
func (b *Buffer) Zero() {
	clear(b.samples)
	b.head = 0
}
