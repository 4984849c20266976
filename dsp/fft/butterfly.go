package fft

import "math/bits"

// recursive transforms a in place. A second buffer starts as an exact copy
// of a and the two trade source and destination roles at every level.
func recursive(a []complex128) {
	n := len(a)
	if log2(n) > MaxRecursionDepth {
		iterative(a)
		return
	}

	b := make([]complex128, n)
	copy(b, a)
	butterfly(a, b, n, 1)
}

// butterfly writes into dst the combination of the two interleaved
// sub-transforms of src that sit step apart. The sub-transforms are produced
// first by recursing with the roles swapped, once at offset 0 and once at
// offset step. The twiddle angle uses the global n, so no per-level length is
// carried.
func butterfly(dst, src []complex128, n, step int) {
	if step >= n {
		return
	}

	butterfly(src, dst, n, step*2)
	butterfly(src[step:], dst[step:], n, step*2)

	left, right := dst[:n/2], dst[n/2:]
	for i := 0; i < n; i += step * 2 {
		t := twiddle(i, n) * src[i+step]
		left[i/2] = src[i] + t
		right[i/2] = src[i] - t
	}
}

// iterative transforms a in place, bottom-up, after reordering it into
// bit-reversed index order.
func iterative(a []complex128) {
	n := len(a)
	if n <= 1 {
		return
	}

	shift := bits.UintSize - log2(n)
	for i := range a {
		j := int(bits.Reverse(uint(i)) >> shift)
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}

	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		stride := n / size
		for start := 0; start < n; start += size {
			for k := 0; k < half; k++ {
				t := twiddle(2*k*stride, n) * a[start+k+half]
				u := a[start+k]
				a[start+k] = u + t
				a[start+k+half] = u - t
			}
		}
	}
}

// split transforms x in place, allocating the even and odd halves at every
// level.
func split(x []complex128) {
	n := len(x)
	if n <= 1 {
		return
	}

	half := n / 2
	even := make([]complex128, half)
	odd := make([]complex128, half)
	for i := 0; i < half; i++ {
		even[i] = x[2*i]
		odd[i] = x[2*i+1]
	}

	split(even)
	split(odd)

	for k := 0; k < half; k++ {
		t := twiddle(2*k, n) * odd[k]
		x[k] = even[k] + t
		x[k+half] = even[k] - t
	}
}
