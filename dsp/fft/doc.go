// Package fft computes the magnitude spectrum of real-valued samples with a
// radix-2 Cooley-Tukey transform.
//
// Inputs of any length are accepted. The samples are zero padded to the next
// power of two n (n = 1 for an empty input) and the result always has n
// bins, so callers must not assume the output length matches the input
// length unless [WithTruncate] is given. Bin k holds |X[k]| with
//
//	X[k] = sum_{j=0}^{n-1} x[j] * exp(-2*pi*i*k*j/n)
//
// The transform is total: NaN and Inf samples are not rejected and propagate
// through the arithmetic into the affected bins. Calls share no state and may
// run concurrently.
package fft
