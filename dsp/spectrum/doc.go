// Package spectrum turns complex DFT bins into the real-valued views callers
// plot and measure: magnitude, power, phase, one-sided halves, decibels and
// summary statistics.
//
// The reductions run on algo-vecmath kernels. Single-bin evaluation is
// available through [Goertzel] for checking one frequency without a full
// transform.
package spectrum
