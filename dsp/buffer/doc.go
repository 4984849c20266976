// Package buffer provides reusable sample storage and a Framer that cuts a
// continuous sample stream into fixed-size, possibly overlapping analysis
// frames.
package buffer
