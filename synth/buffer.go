// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// Buffer is a finite ordered sequence of mono float64 amplitude samples.
// Values are nominally bounded to [-1.0, 1.0]; intermediate processing
// stages may transiently exceed that range, only the export path
// enforces it by clipping.
type Buffer []float64

// Clone returns an independent copy of b.
func (b Buffer) Clone() Buffer {
	out := make(Buffer, len(b))
	copy(out, b)
	return out
}

// Peak returns the maximum absolute sample value, 0 for an empty buffer.
func (b Buffer) Peak() float64 {
	peak := 0.0
	for _, v := range b {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}

// Silence returns an all-zero buffer of duration seconds at rate.
func Silence(duration float64, rate int) Buffer {
	return make(Buffer, sampleCount(duration, rate))
}

// sampleCount converts a duration to a whole sample count, rounding
// down. Non-positive durations yield zero.
func sampleCount(duration float64, rate int) int {
	if duration <= 0 || rate <= 0 {
		return 0
	}
	return int(duration * float64(rate))
}

// linspace fills dst with evenly spaced values from start to end,
// both endpoints included. A single-element dst receives start.
func linspace(dst []float64, start, end float64) {
	m := len(dst)
	if m == 0 {
		return
	}
	if m == 1 {
		dst[0] = start
		return
	}
	step := (end - start) / float64(m-1)
	for i := range dst {
		dst[i] = start + step*float64(i)
	}
}
