// SPDX-License-Identifier: EPL-2.0

package effects

import "github.com/ik5/retrosfx/synth"

// PitchBend warps the time axis of the buffer so its pitch glides
// linearly from startPitch to endPitch (multipliers of the original,
// 0.5 = octave down, 2.0 = octave up). The pitch curve is integrated
// and normalized by its mean to produce read positions, then the input
// is resampled at those positions with linear interpolation. Output
// length equals input length.
func PitchBend(buf synth.Buffer, startPitch, endPitch float64) synth.Buffer {
	n := len(buf)
	out := make(synth.Buffer, n)
	if n == 0 {
		return out
	}

	curve := make([]float64, n)
	step := 0.0
	if n > 1 {
		step = (endPitch - startPitch) / float64(n-1)
	}
	mean := 0.0
	for i := range curve {
		curve[i] = startPitch + step*float64(i)
		mean += curve[i]
	}
	mean /= float64(n)
	if mean == 0 {
		copy(out, buf)
		return out
	}

	cum := 0.0
	for i := range out {
		cum += curve[i]
		pos := cum / mean
		if pos < 0 {
			pos = 0
		}
		if pos > float64(n-1) {
			pos = float64(n - 1)
		}

		base := int(pos)
		if base >= n-1 {
			out[i] = buf[n-1]
			continue
		}
		frac := pos - float64(base)
		out[i] = buf[base]*(1-frac) + buf[base+1]*frac
	}
	return out
}

// PitchSweep is a frequency-oriented wrapper around PitchBend: the
// pitch glides from the original down or up by the ratio
// endFreq/startFreq. A non-positive startFreq falls back to a half
// ratio.
//
// The duration and rate parameters are accepted for call compatibility
// with the rest of the chain but are not used; the sweep always spans
// the whole buffer.
func PitchSweep(buf synth.Buffer, startFreq, endFreq, duration float64, rate int) synth.Buffer {
	_ = duration
	_ = rate

	endPitch := 0.5
	if startFreq > 0 {
		endPitch = endFreq / startFreq
	}
	return PitchBend(buf, 1.0, endPitch)
}
