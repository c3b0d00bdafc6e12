// SPDX-License-Identifier: EPL-2.0

package effects

import "github.com/ik5/retrosfx/synth"

// reverbRate is the sample rate assumed when converting the delay time
// to samples. Echo spacing drifts accordingly for buffers generated at
// another rate.
const reverbRate = 22050

// Reverb adds comb-filter style echo: three feedback taps at 1.0x, 1.5x
// and 2.3x the delay with gains decay, 0.7*decay and 0.5*decay. Each
// tap accumulates recursively, so echoes themselves echo. The result is
// truncated back to the input length, discarding the computed tail.
//
// A delay that converts to zero samples or to at least the buffer
// length returns the input unchanged.
func Reverb(buf synth.Buffer, delay, decay float64) synth.Buffer {
	delaySamples := int(delay * reverbRate)
	if delaySamples <= 0 || delaySamples >= len(buf) {
		return buf.Clone()
	}

	// Extended tail so late echoes have room to build before truncation
	ext := make([]float64, len(buf)+delaySamples*3)
	copy(ext, buf)

	taps := [3]int{
		delaySamples,
		int(float64(delaySamples) * 1.5),
		int(float64(delaySamples) * 2.3),
	}
	gains := [3]float64{decay, decay * 0.7, decay * 0.5}

	for k, tap := range taps {
		g := gains[k]
		for i := tap; i < len(ext); i++ {
			ext[i] += ext[i-tap] * g
		}
	}

	return synth.Buffer(ext[:len(buf)])
}
