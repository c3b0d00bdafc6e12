// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/ik5/retrosfx/synth"
)

// Phaser sweeps a comb filter across the signal: a sine LFO at rateHz
// maps to a target frequency between 200 Hz and 2000 Hz scaled by
// depth, the instantaneous frequency picks a delay length, and each
// sample is mixed with its 0.7-weighted delayed copy. The wet signal is
// cross-mixed with the dry one (dry 1-0.5*depth, wet 0.5*depth) and the
// result is peak-normalized to 0.9.
func Phaser(buf synth.Buffer, rateHz, depth float64, rate int) synth.Buffer {
	n := len(buf)
	out := make(synth.Buffer, n)
	if n == 0 {
		return out
	}

	const (
		minFreq = 200.0
		maxFreq = 2000.0
	)
	center := (minFreq + maxFreq) / 2
	modRange := (maxFreq - minFreq) / 2

	wet := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(rate)
		lfo := math.Sin(2 * math.Pi * rateHz * t)
		freq := center + lfo*modRange*depth
		if freq < 100 {
			freq = 100
		}

		delaySamples := int(float64(rate) / freq)
		if delaySamples > 0 && i >= delaySamples {
			wet[i] = buf[i] + buf[i-delaySamples]*0.7
		}
	}

	dryGain := 1 - depth*0.5
	wetGain := depth * 0.5
	for i := range out {
		out[i] = buf[i]*dryGain + wet[i]*wetGain
	}

	peak := out.Peak()
	if peak > 0 {
		for i := range out {
			out[i] = out[i] / peak * 0.9
		}
	}
	return out
}
