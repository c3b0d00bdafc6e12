// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/ik5/retrosfx/synth"
	"github.com/ik5/retrosfx/utils"
)

// biquad holds second-order filter coefficients in normalized form
// (a0 = 1) plus the steady-state initial conditions used to suppress
// startup transients.
type biquad struct {
	b0, b1, b2 float64
	a1, a2     float64
	zi1, zi2   float64
}

// edge padding length for zero-phase filtering, three times the
// coefficient count of a second-order section
const filtPadLen = 9

// newButterworth designs a second-order Butterworth filter at wn, the
// cutoff as a fraction of the Nyquist frequency, via the bilinear
// transform. highpass selects the stopband orientation.
func newButterworth(wn float64, highpass bool) biquad {
	c := 1 / math.Tan(math.Pi*wn/2)
	norm := 1 / (1 + math.Sqrt2*c + c*c)

	var f biquad
	if highpass {
		f.b0 = c * c * norm
		f.b1 = -2 * f.b0
		f.b2 = f.b0
	} else {
		f.b0 = norm
		f.b1 = 2 * norm
		f.b2 = norm
	}
	f.a1 = 2 * (1 - c*c) * norm
	f.a2 = (1 - math.Sqrt2*c + c*c) * norm

	// Steady-state response to a unit step, transposed direct form II
	g := (f.b0 + f.b1 + f.b2) / (1 + f.a1 + f.a2)
	f.zi2 = f.b2 - f.a2*g
	f.zi1 = f.b1 - f.a1*g + f.zi2
	return f
}

// filter runs a single forward pass with the state initialized to the
// steady-state response for x[0].
func (f biquad) filter(x []float64) []float64 {
	y := make([]float64, len(x))
	if len(x) == 0 {
		return y
	}

	z1 := f.zi1 * x[0]
	z2 := f.zi2 * x[0]
	for i, v := range x {
		w := f.b0*v + z1
		z1 = f.b1*v - f.a1*w + z2
		z2 = f.b2*v - f.a2*w
		y[i] = w
	}
	return y
}

// zeroPhase applies the filter forward and backward so the phase delays
// of the two passes cancel. The signal is extended at both ends by an
// odd reflection before filtering to avoid edge transients. Buffers too
// short to pad are returned unchanged.
func (f biquad) zeroPhase(x []float64) []float64 {
	if len(x) <= filtPadLen {
		out := make([]float64, len(x))
		copy(out, x)
		return out
	}

	ext := oddExtend(x, filtPadLen)
	y := f.filter(ext)
	reverse(y)
	y = f.filter(y)
	reverse(y)

	out := make([]float64, len(x))
	copy(out, y[filtPadLen:filtPadLen+len(x)])
	return out
}

// oddExtend reflects pad samples around both endpoints:
// 2*x[0]-x[k] at the front, 2*x[n-1]-x[n-1-k] at the back.
func oddExtend(x []float64, pad int) []float64 {
	n := len(x)
	ext := make([]float64, n+2*pad)
	for k := 0; k < pad; k++ {
		ext[k] = 2*x[0] - x[pad-k]
		ext[pad+n+k] = 2*x[n-1] - x[n-2-k]
	}
	copy(ext[pad:], x)
	return ext
}

func reverse(x []float64) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}

// normalizedCutoff converts a cutoff in Hz to a fraction of Nyquist,
// clamped away from the unstable extremes.
func normalizedCutoff(cutoffHz float64, rate int) float64 {
	nyquist := float64(rate) / 2.0
	return utils.Clamp(cutoffHz/nyquist, 0.01, 0.99)
}

// Lowpass removes frequencies above cutoffHz with a second-order
// Butterworth filter applied in both directions (zero phase).
func Lowpass(buf synth.Buffer, cutoffHz float64, rate int) synth.Buffer {
	f := newButterworth(normalizedCutoff(cutoffHz, rate), false)
	return f.zeroPhase(buf)
}

// Highpass removes frequencies below cutoffHz with a second-order
// Butterworth filter applied in both directions (zero phase).
func Highpass(buf synth.Buffer, cutoffHz float64, rate int) synth.Buffer {
	f := newButterworth(normalizedCutoff(cutoffHz, rate), true)
	return f.zeroPhase(buf)
}

// Resonant emulates a resonant lowpass by running the same zero-phase
// Butterworth lowpass int(resonance) times in succession, steepening
// the rolloff around the cutoff. resonance is clamped to [0.5, 20];
// values below 1 leave the signal unfiltered.
func Resonant(buf synth.Buffer, cutoffHz, resonance float64, rate int) synth.Buffer {
	resonance = utils.Clamp(resonance, 0.5, 20.0)
	f := newButterworth(normalizedCutoff(cutoffHz, rate), false)

	out := buf.Clone()
	for pass := 0; pass < int(resonance); pass++ {
		out = f.zeroPhase(out)
	}
	return out
}
