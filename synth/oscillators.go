// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"math/rand/v2"

	"github.com/ik5/retrosfx/utils"
)

// NoiseColor selects the spectral shape of a noise generator.
type NoiseColor string

const (
	NoiseWhite NoiseColor = "white"
	NoiseBrown NoiseColor = "brown"
	NoisePink  NoiseColor = "pink"
)

// Square generates a square wave: sign(sin(2*pi*freq*t)). Output values
// are in {-1, 0, +1}, with 0 appearing only at exact zero crossings.
func Square(freq, duration float64, rate int) Buffer {
	n := sampleCount(duration, rate)
	out := make(Buffer, n)
	for i := range out {
		s := math.Sin(2 * math.Pi * freq * float64(i) / float64(rate))
		switch {
		case s > 0:
			out[i] = 1
		case s < 0:
			out[i] = -1
		}
	}
	return out
}

// Pulse generates a pulse wave with the given duty cycle. The duty
// cycle is clamped to (0.01, 0.99) so the output never degenerates to a
// constant level. A duty of 0.5 is a square wave.
func Pulse(freq, duration, duty float64, rate int) Buffer {
	duty = utils.Clamp(duty, 0.01, 0.99)
	n := sampleCount(duration, rate)
	out := make(Buffer, n)
	for i := range out {
		phase := math.Mod(freq*float64(i)/float64(rate), 1.0)
		if phase < duty {
			out[i] = 1
		} else {
			out[i] = -1
		}
	}
	return out
}

// Triangle generates a triangle wave, continuous and symmetric about
// zero.
func Triangle(freq, duration float64, rate int) Buffer {
	n := sampleCount(duration, rate)
	out := make(Buffer, n)
	for i := range out {
		phase := math.Mod(freq*float64(i)/float64(rate), 1.0)
		out[i] = 2.0*math.Abs(2.0*(phase-0.5)) - 1.0
	}
	return out
}

// Sawtooth generates a sawtooth wave ramping from -1 to +1 once per
// cycle.
func Sawtooth(freq, duration float64, rate int) Buffer {
	n := sampleCount(duration, rate)
	out := make(Buffer, n)
	for i := range out {
		phase := math.Mod(freq*float64(i)/float64(rate), 1.0)
		out[i] = 2.0*phase - 1.0
	}
	return out
}

// Sine generates a pure sinusoid.
func Sine(freq, duration float64, rate int) Buffer {
	n := sampleCount(duration, rate)
	out := make(Buffer, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) / float64(rate))
	}
	return out
}

// WhiteNoise generates uniformly distributed noise in [-1, 1].
func WhiteNoise(duration float64, rate int) Buffer {
	n := sampleCount(duration, rate)
	out := make(Buffer, n)
	for i := range out {
		out[i] = rand.Float64()*2 - 1
	}
	return out
}

// BrownNoise generates Brownian noise: a random walk over white noise,
// DC offset removed and peak normalized. The spectrum falls off as
// 1/f², giving a deep rumble.
func BrownNoise(duration float64, rate int) Buffer {
	n := sampleCount(duration, rate)
	out := make(Buffer, n)
	sum := 0.0
	for i := range out {
		sum += rand.NormFloat64()
		out[i] = sum
	}
	removeDCAndNormalize(out)
	return out
}

// PinkNoise generates 1/f noise using a Voss-McCartney style update
// schedule: row j of sixteen independent random rows is re-drawn every
// 2^j samples and each output sample is the running row sum plus a
// fresh random value. DC offset removed and peak normalized.
func PinkNoise(duration float64, rate int) Buffer {
	const numRows = 16

	n := sampleCount(duration, rate)
	out := make(Buffer, n)

	var rows [numRows]float64
	runningSum := 0.0

	for i := range out {
		for j := 0; j < numRows; j++ {
			if i%(1<<j) == 0 {
				runningSum -= rows[j]
				rows[j] = rand.NormFloat64()
				runningSum += rows[j]
			}
		}
		out[i] = runningSum + rand.NormFloat64()
	}

	removeDCAndNormalize(out)
	return out
}

// Noise generates noise of the named color. Unrecognized colors fall
// back to white.
func Noise(duration float64, color NoiseColor, rate int) Buffer {
	switch color {
	case NoiseBrown:
		return BrownNoise(duration, rate)
	case NoisePink:
		return PinkNoise(duration, rate)
	default:
		return WhiteNoise(duration, rate)
	}
}

// removeDCAndNormalize subtracts the mean and scales the buffer so its
// peak magnitude is 1. Silence is left untouched.
func removeDCAndNormalize(buf Buffer) {
	if len(buf) == 0 {
		return
	}

	mean := 0.0
	for _, v := range buf {
		mean += v
	}
	mean /= float64(len(buf))
	for i := range buf {
		buf[i] -= mean
	}

	peak := buf.Peak()
	if peak == 0 {
		return
	}
	for i := range buf {
		buf[i] /= peak
	}
}
