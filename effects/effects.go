// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/ik5/retrosfx/synth"
	"github.com/ik5/retrosfx/utils"
)

// Bitcrush quantizes every sample to 2^bits discrete levels, the
// signature retro transform. bits is clamped to [1, 16]. Applying the
// same bit depth twice is a no-op: already-quantized values land back
// on their own grid points.
func Bitcrush(buf synth.Buffer, bits int) synth.Buffer {
	bits = utils.ClampInt(bits, 1, 16)
	half := float64(int64(1) << (bits - 1)) // levels / 2

	out := make(synth.Buffer, len(buf))
	for i, v := range buf {
		q := math.Round(v*half) / half
		out[i] = utils.Clamp(q, -1, 1)
	}
	return out
}

// Distortion amplifies the signal by drive, soft-clips it with tanh and
// peak-normalizes the result to 0.9 to bound loudness.
func Distortion(buf synth.Buffer, drive float64) synth.Buffer {
	out := make(synth.Buffer, len(buf))
	for i, v := range buf {
		out[i] = math.Tanh(v * drive)
	}

	peak := out.Peak()
	if peak > 0 {
		for i := range out {
			out[i] = out[i] / peak * 0.9
		}
	}
	return out
}

// RingModulate multiplies the signal sample-wise by a sine oscillator
// at modFreq Hz, producing metallic, inharmonic timbres. The product of
// two bounded signals stays bounded, so no normalization is applied.
func RingModulate(buf synth.Buffer, modFreq float64, rate int) synth.Buffer {
	out := make(synth.Buffer, len(buf))
	for i, v := range buf {
		t := float64(i) / float64(rate)
		out[i] = v * math.Sin(2*math.Pi*modFreq*t)
	}
	return out
}
