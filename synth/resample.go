// SPDX-License-Identifier: EPL-2.0

package synth

import "github.com/ik5/retrosfx/utils"

// Resample converts buf from srcRate to dstRate using Catmull-Rom cubic
// interpolation. Used to bring imported audio material to the engine's
// sample rate before layering it with synthesized buffers.
func Resample(buf Buffer, srcRate, dstRate int) Buffer {
	if len(buf) == 0 || srcRate <= 0 || dstRate <= 0 {
		return Buffer{}
	}
	if srcRate == dstRate {
		return buf.Clone()
	}

	ratio := float64(srcRate) / float64(dstRate)
	outLen := int(float64(len(buf)) / ratio)
	out := make(Buffer, outLen)

	for i := range out {
		pos := float64(i) * ratio
		base := int(pos)
		frac := pos - float64(base)

		out[i] = utils.CubicInterpolate(
			sampleAt(buf, base-1),
			sampleAt(buf, base),
			sampleAt(buf, base+1),
			sampleAt(buf, base+2),
			frac,
		)
	}
	return out
}

// sampleAt reads buf[i] with edge clamping.
func sampleAt(buf Buffer, i int) float64 {
	if i < 0 {
		i = 0
	}
	if i >= len(buf) {
		i = len(buf) - 1
	}
	return buf[i]
}
