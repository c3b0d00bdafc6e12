// SPDX-License-Identifier: EPL-2.0

package utils

// DownmixInts converts interleaved integer PCM samples to mono float64
// by averaging channels and normalizing by the full-scale value of
// bitDepth. Unknown bit depths normalize as 16-bit.
func DownmixInts(data []int, channels, bitDepth int) []float64 {
	var maxVal float64
	switch bitDepth {
	case 8:
		maxVal = 128.0
	case 16:
		maxVal = 32768.0
	case 24:
		maxVal = 8388608.0
	case 32:
		maxVal = 2147483648.0
	default:
		maxVal = 32768.0
	}

	if channels < 1 {
		channels = 1
	}

	frames := len(data) / channels
	out := make([]float64, frames)
	for f := 0; f < frames; f++ {
		sum := 0.0
		base := f * channels
		for c := 0; c < channels; c++ {
			sum += float64(data[base+c])
		}
		out[f] = sum / float64(channels) / maxVal
	}
	return out
}
