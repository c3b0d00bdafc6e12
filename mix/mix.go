// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"fmt"
	"math"

	"github.com/ik5/retrosfx/synth"
)

// Layers combines multiple buffers into one weighted sum. Shorter
// layers are padded with trailing zeros to the longest one. A nil
// weights slice mixes all layers equally at 1/N; otherwise the weight
// count must equal the layer count. When the summed peak exceeds 1.0
// the whole mix is scaled down by that peak — it is never amplified.
// An empty layer list yields an empty buffer.
func Layers(layers []synth.Buffer, weights []float64) (synth.Buffer, error) {
	if len(layers) == 0 {
		return synth.Buffer{}, nil
	}

	if weights != nil && len(weights) != len(layers) {
		return nil, fmt.Errorf("mixing %d layers: %w", len(layers), ErrWeightCount)
	}

	maxLen := 0
	for _, layer := range layers {
		if len(layer) > maxLen {
			maxLen = len(layer)
		}
	}

	equal := 1.0 / float64(len(layers))
	mixed := make(synth.Buffer, maxLen)
	for li, layer := range layers {
		w := equal
		if weights != nil {
			w = weights[li]
		}
		for i, v := range layer {
			mixed[i] += v * w
		}
	}

	if peak := mixed.Peak(); peak > 1.0 {
		for i := range mixed {
			mixed[i] /= peak
		}
	}
	return mixed, nil
}

// Normalize scales the buffer so its peak magnitude equals
// 10^(targetDB/20). Silence is returned unchanged.
func Normalize(buf synth.Buffer, targetDB float64) synth.Buffer {
	out := buf.Clone()

	peak := out.Peak()
	if peak == 0 {
		return out
	}

	scale := math.Pow(10, targetDB/20.0) / peak
	for i := range out {
		out[i] *= scale
	}
	return out
}

// FadeIn ramps the first durationSamples linearly from 0 to full. The
// duration is clamped to the buffer length; non-positive durations are
// a no-op.
func FadeIn(buf synth.Buffer, durationSamples int) synth.Buffer {
	out := buf.Clone()

	if durationSamples > len(out) {
		durationSamples = len(out)
	}
	if durationSamples <= 0 {
		return out
	}

	for i := 0; i < durationSamples; i++ {
		out[i] *= rampAt(i, durationSamples)
	}
	return out
}

// FadeOut ramps the last durationSamples linearly from full to 0,
// with the same clamping as FadeIn.
func FadeOut(buf synth.Buffer, durationSamples int) synth.Buffer {
	out := buf.Clone()

	if durationSamples > len(out) {
		durationSamples = len(out)
	}
	if durationSamples <= 0 {
		return out
	}

	start := len(out) - durationSamples
	for i := 0; i < durationSamples; i++ {
		out[start+i] *= rampAt(durationSamples-1-i, durationSamples)
	}
	return out
}

// rampAt is the linear fade gain at position i of an m-sample ramp,
// 0 at i=0 up to 1 at i=m-1.
func rampAt(i, m int) float64 {
	if m == 1 {
		return 0
	}
	return float64(i) / float64(m-1)
}
