// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"

	"github.com/ik5/retrosfx/utils"
)

// ADSR applies an attack-decay-sustain-release envelope. attack, decay
// and release are fractions of the total buffer duration; sustain is a
// gain level in [0, 1]. Out-of-range fractions are clamped. When the
// three phase fractions sum past 1 the sustain phase would go
// negative, so all three are rescaled proportionally to fit.
func ADSR(buf Buffer, attack, decay, sustain, release float64) Buffer {
	n := len(buf)
	out := make(Buffer, n)
	if n == 0 {
		return out
	}

	attack = utils.Clamp(attack, 0, 1)
	decay = utils.Clamp(decay, 0, 1)
	release = utils.Clamp(release, 0, 1)

	attackSamples := int(float64(n) * attack)
	decaySamples := int(float64(n) * decay)
	releaseSamples := int(float64(n) * release)
	sustainSamples := n - attackSamples - decaySamples - releaseSamples

	if sustainSamples < 0 {
		total := attack + decay + release
		attackSamples = int(float64(n) * attack / total)
		decaySamples = int(float64(n) * decay / total)
		releaseSamples = int(float64(n) * release / total)
		sustainSamples = n - attackSamples - decaySamples - releaseSamples
	}

	env := make([]float64, n)
	idx := 0

	if attackSamples > 0 {
		linspace(env[idx:idx+attackSamples], 0, 1)
		idx += attackSamples
	}
	if decaySamples > 0 {
		linspace(env[idx:idx+decaySamples], 1, sustain)
		idx += decaySamples
	}
	for i := 0; i < sustainSamples; i++ {
		env[idx+i] = sustain
	}
	idx += sustainSamples
	if releaseSamples > 0 {
		linspace(env[idx:idx+releaseSamples], sustain, 0)
	}

	for i := range buf {
		out[i] = buf[i] * env[i]
	}
	return out
}

// Percussive applies a fast linear attack followed by an exponential
// decay exp(-5t), where t runs from 0 to decay over the remainder of
// the buffer. A larger decay value stretches the audible tail. The
// attack fraction is clamped to [0, 1]. Suited to transient sounds:
// shots, hits, impacts.
func Percussive(buf Buffer, attack, decay float64) Buffer {
	n := len(buf)
	out := make(Buffer, n)
	if n == 0 {
		return out
	}

	attackSamples := int(float64(n) * utils.Clamp(attack, 0, 1))
	decaySamples := n - attackSamples

	env := make([]float64, n)
	if attackSamples > 0 {
		linspace(env[:attackSamples], 0, 1)
	}
	if decaySamples > 0 {
		t := make([]float64, decaySamples)
		linspace(t, 0, decay)
		for i, v := range t {
			env[attackSamples+i] = math.Exp(-v * 5)
		}
	}

	for i := range buf {
		out[i] = buf[i] * env[i]
	}
	return out
}

// Swell applies a smooth sine-curve fade-in over the initial attackTime
// fraction of the buffer; the rest passes at unity gain.
func Swell(buf Buffer, attackTime float64) Buffer {
	n := len(buf)
	out := make(Buffer, n)
	copy(out, buf)

	attackSamples := int(float64(n) * attackTime)
	if attackSamples <= 0 {
		return out
	}
	if attackSamples > n {
		attackSamples = n
	}

	t := make([]float64, attackSamples)
	linspace(t, 0, math.Pi/2)
	for i, v := range t {
		out[i] = buf[i] * math.Sin(v)
	}
	return out
}

// Wobble applies continuous LFO amplitude modulation:
// gain = 1 - depth*(1-sin(2*pi*rate*t))/2, with depth in [0, 1].
//
// The sample rate is inferred from the buffer length assuming a
// two-second clip, so the LFO rate is only approximately honored when
// the true duration differs. Callers needing exact modulation timing
// should size their buffers accordingly.
func Wobble(buf Buffer, rateHz, depth float64) Buffer {
	n := len(buf)
	out := make(Buffer, n)
	if n == 0 {
		return out
	}

	approxRate := float64(n) / 2.0

	for i := range buf {
		t := float64(i) / approxRate
		lfo := math.Sin(2 * math.Pi * rateHz * t)
		out[i] = buf[i] * (1.0 - depth*(1.0-lfo)/2.0)
	}
	return out
}
