// SPDX-License-Identifier: EPL-2.0

package recipes

import (
	"fmt"

	"github.com/ik5/retrosfx/effects"
	"github.com/ik5/retrosfx/mix"
	"github.com/ik5/retrosfx/synth"
)

// defaultTargetDB leaves headroom after the final mix
const defaultTargetDB = -3.0

// Render synthesizes the sound at rate: every layer runs through its
// oscillator, envelope and effect chain, the layers are mixed, and the
// result is peak-normalized to the sound's target level.
func (s Sound) Render(rate int) (synth.Buffer, error) {
	layers := make([]synth.Buffer, 0, len(s.Layers))
	for _, l := range s.Layers {
		layers = append(layers, l.render(rate))
	}

	mixed, err := mix.Layers(layers, s.Weights)
	if err != nil {
		return nil, fmt.Errorf("rendering %q: %w", s.Name, err)
	}

	target := s.TargetDB
	if target == 0 {
		target = defaultTargetDB
	}
	return mix.Normalize(mixed, target), nil
}

func (l Layer) render(rate int) synth.Buffer {
	buf := l.Osc.generate(rate)

	if l.Env != nil {
		buf = l.Env.apply(buf)
	}
	for _, fx := range l.FX {
		buf = fx.apply(buf, rate)
	}

	if l.Osc.Offset > 0 {
		buf = append(synth.Silence(l.Osc.Offset, rate), buf...)
	}
	return buf
}

func (o Osc) generate(rate int) synth.Buffer {
	switch o.Wave {
	case WavePulse:
		duty := o.Duty
		if duty == 0 {
			duty = 0.5
		}
		return synth.Pulse(o.Freq, o.Duration, duty, rate)
	case WaveTriangle:
		return synth.Triangle(o.Freq, o.Duration, rate)
	case WaveSawtooth:
		return synth.Sawtooth(o.Freq, o.Duration, rate)
	case WaveSine:
		return synth.Sine(o.Freq, o.Duration, rate)
	case WaveNoise:
		return synth.Noise(o.Duration, o.Color, rate)
	default:
		return synth.Square(o.Freq, o.Duration, rate)
	}
}

func (e Env) apply(buf synth.Buffer) synth.Buffer {
	switch e.Kind {
	case EnvPercussive:
		return synth.Percussive(buf, e.Attack, e.Decay)
	case EnvSwell:
		return synth.Swell(buf, e.Attack)
	case EnvWobble:
		return synth.Wobble(buf, e.Rate, e.Depth)
	default:
		return synth.ADSR(buf, e.Attack, e.Decay, e.Sustain, e.Release)
	}
}

func (fx FX) apply(buf synth.Buffer, rate int) synth.Buffer {
	switch fx.Kind {
	case FXBitcrush:
		return effects.Bitcrush(buf, fx.Bits)
	case FXLowpass:
		return effects.Lowpass(buf, fx.Cutoff, rate)
	case FXHighpass:
		return effects.Highpass(buf, fx.Cutoff, rate)
	case FXResonant:
		return effects.Resonant(buf, fx.Cutoff, fx.Resonance, rate)
	case FXReverb:
		return effects.Reverb(buf, fx.Delay, fx.Decay)
	case FXPitchBend:
		return effects.PitchBend(buf, fx.StartPitch, fx.EndPitch)
	case FXPitchSweep:
		return effects.PitchSweep(buf, fx.StartFreq, fx.EndFreq, 0, rate)
	case FXDistortion:
		return effects.Distortion(buf, fx.Drive)
	case FXRingMod:
		return effects.RingModulate(buf, fx.ModFreq, rate)
	case FXPhaser:
		return effects.Phaser(buf, fx.Rate, fx.Depth, rate)
	default:
		return buf
	}
}
