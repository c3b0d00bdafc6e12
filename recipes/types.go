// SPDX-License-Identifier: EPL-2.0

package recipes

import "github.com/ik5/retrosfx/synth"

// Wave selects the oscillator a layer starts from.
type Wave string

const (
	WaveSquare   Wave = "square"
	WavePulse    Wave = "pulse"
	WaveTriangle Wave = "triangle"
	WaveSawtooth Wave = "sawtooth"
	WaveSine     Wave = "sine"
	WaveNoise    Wave = "noise"
)

// Osc describes one oscillator invocation.
type Osc struct {
	Wave     Wave
	Freq     float64 // Hz, ignored for noise
	Duration float64 // seconds
	Duty     float64 // pulse width for WavePulse, 0 means 0.5
	Color    synth.NoiseColor
	Offset   float64 // leading silence in seconds, delays this layer
}

// EnvKind selects the envelope shape applied to a layer.
type EnvKind string

const (
	EnvADSR       EnvKind = "adsr"
	EnvPercussive EnvKind = "percussive"
	EnvSwell      EnvKind = "swell"
	EnvWobble     EnvKind = "wobble"
)

// Env holds envelope parameters; which fields matter depends on Kind.
type Env struct {
	Kind    EnvKind
	Attack  float64
	Decay   float64
	Sustain float64
	Release float64
	Rate    float64 // wobble LFO frequency in Hz
	Depth   float64 // wobble modulation depth
}

// FXKind selects an effect step.
type FXKind string

const (
	FXBitcrush   FXKind = "bitcrush"
	FXLowpass    FXKind = "lowpass"
	FXHighpass   FXKind = "highpass"
	FXResonant   FXKind = "resonant"
	FXReverb     FXKind = "reverb"
	FXPitchBend  FXKind = "pitchbend"
	FXPitchSweep FXKind = "pitchsweep"
	FXDistortion FXKind = "distortion"
	FXRingMod    FXKind = "ringmod"
	FXPhaser     FXKind = "phaser"
)

// FX holds the parameters of one effect step; which fields matter
// depends on Kind.
type FX struct {
	Kind FXKind

	Bits       int     // bitcrush
	Cutoff     float64 // lowpass, highpass, resonant
	Resonance  float64 // resonant
	Delay      float64 // reverb, seconds
	Decay      float64 // reverb
	StartPitch float64 // pitchbend
	EndPitch   float64 // pitchbend
	StartFreq  float64 // pitchsweep
	EndFreq    float64 // pitchsweep
	Drive      float64 // distortion
	ModFreq    float64 // ringmod, Hz
	Rate       float64 // phaser LFO, Hz
	Depth      float64 // phaser
}

// Layer is one synthesized strand of a sound: oscillator, optional
// envelope, then effect steps in order.
type Layer struct {
	Osc Osc
	Env *Env
	FX  []FX
}

// Sound names a complete recipe. Weights, when non-nil, must carry one
// entry per layer; nil mixes layers equally. A zero TargetDB normalizes
// to the -3 dB house default.
type Sound struct {
	Name     string
	Layers   []Layer
	Weights  []float64
	TargetDB float64
}

// Category groups the sounds generated into one output subdirectory.
type Category struct {
	Name        string
	Description string
	Sounds      []Sound
}
