// SPDX-License-Identifier: EPL-2.0

package recipes

// Queen boss sounds: phase transitions, attacks and the long death.
// Everything here leans on wobble and ring modulation for menace.
var bosses = Category{
	Name:        "bosses",
	Description: "Boss encounter sounds",
	Sounds: []Sound{
		{
			Name: "queen_roar",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveSawtooth, Freq: 110, Duration: 1.2},
					Env: &Env{Kind: EnvADSR, Attack: 0.1, Decay: 0.2, Sustain: 0.8, Release: 0.3},
					FX: []FX{
						{Kind: FXDistortion, Drive: 5},
						{Kind: FXRingMod, ModFreq: 35},
						{Kind: FXLowpass, Cutoff: 1500},
					},
				},
				{
					Osc: Osc{Wave: WaveNoise, Duration: 1.0, Color: "brown"},
					Env: &Env{Kind: EnvWobble, Rate: 6, Depth: 0.6},
				},
			},
			Weights: []float64{0.7, 0.3},
		},
		{
			Name: "queen_phase_shift",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveTriangle, Freq: 220, Duration: 0.8},
					Env: &Env{Kind: EnvSwell, Attack: 0.5},
					FX: []FX{
						{Kind: FXPitchSweep, StartFreq: 220, EndFreq: 880},
						{Kind: FXPhaser, Rate: 2, Depth: 1.0},
					},
				},
			},
		},
		{
			Name: "queen_spit",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WavePulse, Freq: 600, Duration: 0.18, Duty: 0.15},
					Env: &Env{Kind: EnvPercussive, Attack: 0.003, Decay: 0.25},
					FX: []FX{
						{Kind: FXPitchBend, StartPitch: 1.4, EndPitch: 0.6},
						{Kind: FXBitcrush, Bits: 5},
					},
				},
			},
		},
		{
			Name: "queen_summon",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveSine, Freq: 160, Duration: 1.0},
					Env: &Env{Kind: EnvWobble, Rate: 9, Depth: 0.8},
					FX:  []FX{{Kind: FXRingMod, ModFreq: 55}},
				},
				{
					Osc: Osc{Wave: WaveNoise, Duration: 1.0, Color: "pink"},
					Env: &Env{Kind: EnvSwell, Attack: 0.6},
					FX:  []FX{{Kind: FXResonant, Cutoff: 900, Resonance: 4}},
				},
			},
			Weights: []float64{0.6, 0.4},
		},
		{
			Name: "queen_death",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveSawtooth, Freq: 330, Duration: 1.8},
					Env: &Env{Kind: EnvADSR, Attack: 0.02, Decay: 0.4, Sustain: 0.6, Release: 0.5},
					FX: []FX{
						{Kind: FXPitchBend, StartPitch: 1.0, EndPitch: 0.1},
						{Kind: FXDistortion, Drive: 4},
						{Kind: FXBitcrush, Bits: 4},
					},
				},
				{
					Osc: Osc{Wave: WaveNoise, Duration: 1.5, Color: "brown"},
					Env: &Env{Kind: EnvPercussive, Attack: 0.05, Decay: 0.9},
					FX:  []FX{{Kind: FXReverb, Delay: 0.08, Decay: 0.5}},
				},
			},
			Weights: []float64{0.55, 0.45},
		},
	},
}
