// SPDX-License-Identifier: EPL-2.0

package recipes

// Engine and maneuvering sounds: thruster textures, boost, shield
// toggles.
var movement = Category{
	Name:        "movement",
	Description: "Engine and movement sounds",
	Sounds: []Sound{
		{
			Name: "engine_hum",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveNoise, Duration: 1.0, Color: "pink"},
					Env: &Env{Kind: EnvADSR, Attack: 0.1, Decay: 0.1, Sustain: 0.8, Release: 0.2},
					FX:  []FX{{Kind: FXLowpass, Cutoff: 900}},
				},
				{
					Osc: Osc{Wave: WaveSawtooth, Freq: 65, Duration: 1.0},
					Env: &Env{Kind: EnvWobble, Rate: 12, Depth: 0.3},
				},
			},
			Weights: []float64{0.5, 0.5},
		},
		{
			Name: "boost_ignite",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveNoise, Duration: 0.5, Color: "white"},
					Env: &Env{Kind: EnvPercussive, Attack: 0.02, Decay: 0.5},
					FX: []FX{
						{Kind: FXLowpass, Cutoff: 3500},
						{Kind: FXDistortion, Drive: 2.5},
					},
				},
				{
					Osc: Osc{Wave: WaveSawtooth, Freq: 110, Duration: 0.45},
					Env: &Env{Kind: EnvPercussive, Attack: 0.01, Decay: 0.4},
					FX:  []FX{{Kind: FXPitchSweep, StartFreq: 110, EndFreq: 330}},
				},
			},
			Weights: []float64{0.55, 0.45},
		},
		{
			Name: "shield_up",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveTriangle, Freq: 440, Duration: 0.3},
					Env: &Env{Kind: EnvSwell, Attack: 0.4},
					FX: []FX{
						{Kind: FXPitchSweep, StartFreq: 440, EndFreq: 880},
						{Kind: FXBitcrush, Bits: 6},
					},
				},
			},
		},
		{
			Name: "shield_down",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveTriangle, Freq: 880, Duration: 0.3},
					Env: &Env{Kind: EnvADSR, Attack: 0.02, Decay: 0.1, Sustain: 0.6, Release: 0.4},
					FX: []FX{
						{Kind: FXPitchSweep, StartFreq: 880, EndFreq: 440},
						{Kind: FXBitcrush, Bits: 6},
					},
				},
			},
		},
		{
			Name: "warp_jump",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveSine, Freq: 220, Duration: 0.7},
					Env: &Env{Kind: EnvSwell, Attack: 0.6},
					FX: []FX{
						{Kind: FXPitchSweep, StartFreq: 220, EndFreq: 1760},
						{Kind: FXPhaser, Rate: 4, Depth: 0.8},
					},
				},
				{
					Osc: Osc{Wave: WaveNoise, Duration: 0.2, Offset: 0.6},
					Env: &Env{Kind: EnvPercussive, Attack: 0.002, Decay: 0.3},
					FX:  []FX{{Kind: FXHighpass, Cutoff: 2000}},
				},
			},
			Weights: []float64{0.7, 0.3},
		},
	},
}
