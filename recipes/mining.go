// SPDX-License-Identifier: EPL-2.0

package recipes

// Mining loop sounds: drill textures, ore pickups, completion chimes.
var mining = Category{
	Name:        "mining",
	Description: "Mining and resource sounds",
	Sounds: []Sound{
		{
			Name: "drill_grind",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveNoise, Duration: 0.6, Color: "pink"},
					Env: &Env{Kind: EnvWobble, Rate: 20, Depth: 0.4},
					FX: []FX{
						{Kind: FXLowpass, Cutoff: 2200},
						{Kind: FXBitcrush, Bits: 5},
					},
				},
				{
					Osc: Osc{Wave: WaveSawtooth, Freq: 55, Duration: 0.6},
					Env: &Env{Kind: EnvADSR, Attack: 0.05, Decay: 0.1, Sustain: 0.9, Release: 0.1},
				},
			},
			Weights: []float64{0.6, 0.4},
		},
		{
			Name: "rock_crack",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveNoise, Duration: 0.1},
					Env: &Env{Kind: EnvPercussive, Attack: 0.001, Decay: 0.12},
					FX: []FX{
						{Kind: FXLowpass, Cutoff: 4000},
						{Kind: FXDistortion, Drive: 2},
						{Kind: FXBitcrush, Bits: 5},
					},
				},
			},
		},
		{
			Name: "ore_pickup",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveSquare, Freq: 660, Duration: 0.07},
					Env: &Env{Kind: EnvPercussive, Attack: 0.005, Decay: 0.1},
					FX:  []FX{{Kind: FXBitcrush, Bits: 6}},
				},
				{
					Osc: Osc{Wave: WaveSquare, Freq: 990, Duration: 0.07, Offset: 0.06},
					Env: &Env{Kind: EnvPercussive, Attack: 0.005, Decay: 0.1},
					FX:  []FX{{Kind: FXBitcrush, Bits: 6}},
				},
			},
		},
		{
			Name: "rare_find",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveTriangle, Freq: 880, Duration: 0.1},
					Env: &Env{Kind: EnvPercussive, Attack: 0.01, Decay: 0.15},
				},
				{
					Osc: Osc{Wave: WaveTriangle, Freq: 1100, Duration: 0.1, Offset: 0.08},
					Env: &Env{Kind: EnvPercussive, Attack: 0.01, Decay: 0.15},
				},
				{
					Osc: Osc{Wave: WaveTriangle, Freq: 1320, Duration: 0.16, Offset: 0.16},
					Env: &Env{Kind: EnvPercussive, Attack: 0.01, Decay: 0.3},
					FX:  []FX{{Kind: FXReverb, Delay: 0.04, Decay: 0.3}},
				},
			},
		},
		{
			Name: "mining_complete",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveSquare, Freq: 523.25, Duration: 0.1},
					Env: &Env{Kind: EnvPercussive, Attack: 0.01, Decay: 0.2},
					FX:  []FX{{Kind: FXBitcrush, Bits: 6}},
				},
				{
					Osc: Osc{Wave: WaveSquare, Freq: 659.25, Duration: 0.1, Offset: 0.09},
					Env: &Env{Kind: EnvPercussive, Attack: 0.01, Decay: 0.2},
					FX:  []FX{{Kind: FXBitcrush, Bits: 6}},
				},
				{
					Osc: Osc{Wave: WaveSquare, Freq: 783.99, Duration: 0.18, Offset: 0.18},
					Env: &Env{Kind: EnvPercussive, Attack: 0.01, Decay: 0.35},
					FX:  []FX{{Kind: FXBitcrush, Bits: 6}},
				},
			},
		},
	},
}
