// SPDX-License-Identifier: EPL-2.0

package recipes

// Hit feedback. Shield hits ring high and clean, hull hits thud low
// with debris noise and heavy crush.
var impacts = Category{
	Name:        "impacts",
	Description: "Shield and hull hit sounds",
	Sounds: []Sound{
		{
			Name: "shield_ping",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveTriangle, Freq: 1600, Duration: 0.1},
					Env: &Env{Kind: EnvPercussive, Attack: 0.002, Decay: 0.2},
				},
				{
					Osc: Osc{Wave: WaveTriangle, Freq: 3200, Duration: 0.1},
					Env: &Env{Kind: EnvPercussive, Attack: 0.002, Decay: 0.15},
				},
				{
					Osc: Osc{Wave: WaveNoise, Duration: 0.08},
					Env: &Env{Kind: EnvPercussive, Attack: 0.001, Decay: 0.1},
					FX:  []FX{{Kind: FXHighpass, Cutoff: 3500}},
				},
			},
			Weights: []float64{0.55, 0.25, 0.2},
		},
		{
			Name: "shield_crackle",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveNoise, Duration: 0.15},
					Env: &Env{Kind: EnvPercussive, Attack: 0.002, Decay: 0.25},
					FX: []FX{
						{Kind: FXHighpass, Cutoff: 2500},
						{Kind: FXRingMod, ModFreq: 1200},
						{Kind: FXBitcrush, Bits: 5},
					},
				},
			},
		},
		{
			Name: "hull_thud",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveSquare, Freq: 280, Duration: 0.08},
					Env: &Env{Kind: EnvPercussive, Attack: 0.002, Decay: 0.15},
				},
				{
					Osc: Osc{Wave: WaveSquare, Freq: 75, Duration: 0.14},
					Env: &Env{Kind: EnvPercussive, Attack: 0.005, Decay: 0.3},
				},
				{
					Osc: Osc{Wave: WaveNoise, Duration: 0.07},
					Env: &Env{Kind: EnvPercussive, Attack: 0.001, Decay: 0.1},
					FX:  []FX{{Kind: FXLowpass, Cutoff: 1800}},
				},
			},
			Weights: []float64{0.4, 0.4, 0.2},
		},
		{
			Name: "hull_crunch",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveSquare, Freq: 180, Duration: 0.16},
					Env: &Env{Kind: EnvPercussive, Attack: 0.003, Decay: 0.35},
					FX: []FX{
						{Kind: FXDistortion, Drive: 3.5},
						{Kind: FXBitcrush, Bits: 4},
					},
				},
				{
					Osc: Osc{Wave: WaveNoise, Duration: 0.12, Color: "brown"},
					Env: &Env{Kind: EnvPercussive, Attack: 0.002, Decay: 0.25},
				},
			},
			Weights: []float64{0.65, 0.35},
		},
		{
			Name: "glancing_hit",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveNoise, Duration: 0.06},
					Env: &Env{Kind: EnvPercussive, Attack: 0.001, Decay: 0.08},
					FX: []FX{
						{Kind: FXHighpass, Cutoff: 1500},
						{Kind: FXBitcrush, Bits: 6},
					},
				},
			},
		},
	},
}
