// SPDX-License-Identifier: EPL-2.0

package recipes

// Player weapon fire, five tiers from the starter burst laser up to
// the plasma lance. Higher tiers layer more strands and crush less.
var weapons = Category{
	Name:        "weapons",
	Description: "Player weapon sounds across upgrade tiers",
	Sounds: []Sound{
		{
			Name: "burst_laser",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WavePulse, Freq: 1000, Duration: 0.09, Duty: 0.3},
					Env: &Env{Kind: EnvPercussive, Attack: 0.002, Decay: 0.09},
					FX:  []FX{{Kind: FXBitcrush, Bits: 6}},
				},
			},
		},
		{
			Name: "dual_laser",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WavePulse, Freq: 950, Duration: 0.06, Duty: 0.25},
					Env: &Env{Kind: EnvPercussive, Attack: 0.002, Decay: 0.06},
					FX:  []FX{{Kind: FXBitcrush, Bits: 6}},
				},
				{
					Osc: Osc{Wave: WavePulse, Freq: 1045, Duration: 0.06, Duty: 0.25, Offset: 0.04},
					Env: &Env{Kind: EnvPercussive, Attack: 0.002, Decay: 0.06},
					FX:  []FX{{Kind: FXBitcrush, Bits: 6}},
				},
			},
			Weights: []float64{0.6, 0.5},
		},
		{
			Name: "scatter_cannon",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveNoise, Duration: 0.14},
					Env: &Env{Kind: EnvPercussive, Attack: 0.003, Decay: 0.3},
					FX: []FX{
						{Kind: FXLowpass, Cutoff: 3500},
						{Kind: FXBitcrush, Bits: 5},
					},
				},
				{
					Osc: Osc{Wave: WaveSquare, Freq: 420, Duration: 0.12},
					Env: &Env{Kind: EnvPercussive, Attack: 0.002, Decay: 0.2},
					FX:  []FX{{Kind: FXDistortion, Drive: 2.5}},
				},
			},
			Weights: []float64{0.6, 0.4},
		},
		{
			Name: "beam_cannon",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveSawtooth, Freq: 660, Duration: 0.25},
					Env: &Env{Kind: EnvADSR, Attack: 0.05, Decay: 0.1, Sustain: 0.7, Release: 0.3},
					FX: []FX{
						{Kind: FXPitchSweep, StartFreq: 660, EndFreq: 880},
						{Kind: FXBitcrush, Bits: 6},
					},
				},
				{
					Osc: Osc{Wave: WaveSine, Freq: 330, Duration: 0.25},
					Env: &Env{Kind: EnvADSR, Attack: 0.05, Decay: 0.1, Sustain: 0.5, Release: 0.3},
				},
			},
			Weights: []float64{0.7, 0.3},
		},
		{
			Name: "plasma_lance",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveSawtooth, Freq: 220, Duration: 0.35},
					Env: &Env{Kind: EnvPercussive, Attack: 0.01, Decay: 0.6},
					FX: []FX{
						{Kind: FXResonant, Cutoff: 1800, Resonance: 3},
						{Kind: FXDistortion, Drive: 4},
						{Kind: FXBitcrush, Bits: 5},
					},
				},
				{
					Osc: Osc{Wave: WaveNoise, Duration: 0.3, Color: "pink"},
					Env: &Env{Kind: EnvPercussive, Attack: 0.005, Decay: 0.4},
					FX:  []FX{{Kind: FXHighpass, Cutoff: 2000}},
				},
			},
			Weights: []float64{0.75, 0.25},
		},
	},
}
