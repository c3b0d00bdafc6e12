// SPDX-License-Identifier: EPL-2.0

package recipes

// Ambient one-shots: wormholes, comets, star pulses. Longer, softer
// material, mostly swell envelopes and filtered noise.
var environment = Category{
	Name:        "environment",
	Description: "Ambient and environmental sounds",
	Sounds: []Sound{
		{
			Name: "wormhole_open",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveSine, Freq: 80, Duration: 1.4},
					Env: &Env{Kind: EnvSwell, Attack: 0.7},
					FX: []FX{
						{Kind: FXPitchSweep, StartFreq: 80, EndFreq: 320},
						{Kind: FXPhaser, Rate: 1.5, Depth: 0.9},
					},
				},
				{
					Osc: Osc{Wave: WaveNoise, Duration: 1.4, Color: "pink"},
					Env: &Env{Kind: EnvSwell, Attack: 0.9},
					FX:  []FX{{Kind: FXResonant, Cutoff: 600, Resonance: 5}},
				},
			},
			Weights: []float64{0.6, 0.4},
		},
		{
			Name: "comet_pass",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveNoise, Duration: 1.0},
					Env: &Env{Kind: EnvADSR, Attack: 0.3, Decay: 0.2, Sustain: 0.6, Release: 0.4},
					FX: []FX{
						{Kind: FXHighpass, Cutoff: 900},
						{Kind: FXPhaser, Rate: 0.8, Depth: 0.7},
					},
				},
			},
		},
		{
			Name: "star_pulse",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveSine, Freq: 440, Duration: 0.6},
					Env: &Env{Kind: EnvWobble, Rate: 4, Depth: 0.7},
					FX:  []FX{{Kind: FXReverb, Delay: 0.07, Decay: 0.4}},
				},
			},
		},
		{
			Name: "nebula_drift",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveNoise, Duration: 1.8, Color: "brown"},
					Env: &Env{Kind: EnvSwell, Attack: 0.5},
					FX:  []FX{{Kind: FXLowpass, Cutoff: 700}},
				},
				{
					Osc: Osc{Wave: WaveSine, Freq: 110, Duration: 1.8},
					Env: &Env{Kind: EnvWobble, Rate: 2, Depth: 0.5},
				},
			},
			Weights: []float64{0.55, 0.45},
		},
		{
			Name: "distress_beacon",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveSine, Freq: 1200, Duration: 0.15},
					Env: &Env{Kind: EnvPercussive, Attack: 0.01, Decay: 0.25},
				},
				{
					Osc: Osc{Wave: WaveSine, Freq: 1200, Duration: 0.15, Offset: 0.3},
					Env: &Env{Kind: EnvPercussive, Attack: 0.01, Decay: 0.25},
				},
				{
					Osc: Osc{Wave: WaveSine, Freq: 1200, Duration: 0.15, Offset: 0.6},
					Env: &Env{Kind: EnvPercussive, Attack: 0.01, Decay: 0.25},
				},
			},
		},
	},
}
