// SPDX-License-Identifier: EPL-2.0

package recipes

// Death and explosion sounds, small pops up to the drawn-out player
// death. Explosions are noise-driven with downward pitch bends.
var destruction = Category{
	Name:        "destruction",
	Description: "Death and explosion sounds",
	Sounds: []Sound{
		{
			Name: "small_pop",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveNoise, Duration: 0.12},
					Env: &Env{Kind: EnvPercussive, Attack: 0.002, Decay: 0.2},
					FX: []FX{
						{Kind: FXLowpass, Cutoff: 3000},
						{Kind: FXBitcrush, Bits: 5},
					},
				},
			},
		},
		{
			Name: "explosion_medium",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveNoise, Duration: 0.4, Color: "brown"},
					Env: &Env{Kind: EnvPercussive, Attack: 0.005, Decay: 0.5},
					FX:  []FX{{Kind: FXDistortion, Drive: 3}},
				},
				{
					Osc: Osc{Wave: WaveSquare, Freq: 90, Duration: 0.35},
					Env: &Env{Kind: EnvPercussive, Attack: 0.005, Decay: 0.4},
					FX:  []FX{{Kind: FXPitchBend, StartPitch: 1.2, EndPitch: 0.4}},
				},
			},
			Weights: []float64{0.6, 0.4},
		},
		{
			Name: "explosion_large",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveNoise, Duration: 0.7, Color: "brown"},
					Env: &Env{Kind: EnvPercussive, Attack: 0.01, Decay: 0.7},
					FX: []FX{
						{Kind: FXDistortion, Drive: 4},
						{Kind: FXReverb, Delay: 0.06, Decay: 0.4},
						{Kind: FXBitcrush, Bits: 5},
					},
				},
				{
					Osc: Osc{Wave: WaveSine, Freq: 60, Duration: 0.6},
					Env: &Env{Kind: EnvPercussive, Attack: 0.01, Decay: 0.6},
					FX:  []FX{{Kind: FXPitchBend, StartPitch: 1.0, EndPitch: 0.3}},
				},
				{
					Osc: Osc{Wave: WaveNoise, Duration: 0.25},
					Env: &Env{Kind: EnvPercussive, Attack: 0.002, Decay: 0.3},
					FX:  []FX{{Kind: FXHighpass, Cutoff: 2800}},
				},
			},
			Weights: []float64{0.5, 0.3, 0.2},
		},
		{
			Name: "swarm_death",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveSawtooth, Freq: 900, Duration: 0.25},
					Env: &Env{Kind: EnvPercussive, Attack: 0.004, Decay: 0.3},
					FX: []FX{
						{Kind: FXPitchBend, StartPitch: 1.5, EndPitch: 0.2},
						{Kind: FXRingMod, ModFreq: 110},
					},
				},
			},
		},
		{
			Name: "player_death",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveSquare, Freq: 440, Duration: 0.9},
					Env: &Env{Kind: EnvADSR, Attack: 0.02, Decay: 0.3, Sustain: 0.5, Release: 0.5},
					FX: []FX{
						{Kind: FXPitchBend, StartPitch: 1.0, EndPitch: 0.15},
						{Kind: FXBitcrush, Bits: 5},
					},
				},
				{
					Osc: Osc{Wave: WaveNoise, Duration: 0.8, Color: "brown"},
					Env: &Env{Kind: EnvSwell, Attack: 0.3},
					FX:  []FX{{Kind: FXLowpass, Cutoff: 1200}},
				},
			},
			Weights: []float64{0.6, 0.4},
		},
	},
}
