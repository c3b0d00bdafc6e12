// SPDX-License-Identifier: EPL-2.0

package recipes

// Faction weapon fire. Each faction keeps a recognizable timbre: the
// swarm buzzes, pirates rattle, the sentinels ring clean.
var npcWeapons = Category{
	Name:        "npc_weapons",
	Description: "NPC faction weapon sounds",
	Sounds: []Sound{
		{
			Name: "swarm_stinger",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveSawtooth, Freq: 1400, Duration: 0.07},
					Env: &Env{Kind: EnvPercussive, Attack: 0.002, Decay: 0.15},
					FX: []FX{
						{Kind: FXRingMod, ModFreq: 90},
						{Kind: FXBitcrush, Bits: 5},
					},
				},
			},
		},
		{
			Name: "pirate_slug",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveNoise, Duration: 0.1},
					Env: &Env{Kind: EnvPercussive, Attack: 0.001, Decay: 0.25},
					FX:  []FX{{Kind: FXLowpass, Cutoff: 2500}},
				},
				{
					Osc: Osc{Wave: WaveSquare, Freq: 180, Duration: 0.12},
					Env: &Env{Kind: EnvPercussive, Attack: 0.002, Decay: 0.3},
					FX:  []FX{{Kind: FXDistortion, Drive: 3}},
				},
			},
			Weights: []float64{0.5, 0.5},
		},
		{
			Name: "sentinel_pulse",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveSine, Freq: 880, Duration: 0.12},
					Env: &Env{Kind: EnvPercussive, Attack: 0.01, Decay: 0.3},
					FX:  []FX{{Kind: FXBitcrush, Bits: 7}},
				},
				{
					Osc: Osc{Wave: WaveSine, Freq: 1760, Duration: 0.08},
					Env: &Env{Kind: EnvPercussive, Attack: 0.01, Decay: 0.2},
				},
			},
			Weights: []float64{0.7, 0.3},
		},
		{
			Name: "raider_burst",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WavePulse, Freq: 750, Duration: 0.05, Duty: 0.2},
					Env: &Env{Kind: EnvPercussive, Attack: 0.002, Decay: 0.1},
					FX:  []FX{{Kind: FXBitcrush, Bits: 5}},
				},
				{
					Osc: Osc{Wave: WavePulse, Freq: 700, Duration: 0.05, Duty: 0.2, Offset: 0.06},
					Env: &Env{Kind: EnvPercussive, Attack: 0.002, Decay: 0.1},
					FX:  []FX{{Kind: FXBitcrush, Bits: 5}},
				},
				{
					Osc: Osc{Wave: WavePulse, Freq: 650, Duration: 0.05, Duty: 0.2, Offset: 0.12},
					Env: &Env{Kind: EnvPercussive, Attack: 0.002, Decay: 0.1},
					FX:  []FX{{Kind: FXBitcrush, Bits: 5}},
				},
			},
		},
		{
			Name: "cultist_ray",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveTriangle, Freq: 520, Duration: 0.3},
					Env: &Env{Kind: EnvADSR, Attack: 0.1, Decay: 0.2, Sustain: 0.6, Release: 0.4},
					FX: []FX{
						{Kind: FXPhaser, Rate: 3, Depth: 0.8},
						{Kind: FXBitcrush, Bits: 6},
					},
				},
			},
		},
	},
}
