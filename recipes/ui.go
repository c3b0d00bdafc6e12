// SPDX-License-Identifier: EPL-2.0

package recipes

// Interface sounds. Very short, clean, lightly crushed; error and
// success notifications get distinct contours.
var ui = Category{
	Name:        "ui",
	Description: "UI interaction sounds",
	Sounds: []Sound{
		{
			Name: "button_click",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveSquare, Freq: 880, Duration: 0.05},
					Env: &Env{Kind: EnvPercussive, Attack: 0.005, Decay: 0.08},
					FX:  []FX{{Kind: FXBitcrush, Bits: 6}},
				},
			},
		},
		{
			Name: "button_hover",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveSine, Freq: 660, Duration: 0.03},
					Env: &Env{Kind: EnvPercussive, Attack: 0.01, Decay: 0.05},
				},
			},
		},
		{
			Name: "panel_open",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveTriangle, Freq: 330, Duration: 0.2},
					Env: &Env{Kind: EnvADSR, Attack: 0.05, Decay: 0.1, Sustain: 0.5, Release: 0.3},
					FX:  []FX{{Kind: FXPitchSweep, StartFreq: 330, EndFreq: 660}},
				},
			},
		},
		{
			Name: "panel_close",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveTriangle, Freq: 660, Duration: 0.2},
					Env: &Env{Kind: EnvADSR, Attack: 0.05, Decay: 0.1, Sustain: 0.5, Release: 0.3},
					FX:  []FX{{Kind: FXPitchSweep, StartFreq: 660, EndFreq: 330}},
				},
			},
		},
		{
			Name: "notification_error",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveSquare, Freq: 220, Duration: 0.12},
					Env: &Env{Kind: EnvPercussive, Attack: 0.005, Decay: 0.2},
					FX:  []FX{{Kind: FXBitcrush, Bits: 5}},
				},
				{
					Osc: Osc{Wave: WaveSquare, Freq: 185, Duration: 0.16, Offset: 0.12},
					Env: &Env{Kind: EnvPercussive, Attack: 0.005, Decay: 0.25},
					FX:  []FX{{Kind: FXBitcrush, Bits: 5}},
				},
			},
		},
		{
			Name: "notification_success",
			Layers: []Layer{
				{
					Osc: Osc{Wave: WaveSquare, Freq: 523.25, Duration: 0.08},
					Env: &Env{Kind: EnvPercussive, Attack: 0.005, Decay: 0.12},
					FX:  []FX{{Kind: FXBitcrush, Bits: 6}},
				},
				{
					Osc: Osc{Wave: WaveSquare, Freq: 783.99, Duration: 0.14, Offset: 0.07},
					Env: &Env{Kind: EnvPercussive, Attack: 0.005, Decay: 0.2},
					FX:  []FX{{Kind: FXBitcrush, Bits: 6}},
				},
			},
		},
	},
}
