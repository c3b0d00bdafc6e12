// SPDX-License-Identifier: EPL-2.0

// Package synth provides the sample buffer type and the waveform
// generators of the sound engine.
//
// All generators produce mono float64 buffers with samples nominally in
// [-1.0, 1.0]. A buffer's length is determined up front by
// duration * sample rate; every transform returns a new buffer and
// leaves its input untouched.
//
// # Oscillators
//
// Periodic waveforms take a frequency, a duration in seconds and a
// sample rate:
//
//	buzz := synth.Square(440, 0.3, 22050)
//	thin := synth.Pulse(880, 0.1, 0.25, 22050)
//
// Noise generators take only duration and rate. Three colors are
// available: white (flat spectrum), brown (1/f², bass heavy) and pink
// (1/f, natural texture):
//
//	rumble := synth.Noise(0.5, synth.NoiseBrown, 22050)
//
// # Envelopes
//
// Envelope functions shape an existing buffer's loudness over time and
// always preserve its length:
//
//	shot := synth.Percussive(buzz, 0.01, 0.4)
//	pad := synth.ADSR(buzz, 0.05, 0.15, 0.6, 0.3)
//
// # Resampling
//
// Resample converts an imported buffer to the engine's sample rate
// using cubic interpolation, so recorded material can be layered with
// synthesized sounds.
package synth
