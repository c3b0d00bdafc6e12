// SPDX-License-Identifier: EPL-2.0

// Package effects implements the signal-processing chain of the sound
// engine: bit-depth reduction, Butterworth filtering, comb reverb,
// pitch modulation, distortion, ring modulation and phasing.
//
// Every effect is a pure transform from one buffer to a new buffer.
// Out-of-range knob values are clamped rather than rejected, and all
// effects degrade gracefully on empty or too-short input. Effects that
// interpret frequencies or delays take the sample rate explicitly;
// Reverb assumes the engine default rate, see its documentation.
//
// A typical chain:
//
//	buf := synth.Sawtooth(220, 0.4, 22050)
//	buf = synth.Percussive(buf, 0.01, 0.5)
//	buf = effects.Lowpass(buf, 2000, 22050)
//	buf = effects.Bitcrush(buf, 5)
package effects
