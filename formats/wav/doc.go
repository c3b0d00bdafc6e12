// SPDX-License-Identifier: EPL-2.0

// Package wav decodes PCM WAV files into mono engine buffers.
//
// It uses the github.com/go-audio library for robust WAV file handling.
// Multi-channel files are downmixed to mono by averaging channels, and
// integer PCM samples are normalized to [-1, 1] according to their bit
// depth. The decoded buffer carries its native sample rate; resample it
// with synth.Resample before layering it with engine-rate material.
package wav
