// SPDX-License-Identifier: EPL-2.0

// Package export persists finished buffers as 16-bit mono PCM WAV
// files beneath a configured output root.
//
// The Exporter carries the root path explicitly; there is no package
// level output state. Exporting clips samples to [-1, 1], scales them
// to the signed 16-bit range and writes a canonical WAV container via
// github.com/go-audio/wav, creating intermediate directories as needed:
//
//	exp := export.New("output")
//	path, err := exp.Export(buf, "weapons/laser_1", 22050)
//
// Exporting an empty buffer is the one degenerate input that fails
// instead of degrading, since it would produce a useless file.
package export
