// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files into mono engine buffers.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// Multi-channel files are downmixed to mono by averaging channels.
package aiff
