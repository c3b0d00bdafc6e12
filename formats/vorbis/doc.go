// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into mono engine buffers
// using github.com/jfreymuth/oggvorbis.
package vorbis
