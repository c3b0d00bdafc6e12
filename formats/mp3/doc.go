// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into mono engine buffers using
// github.com/hajimehoshi/go-mp3. The decoder always emits 16-bit
// stereo frames; both channels are averaged into one.
package mp3
