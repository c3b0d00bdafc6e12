// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/retrosfx/synth"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type Decoder struct{}

// Decode reads a complete MP3 stream and returns its samples as a mono
// buffer together with the stream's native sample rate.
func (Decoder) Decode(r io.Reader) (synth.Buffer, int, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, 0, fmt.Errorf("opening mp3: %w", err)
	}
	return decodeAll(dec)
}

func decodeAll(dec mp3Reader) (synth.Buffer, int, error) {
	// go-mp3 emits 16-bit little-endian PCM, stereo interleaved:
	// 4 bytes per frame
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, 0, fmt.Errorf("decoding mp3: %w", err)
	}

	frames := len(raw) / 4
	buf := make(synth.Buffer, frames)
	for f := 0; f < frames; f++ {
		left := int16(binary.LittleEndian.Uint16(raw[f*4 : f*4+2]))
		right := int16(binary.LittleEndian.Uint16(raw[f*4+2 : f*4+4]))
		buf[f] = (float64(left) + float64(right)) / 2 / 32768.0
	}

	return buf, dec.SampleRate(), nil
}
