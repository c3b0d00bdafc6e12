// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/retrosfx/synth"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type Decoder struct{}

// Decode reads a complete Ogg Vorbis stream and returns its samples as
// a mono buffer together with the stream's native sample rate.
func (Decoder) Decode(r io.Reader) (synth.Buffer, int, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("opening ogg vorbis: %w", err)
	}
	return decodeAll(dec)
}

func decodeAll(dec oggReader) (synth.Buffer, int, error) {
	channels := dec.Channels()
	if channels < 1 {
		channels = 1
	}

	var buf synth.Buffer
	frameBuf := make([]float32, 4096*channels)

	for {
		n, err := dec.Read(frameBuf)
		if n > 0 {
			frames := n / channels
			for f := 0; f < frames; f++ {
				sum := 0.0
				for c := 0; c < channels; c++ {
					sum += float64(frameBuf[f*channels+c])
				}
				buf = append(buf, sum/float64(channels))
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("decoding ogg vorbis: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return buf, dec.SampleRate(), nil
}
