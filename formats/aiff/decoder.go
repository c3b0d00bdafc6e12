// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"

	"github.com/ik5/retrosfx/synth"
	"github.com/ik5/retrosfx/utils"
)

type Decoder struct{}

// Decode reads a complete AIFF stream and returns its samples as a
// mono buffer together with the file's native sample rate.
func (Decoder) Decode(r io.Reader) (synth.Buffer, int, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio requires an io.ReadSeeker
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, 0, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, 0, ErrNotAiffFile
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("decoding aiff: %w", err)
	}
	if pcm == nil || len(pcm.Data) == 0 {
		return nil, 0, ErrEmptyAiffFile
	}

	channels := pcm.Format.NumChannels
	buf := synth.Buffer(utils.DownmixInts(pcm.Data, channels, int(dec.BitDepth)))
	return buf, pcm.Format.SampleRate, nil
}
