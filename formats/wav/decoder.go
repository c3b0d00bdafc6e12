// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudiowav "github.com/go-audio/wav"

	"github.com/ik5/retrosfx/synth"
	"github.com/ik5/retrosfx/utils"
)

type Decoder struct{}

// Decode reads a complete WAV stream and returns its samples as a mono
// buffer together with the file's native sample rate.
func (Decoder) Decode(r io.Reader) (synth.Buffer, int, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio requires an io.ReadSeeker
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, 0, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := goaudiowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, 0, ErrNotWavFile
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("decoding wav: %w", err)
	}
	if pcm == nil || len(pcm.Data) == 0 {
		return nil, 0, ErrEmptyWavFile
	}

	channels := pcm.Format.NumChannels
	if channels < 1 {
		channels = 1
	}

	buf := synth.Buffer(utils.DownmixInts(pcm.Data, channels, int(dec.BitDepth)))
	return buf, pcm.Format.SampleRate, nil
}
