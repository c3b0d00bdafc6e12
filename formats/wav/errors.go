package wav

import "errors"

var (
	ErrNotWavFile = errors.New("not a WAV file")
	ErrEmptyWavFile = errors.New("WAV file holds no samples")
)
