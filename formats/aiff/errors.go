package aiff

import "errors"

var (
	ErrNotAiffFile = errors.New("not an AIFF file")
	ErrEmptyAiffFile = errors.New("AIFF file holds no samples")
)
