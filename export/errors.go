package export

import "errors"

var (
	ErrEmptyBuffer = errors.New("cannot export empty buffer")
)
