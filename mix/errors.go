package mix

import "errors"

var (
	ErrWeightCount = errors.New("weight count must match layer count")
)
