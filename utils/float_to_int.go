package utils

// Float64ToInt16 clamps x to [-1, 1] and scales it to the signed 16-bit
// PCM range. The fractional part is truncated.
func Float64ToInt16(x float64) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for both extremes to keep the scale symmetric
	return int16(x * 32767.0)
}
