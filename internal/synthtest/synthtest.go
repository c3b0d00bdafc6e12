// SPDX-License-Identifier: EPL-2.0

// Package synthtest provides deterministic signal helpers shared by
// the engine's test suites.
package synthtest

import (
	"math"
	"testing"
)

// Sine generates totalSamples of a sine wave at frequency Hz.
func Sine(sampleRate, totalSamples int, frequency float64) []float64 {
	out := make([]float64, totalSamples)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = math.Sin(2 * math.Pi * frequency * t)
	}
	return out
}

// Constant generates totalSamples of a fixed value.
func Constant(totalSamples int, value float64) []float64 {
	out := make([]float64, totalSamples)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ramp generates totalSamples rising linearly from 0 toward 1,
// reaching 1 on the final sample.
func Ramp(totalSamples int) []float64 {
	out := make([]float64, totalSamples)
	if totalSamples == 1 {
		out[0] = 0
		return out
	}
	for i := range out {
		out[i] = float64(i) / float64(totalSamples-1)
	}
	return out
}

// AssertInBounds fails the test when any sample leaves [-limit, limit].
func AssertInBounds(t *testing.T, samples []float64, limit float64) {
	t.Helper()

	for i, v := range samples {
		if math.IsNaN(v) {
			t.Fatalf("sample %d is NaN", i)
		}
		if v < -limit || v > limit {
			t.Fatalf("sample %d = %v, outside [%v, %v]", i, v, -limit, limit)
		}
	}
}

// AssertClose fails the test when got differs from want by more than
// tolerance.
func AssertClose(t *testing.T, got, want, tolerance float64, label string) {
	t.Helper()

	if math.Abs(got-want) > tolerance {
		t.Fatalf("%s = %v, want %v (tolerance %v)", label, got, want, tolerance)
	}
}

// Peak returns the largest absolute sample value.
func Peak(samples []float64) float64 {
	peak := 0.0
	for _, v := range samples {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}
