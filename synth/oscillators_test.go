// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"testing"

	"github.com/ik5/retrosfx/internal/synthtest"
)

const testRate = 22050

func TestOscillatorLengths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		gen  func() Buffer
	}{
		{
			name: "square",
			gen:  func() Buffer { return Square(440, 0.3, testRate) },
		},
		{
			name: "pulse",
			gen:  func() Buffer { return Pulse(440, 0.3, 0.25, testRate) },
		},
		{
			name: "triangle",
			gen:  func() Buffer { return Triangle(440, 0.3, testRate) },
		},
		{
			name: "sawtooth",
			gen:  func() Buffer { return Sawtooth(440, 0.3, testRate) },
		},
		{
			name: "sine",
			gen:  func() Buffer { return Sine(440, 0.3, testRate) },
		},
		{
			name: "white noise",
			gen:  func() Buffer { return WhiteNoise(0.3, testRate) },
		},
		{
			name: "brown noise",
			gen:  func() Buffer { return BrownNoise(0.3, testRate) },
		},
		{
			name: "pink noise",
			gen:  func() Buffer { return PinkNoise(0.3, testRate) },
		},
	}

	wantLen := int(0.3 * testRate)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := tt.gen()
			if len(buf) != wantLen {
				t.Fatalf("len = %d, want %d", len(buf), wantLen)
			}
			synthtest.AssertInBounds(t, buf, 1.0)
		})
	}
}

func TestOscillatorEmptyOnNonPositiveDuration(t *testing.T) {
	t.Parallel()

	if got := Square(440, 0, testRate); len(got) != 0 {
		t.Errorf("zero duration square has %d samples", len(got))
	}
	if got := WhiteNoise(-0.5, testRate); len(got) != 0 {
		t.Errorf("negative duration noise has %d samples", len(got))
	}
}

func TestSquareValues(t *testing.T) {
	t.Parallel()

	buf := Square(440, 0.1, testRate)
	for i, v := range buf {
		if v != 1 && v != -1 && v != 0 {
			t.Fatalf("sample %d = %v, want one of -1, 0, 1", i, v)
		}
	}

	// A 440 Hz square over 0.1 s must spend time on both rails.
	var pos, neg bool
	for _, v := range buf {
		if v == 1 {
			pos = true
		}
		if v == -1 {
			neg = true
		}
	}
	if !pos || !neg {
		t.Errorf("square wave missing a rail: pos=%v neg=%v", pos, neg)
	}
}

func TestPulseDutyCycle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duty     float64
		wantHigh float64 // expected high fraction after clamping
	}{
		{
			name:     "quarter duty",
			duty:     0.25,
			wantHigh: 0.25,
		},
		{
			name:     "square duty",
			duty:     0.5,
			wantHigh: 0.5,
		},
		{
			name:     "clamped low",
			duty:     0,
			wantHigh: 0.01,
		},
		{
			name:     "clamped high",
			duty:     1,
			wantHigh: 0.99,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := Pulse(100, 1.0, tt.duty, testRate)

			high := 0
			for _, v := range buf {
				if v == 1 {
					high++
				}
			}
			frac := float64(high) / float64(len(buf))
			synthtest.AssertClose(t, frac, tt.wantHigh, 0.02, "high fraction")
		})
	}
}

func TestSineIsPure(t *testing.T) {
	t.Parallel()

	buf := Sine(440, 0.1, testRate)
	for i := range buf {
		want := math.Sin(2 * math.Pi * 440 * float64(i) / testRate)
		if math.Abs(buf[i]-want) > 1e-12 {
			t.Fatalf("sample %d = %v, want %v", i, buf[i], want)
		}
	}
}

func TestNoiseNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		gen  func() Buffer
	}{
		{
			name: "brown",
			gen:  func() Buffer { return BrownNoise(0.5, testRate) },
		},
		{
			name: "pink",
			gen:  func() Buffer { return PinkNoise(0.5, testRate) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := tt.gen()
			synthtest.AssertClose(t, buf.Peak(), 1.0, 1e-9, "peak after normalization")

			mean := 0.0
			for _, v := range buf {
				mean += v
			}
			mean /= float64(len(buf))
			synthtest.AssertClose(t, mean, 0, 1e-9, "mean after DC removal")
		})
	}
}

func TestNoiseColorDispatch(t *testing.T) {
	t.Parallel()

	for _, color := range []NoiseColor{NoiseWhite, NoiseBrown, NoisePink, "unknown"} {
		buf := Noise(0.1, color, testRate)
		if len(buf) != int(0.1*testRate) {
			t.Errorf("color %q: len = %d", color, len(buf))
		}
	}
}
