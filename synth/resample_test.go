// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"testing"

	"github.com/ik5/retrosfx/internal/synthtest"
)

func TestResampleLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		inLen   int
		srcRate int
		dstRate int
		wantLen int
	}{
		{
			name:    "downsample 2x",
			inLen:   1000,
			srcRate: 44100,
			dstRate: 22050,
			wantLen: 500,
		},
		{
			name:    "upsample 2x",
			inLen:   1000,
			srcRate: 22050,
			dstRate: 44100,
			wantLen: 2000,
		},
		{
			name:    "48k to 22050",
			inLen:   4800,
			srcRate: 48000,
			dstRate: 22050,
			wantLen: 2205,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := Buffer(synthtest.Sine(tt.srcRate, tt.inLen, 440))
			out := Resample(in, tt.srcRate, tt.dstRate)
			if len(out) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(out), tt.wantLen)
			}
		})
	}
}

func TestResampleSameRate(t *testing.T) {
	t.Parallel()

	in := Buffer{0.1, 0.2, 0.3}
	out := Resample(in, 22050, 22050)

	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}

	out[0] = 9
	if in[0] != 0.1 {
		t.Error("same-rate resample aliases the input buffer")
	}
}

func TestResampleEmptyAndInvalid(t *testing.T) {
	t.Parallel()

	if out := Resample(Buffer{}, 44100, 22050); len(out) != 0 {
		t.Errorf("empty input: len = %d", len(out))
	}
	if out := Resample(Buffer{1, 2}, 0, 22050); len(out) != 0 {
		t.Errorf("zero source rate: len = %d", len(out))
	}
	if out := Resample(Buffer{1, 2}, 44100, -1); len(out) != 0 {
		t.Errorf("negative target rate: len = %d", len(out))
	}
}

func TestResamplePreservesTone(t *testing.T) {
	t.Parallel()

	// A 440 Hz sine at 44100 Hz downsampled 2x should remain a 440 Hz
	// sine at 22050 Hz, well within cubic interpolation error.
	in := Buffer(synthtest.Sine(44100, 44100, 440))
	out := Resample(in, 44100, 22050)

	maxErr := 0.0
	for i := 4; i < len(out)-4; i++ {
		want := math.Sin(2 * math.Pi * 440 * float64(i) / 22050)
		if e := math.Abs(out[i] - want); e > maxErr {
			maxErr = e
		}
	}
	if maxErr > 0.01 {
		t.Errorf("max interpolation error = %v, want under 0.01", maxErr)
	}
}
