// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"
	"testing"

	"github.com/ik5/retrosfx/internal/synthtest"
	"github.com/ik5/retrosfx/spectrum"
	"github.com/ik5/retrosfx/synth"
)

const testRate = 22050

// twoTone mixes a low and a high sine at equal amplitude.
func twoTone(lowHz, highHz float64, duration float64) synth.Buffer {
	low := synth.Sine(lowHz, duration, testRate)
	high := synth.Sine(highHz, duration, testRate)
	out := make(synth.Buffer, len(low))
	for i := range out {
		out[i] = 0.5*low[i] + 0.5*high[i]
	}
	return out
}

func TestLowpassKeepsLowTone(t *testing.T) {
	t.Parallel()

	in := twoTone(220, 4000, 0.5)
	out := Lowpass(in, 1000, testRate)

	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}

	peakFreq, err := spectrum.PeakFrequency(out, testRate)
	if err != nil {
		t.Fatalf("spectrum: %v", err)
	}
	synthtest.AssertClose(t, peakFreq, 220, 10, "dominant frequency")
}

func TestHighpassKeepsHighTone(t *testing.T) {
	t.Parallel()

	in := twoTone(220, 4000, 0.5)
	out := Highpass(in, 1000, testRate)

	peakFreq, err := spectrum.PeakFrequency(out, testRate)
	if err != nil {
		t.Fatalf("spectrum: %v", err)
	}
	synthtest.AssertClose(t, peakFreq, 4000, 10, "dominant frequency")
}

func TestLowpassAttenuatesStopband(t *testing.T) {
	t.Parallel()

	// A pure tone two octaves above cutoff loses most of its energy.
	in := synth.Sine(4000, 0.5, testRate)
	out := Lowpass(in, 1000, testRate)

	ratio := synth.Buffer(out).Peak() / in.Peak()
	if ratio > 0.1 {
		t.Errorf("stopband peak ratio = %v, want under 0.1", ratio)
	}
}

func TestLowpassPassbandNearUnity(t *testing.T) {
	t.Parallel()

	in := synth.Sine(220, 0.5, testRate)
	out := Lowpass(in, 4000, testRate)

	ratio := synth.Buffer(out).Peak() / in.Peak()
	synthtest.AssertClose(t, ratio, 1.0, 0.05, "passband peak ratio")
}

func TestZeroPhaseShortBufferUnchanged(t *testing.T) {
	t.Parallel()

	in := synth.Buffer{0.1, -0.2, 0.3, -0.4, 0.5}
	out := Lowpass(in, 1000, testRate)

	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("sample %d changed: %v -> %v", i, in[i], out[i])
		}
	}
}

func TestFilterEmptyBuffer(t *testing.T) {
	t.Parallel()

	if out := Lowpass(synth.Buffer{}, 1000, testRate); len(out) != 0 {
		t.Errorf("lowpass: len = %d", len(out))
	}
	if out := Highpass(synth.Buffer{}, 1000, testRate); len(out) != 0 {
		t.Errorf("highpass: len = %d", len(out))
	}
	if out := Resonant(synth.Buffer{}, 1000, 4, testRate); len(out) != 0 {
		t.Errorf("resonant: len = %d", len(out))
	}
}

func TestResonantPassCount(t *testing.T) {
	t.Parallel()

	in := twoTone(220, 4000, 0.3)

	// int(resonance) successive passes: resonance below 1 truncates to
	// zero passes and returns the input as-is.
	none := Resonant(in, 1000, 0.5, testRate)
	for i := range in {
		if none[i] != in[i] {
			t.Fatalf("resonance 0.5 altered sample %d", i)
		}
	}

	// More passes attenuate the stopband further.
	tone := synth.Sine(4000, 0.3, testRate)
	onePass := Resonant(tone, 1000, 1, testRate)
	fourPass := Resonant(tone, 1000, 4, testRate)
	if synth.Buffer(fourPass).Peak() >= synth.Buffer(onePass).Peak() {
		t.Errorf("four passes (%v) not stronger than one (%v)",
			synth.Buffer(fourPass).Peak(), synth.Buffer(onePass).Peak())
	}
}

func TestButterworthDCGain(t *testing.T) {
	t.Parallel()

	// Unit DC passes a lowpass at unity and is blocked by a highpass.
	in := synth.Buffer(synthtest.Constant(2000, 1.0))

	low := Lowpass(in, 1000, testRate)
	synthtest.AssertClose(t, low[1000], 1.0, 1e-6, "lowpass DC gain")

	high := Highpass(in, 1000, testRate)
	if math.Abs(high[1000]) > 1e-6 {
		t.Errorf("highpass DC leak = %v", high[1000])
	}
}
