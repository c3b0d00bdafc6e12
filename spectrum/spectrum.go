// SPDX-License-Identifier: EPL-2.0

package spectrum

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/ik5/retrosfx/synth"
)

var ErrEmptyBuffer = errors.New("cannot analyze empty buffer")

// Magnitudes returns the single-sided magnitude spectrum of buf. The
// signal is Hann windowed and zero padded to the next power of two, so
// the result holds fftSize/2+1 bins; bin k corresponds to frequency
// k*rate/fftSize.
func Magnitudes(buf synth.Buffer) ([]float64, int, error) {
	if len(buf) == 0 {
		return nil, 0, ErrEmptyBuffer
	}

	fftSize := nextPowerOf2(len(buf))
	plan, err := algofft.NewPlanReal32(fftSize)
	if err != nil {
		return nil, 0, fmt.Errorf("creating FFT plan for size %d: %w", fftSize, err)
	}

	input := make([]float32, fftSize)
	for i, v := range buf {
		// Hann window to contain spectral leakage
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(len(buf))))
		input[i] = float32(v * w)
	}

	spectrumLen := fftSize/2 + 1
	freq := make([]complex64, spectrumLen)
	if err := plan.Forward(freq, input); err != nil {
		return nil, 0, fmt.Errorf("forward FFT: %w", err)
	}

	mags := make([]float64, spectrumLen)
	for i, c := range freq {
		mags[i] = cmplx.Abs(complex128(c))
	}
	return mags, fftSize, nil
}

// PeakFrequency estimates the dominant frequency of buf in Hz by
// locating the strongest spectrum bin above DC.
func PeakFrequency(buf synth.Buffer, rate int) (float64, error) {
	mags, fftSize, err := Magnitudes(buf)
	if err != nil {
		return 0, err
	}

	peakBin := 0
	peakMag := 0.0
	for i := 1; i < len(mags); i++ {
		if mags[i] > peakMag {
			peakMag = mags[i]
			peakBin = i
		}
	}

	return float64(peakBin) * float64(rate) / float64(fftSize), nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
