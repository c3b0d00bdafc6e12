// SPDX-License-Identifier: EPL-2.0

package retrosfx

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/retrosfx/export"
	"github.com/ik5/retrosfx/formats/wav"
	"github.com/ik5/retrosfx/recipes"
)

// blip is a minimal deterministic recipe used across the tests here.
var blip = recipes.Sound{
	Name: "blip",
	Layers: []recipes.Layer{
		{
			Osc: recipes.Osc{Wave: recipes.WaveSquare, Freq: 440, Duration: 0.3},
			Env: &recipes.Env{Kind: recipes.EnvPercussive, Attack: 0.01, Decay: 0.4},
			FX:  []recipes.FX{{Kind: recipes.FXBitcrush, Bits: 5}},
		},
	},
}

func TestGenerateSound(t *testing.T) {
	t.Parallel()

	exp := export.New(t.TempDir())

	path, err := GenerateSound(blip, 22050, exp, "")
	if err != nil {
		t.Fatalf("GenerateSound: %v", err)
	}
	if filepath.Base(path) != "blip.wav" {
		t.Errorf("base = %q, want blip.wav", filepath.Base(path))
	}

	fh, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer fh.Close()

	buf, rate, err := wav.Decoder{}.Decode(fh)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	// 0.3 s at 22050 Hz, truncated.
	if len(buf) != 6615 {
		t.Errorf("samples = %d, want 6615", len(buf))
	}
	if rate != 22050 {
		t.Errorf("rate = %d, want 22050", rate)
	}

	// Normalized to -3 dB before the 16-bit write.
	wantPeak := math.Pow(10, -3.0/20)
	peak := 0.0
	for _, v := range buf {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if math.Abs(peak-wantPeak) > 1e-3 {
		t.Errorf("peak = %v, want %v", peak, wantPeak)
	}
}

func TestGenerateSoundSubdir(t *testing.T) {
	t.Parallel()

	exp := export.New(t.TempDir())

	path, err := GenerateSound(blip, 22050, exp, "weapons")
	if err != nil {
		t.Fatalf("GenerateSound: %v", err)
	}

	want := filepath.Join(exp.Root(), "weapons", "blip.wav")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestGenerateCategory(t *testing.T) {
	t.Parallel()

	cat := recipes.Category{
		Name:        "test",
		Description: "fixture sounds",
		Sounds: []recipes.Sound{
			blip,
			{
				Name: "chirp",
				Layers: []recipes.Layer{
					{Osc: recipes.Osc{Wave: recipes.WaveSine, Freq: 880, Duration: 0.1}},
				},
			},
		},
	}

	exp := export.New(t.TempDir())
	paths, err := GenerateCategory(cat, 22050, exp)
	if err != nil {
		t.Fatalf("GenerateCategory: %v", err)
	}

	if len(paths) != 2 {
		t.Fatalf("wrote %d files, want 2", len(paths))
	}
	for _, p := range paths {
		if filepath.Dir(p) != filepath.Join(exp.Root(), "test") {
			t.Errorf("path %q not in the category subdirectory", p)
		}
		if _, err := os.Stat(p); err != nil {
			t.Errorf("stat %q: %v", p, err)
		}
	}
}

func TestGenerateCategoryAbortsOnBadSound(t *testing.T) {
	t.Parallel()

	cat := recipes.Category{
		Name:        "test",
		Description: "fixture sounds",
		Sounds: []recipes.Sound{
			blip,
			{
				Name: "broken",
				Layers: []recipes.Layer{
					{Osc: recipes.Osc{Wave: recipes.WaveSine, Freq: 440, Duration: 0.1}},
				},
				Weights: []float64{0.5, 0.5},
			},
			{
				Name: "never reached",
				Layers: []recipes.Layer{
					{Osc: recipes.Osc{Wave: recipes.WaveSine, Freq: 440, Duration: 0.1}},
				},
			},
		},
	}

	exp := export.New(t.TempDir())
	paths, err := GenerateCategory(cat, 22050, exp)
	if err == nil {
		t.Fatal("expected the weight mismatch to fail the category")
	}
	if len(paths) != 1 {
		t.Errorf("wrote %d files before the failure, want 1", len(paths))
	}
}

func TestRenderCategory(t *testing.T) {
	t.Parallel()

	cat := recipes.Category{
		Name:        "test",
		Description: "fixture sounds",
		Sounds: []recipes.Sound{
			blip,
			{
				Name: "chirp",
				Layers: []recipes.Layer{
					{Osc: recipes.Osc{Wave: recipes.WaveSine, Freq: 880, Duration: 0.1}},
				},
			},
		},
	}

	buffers, err := RenderCategory(cat, 22050)
	if err != nil {
		t.Fatalf("RenderCategory: %v", err)
	}

	// Only the given category's sounds are rendered, keyed by
	// category/sound.
	if len(buffers) != len(cat.Sounds) {
		t.Fatalf("rendered %d sounds, want %d", len(buffers), len(cat.Sounds))
	}
	for _, want := range []string{"test/blip", "test/chirp"} {
		buf, ok := buffers[want]
		if !ok {
			t.Errorf("missing key %q", want)
			continue
		}
		if len(buf) == 0 {
			t.Errorf("%s rendered empty", want)
		}
	}
}

func TestRenderAll(t *testing.T) {
	t.Parallel()

	buffers, err := RenderAll(22050)
	if err != nil {
		t.Fatalf("RenderAll: %v", err)
	}

	total := 0
	for _, cat := range recipes.Categories() {
		total += len(cat.Sounds)
	}
	if len(buffers) != total {
		t.Errorf("rendered %d sounds, want %d", len(buffers), total)
	}

	for name, buf := range buffers {
		if len(buf) == 0 {
			t.Errorf("%s rendered empty", name)
		}
	}
}
