// SPDX-License-Identifier: EPL-2.0

package export

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/retrosfx/synth"
)

func TestExportEmptyBuffer(t *testing.T) {
	t.Parallel()

	exp := New(t.TempDir())

	_, err := exp.Export(synth.Buffer{}, "nothing", 22050)
	if !errors.Is(err, ErrEmptyBuffer) {
		t.Fatalf("err = %v, want ErrEmptyBuffer", err)
	}
}

func TestExportRoundTrip(t *testing.T) {
	t.Parallel()

	exp := New(t.TempDir())

	buf := synth.Sine(440, 0.1, 22050)
	path, err := exp.Export(buf, "tone", 22050)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	fh, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening exported file: %v", err)
	}
	defer fh.Close()

	dec := gowav.NewDecoder(fh)
	if !dec.IsValidFile() {
		t.Fatal("exported file is not a valid WAV")
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("decoding: %v", err)
	}

	if got := len(pcm.Data); got != len(buf) {
		t.Errorf("sample count = %d, want %d", got, len(buf))
	}
	if pcm.Format.NumChannels != 1 {
		t.Errorf("channels = %d, want 1", pcm.Format.NumChannels)
	}
	if pcm.Format.SampleRate != 22050 {
		t.Errorf("sample rate = %d, want 22050", pcm.Format.SampleRate)
	}
	if dec.BitDepth != 16 {
		t.Errorf("bit depth = %d, want 16", dec.BitDepth)
	}
}

func TestExportAppendsExtension(t *testing.T) {
	t.Parallel()

	exp := New(t.TempDir())
	buf := synth.Sine(440, 0.01, 22050)

	tests := []struct {
		name     string
		fileName string
		wantBase string
	}{
		{
			name:     "bare name",
			fileName: "laser",
			wantBase: "laser.wav",
		},
		{
			name:     "already suffixed",
			fileName: "laser2.wav",
			wantBase: "laser2.wav",
		},
		{
			name:     "nested path",
			fileName: filepath.Join("weapons", "laser3"),
			wantBase: "laser3.wav",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path, err := exp.Export(buf, tt.fileName, 22050)
			if err != nil {
				t.Fatalf("Export: %v", err)
			}
			if filepath.Base(path) != tt.wantBase {
				t.Errorf("base = %q, want %q", filepath.Base(path), tt.wantBase)
			}
			if !strings.HasPrefix(path, exp.Root()) {
				t.Errorf("path %q not under root %q", path, exp.Root())
			}
			if _, err := os.Stat(path); err != nil {
				t.Errorf("stat: %v", err)
			}
		})
	}
}

func TestExportOverwrites(t *testing.T) {
	t.Parallel()

	exp := New(t.TempDir())

	first := synth.Sine(440, 0.2, 22050)
	if _, err := exp.Export(first, "dup", 22050); err != nil {
		t.Fatalf("first export: %v", err)
	}

	second := synth.Sine(440, 0.1, 22050)
	path, err := exp.Export(second, "dup", 22050)
	if err != nil {
		t.Fatalf("second export: %v", err)
	}

	fh, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer fh.Close()

	pcm, err := gowav.NewDecoder(fh).FullPCMBuffer()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(pcm.Data) != len(second) {
		t.Errorf("sample count = %d, want %d (overwrite)", len(pcm.Data), len(second))
	}
}

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	exp := New(t.TempDir())

	path, err := exp.EnsureDir("weapons")
	if err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.IsDir() {
		t.Fatal("not a directory")
	}

	// Repeat calls are idempotent.
	again, err := exp.EnsureDir("weapons")
	if err != nil {
		t.Fatalf("second EnsureDir: %v", err)
	}
	if again != path {
		t.Errorf("second path %q differs from first %q", again, path)
	}

	root, err := exp.EnsureDir("")
	if err != nil {
		t.Fatalf("root EnsureDir: %v", err)
	}
	if root != exp.Root() {
		t.Errorf("empty subdir path %q, want root %q", root, exp.Root())
	}
}
