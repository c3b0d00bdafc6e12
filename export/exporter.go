// SPDX-License-Identifier: EPL-2.0

package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/retrosfx/synth"
	"github.com/ik5/retrosfx/utils"
)

// Exporter writes generated sounds beneath a fixed output root.
type Exporter struct {
	root string
}

// New creates an Exporter rooted at dir.
func New(dir string) *Exporter {
	return &Exporter{root: dir}
}

// Root returns the configured output root.
func (e *Exporter) Root() string { return e.root }

// Export writes buf as a 16-bit mono PCM WAV file at rate Hz under the
// output root, appending a .wav extension when name lacks one, and
// returns the resolved path. Intermediate directories are created as
// needed; an existing file at the same path is overwritten. An empty
// buffer fails with ErrEmptyBuffer.
func (e *Exporter) Export(buf synth.Buffer, name string, rate int) (string, error) {
	if len(buf) == 0 {
		return "", fmt.Errorf("exporting %q: %w", name, ErrEmptyBuffer)
	}

	if !strings.HasSuffix(name, ".wav") {
		name += ".wav"
	}
	path := filepath.Join(e.root, name)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating directory for %q: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %q: %w", path, err)
	}

	data := make([]int, len(buf))
	for i, v := range buf {
		data[i] = int(utils.Float64ToInt16(v))
	}

	enc := wav.NewEncoder(f, rate, 16, 1, 1)
	err = enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	})
	if err != nil {
		enc.Close()
		f.Close()
		return "", fmt.Errorf("writing %q: %w", path, err)
	}

	if err := enc.Close(); err != nil {
		f.Close()
		return "", fmt.Errorf("finalizing %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %q: %w", path, err)
	}

	return path, nil
}

// EnsureDir idempotently creates (and returns) a directory under the
// output root. An empty subdir refers to the root itself. Safe to call
// repeatedly and from concurrent generations.
func (e *Exporter) EnsureDir(subdir string) (string, error) {
	path := e.root
	if subdir != "" {
		path = filepath.Join(e.root, subdir)
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", fmt.Errorf("creating %q: %w", path, err)
	}
	return path, nil
}
