// SPDX-License-Identifier: EPL-2.0

package retrosfx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ik5/retrosfx/formats/aiff"
	"github.com/ik5/retrosfx/formats/mp3"
	"github.com/ik5/retrosfx/formats/vorbis"
	"github.com/ik5/retrosfx/formats/wav"
	"github.com/ik5/retrosfx/synth"
)

// Decoder reads a complete audio stream and returns it as a mono
// buffer together with its native sample rate.
type Decoder interface {
	Decode(r io.Reader) (synth.Buffer, int, error)
}

// Registry maps file extensions to decoders. The zero value is not
// usable; create instances with NewRegistry or DefaultRegistry.
type Registry struct {
	mutex    *sync.Mutex
	decoders map[string]Decoder
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		mutex:    &sync.Mutex{},
		decoders: map[string]Decoder{},
	}
}

// Register binds dec to ext. The extension is matched case
// insensitively and may be given with or without a leading dot.
// Registering an extension twice replaces the earlier decoder.
func (reg *Registry) Register(ext string, dec Decoder) error {
	if dec == nil {
		return fmt.Errorf("register %q: %w", ext, ErrNilDecoder)
	}

	reg.mutex.Lock()
	defer reg.mutex.Unlock()

	reg.decoders[normalizeExt(ext)] = dec

	return nil
}

// Lookup returns the decoder registered for ext, if any.
func (reg *Registry) Lookup(ext string) (Decoder, bool) {
	reg.mutex.Lock()
	defer reg.mutex.Unlock()

	dec, found := reg.decoders[normalizeExt(ext)]

	return dec, found
}

// Extensions returns the registered extensions in no particular order.
func (reg *Registry) Extensions() []string {
	reg.mutex.Lock()
	defer reg.mutex.Unlock()

	exts := make([]string, 0, len(reg.decoders))
	for ext := range reg.decoders {
		exts = append(exts, ext)
	}

	return exts
}

// LoadSample decodes the audio file at path using the decoder
// registered for its extension, then resamples the mono result to
// targetRate. Files already at targetRate are returned as decoded.
func (reg *Registry) LoadSample(path string, targetRate int) (synth.Buffer, error) {
	dec, found := reg.Lookup(filepath.Ext(path))
	if !found {
		return nil, fmt.Errorf("load %s: %w", path, ErrUnknownExtension)
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	defer fh.Close()

	buf, rate, err := dec.Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return synth.Resample(buf, rate, targetRate), nil
}

// DefaultRegistry returns a registry covering every built-in format.
func DefaultRegistry() *Registry {
	reg := NewRegistry()

	_ = reg.Register(".wav", wav.Decoder{})
	_ = reg.Register(".mp3", mp3.Decoder{})
	_ = reg.Register(".ogg", vorbis.Decoder{})
	_ = reg.Register(".aiff", aiff.Decoder{})
	_ = reg.Register(".aif", aiff.Decoder{})

	return reg
}

// LoadSample decodes and resamples path using DefaultRegistry.
func LoadSample(path string, targetRate int) (synth.Buffer, error) {
	return DefaultRegistry().LoadSample(path, targetRate)
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return ext
}
