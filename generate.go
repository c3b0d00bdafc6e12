// SPDX-License-Identifier: EPL-2.0

package retrosfx

import (
	"fmt"
	"path/filepath"

	"github.com/ik5/retrosfx/export"
	"github.com/ik5/retrosfx/recipes"
	"github.com/ik5/retrosfx/synth"
)

// GenerateSound renders one recipe at rate Hz and writes it beneath
// the exporter root, inside subdir when non-empty. It returns the
// written file path.
func GenerateSound(sound recipes.Sound, rate int, exp *export.Exporter, subdir string) (string, error) {
	buf, err := sound.Render(rate)
	if err != nil {
		return "", fmt.Errorf("generating %q: %w", sound.Name, err)
	}

	name := sound.Name
	if subdir != "" {
		name = filepath.Join(subdir, sound.Name)
	}

	path, err := exp.Export(buf, name, rate)
	if err != nil {
		return "", fmt.Errorf("generating %q: %w", sound.Name, err)
	}

	return path, nil
}

// GenerateCategory renders every sound in cat into a subdirectory
// named after the category. The first failing sound aborts the
// category; paths written so far are returned alongside the error.
func GenerateCategory(cat recipes.Category, rate int, exp *export.Exporter) ([]string, error) {
	if _, err := exp.EnsureDir(cat.Name); err != nil {
		return nil, fmt.Errorf("category %q: %w", cat.Name, err)
	}

	paths := make([]string, 0, len(cat.Sounds))
	for _, sound := range cat.Sounds {
		path, err := GenerateSound(sound, rate, exp, cat.Name)
		if err != nil {
			return paths, fmt.Errorf("category %q: %w", cat.Name, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// RenderCategory renders every sound in cat without touching disk,
// returning the buffers keyed by "category/sound". Useful for
// verification passes that inspect signals instead of files.
func RenderCategory(cat recipes.Category, rate int) (map[string]synth.Buffer, error) {
	out := map[string]synth.Buffer{}

	for _, sound := range cat.Sounds {
		buf, err := sound.Render(rate)
		if err != nil {
			return nil, fmt.Errorf("category %q: rendering %q: %w", cat.Name, sound.Name, err)
		}
		out[cat.Name+"/"+sound.Name] = buf
	}

	return out, nil
}

// RenderAll renders every registered category via RenderCategory.
func RenderAll(rate int) (map[string]synth.Buffer, error) {
	out := map[string]synth.Buffer{}

	for _, cat := range recipes.Categories() {
		rendered, err := RenderCategory(cat, rate)
		if err != nil {
			return nil, err
		}
		for name, buf := range rendered {
			out[name] = buf
		}
	}

	return out, nil
}
