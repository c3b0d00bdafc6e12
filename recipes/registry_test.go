// SPDX-License-Identifier: EPL-2.0

package recipes

import "testing"

func TestCategories(t *testing.T) {
	t.Parallel()

	cats := Categories()
	if len(cats) != 9 {
		t.Fatalf("got %d categories, want 9", len(cats))
	}

	seen := map[string]struct{}{}
	for _, cat := range cats {
		if cat.Name == "" {
			t.Fatal("category with empty name")
		}
		if cat.Description == "" {
			t.Errorf("category %q has no description", cat.Name)
		}
		if len(cat.Sounds) == 0 {
			t.Errorf("category %q has no sounds", cat.Name)
		}
		if _, dup := seen[cat.Name]; dup {
			t.Errorf("duplicate category name %q", cat.Name)
		}
		seen[cat.Name] = struct{}{}
	}
}

func TestSoundNamesUnique(t *testing.T) {
	t.Parallel()

	for _, cat := range Categories() {
		seen := map[string]struct{}{}
		for _, sound := range cat.Sounds {
			if sound.Name == "" {
				t.Fatalf("category %q holds a sound with no name", cat.Name)
			}
			if _, dup := seen[sound.Name]; dup {
				t.Errorf("category %q repeats sound %q", cat.Name, sound.Name)
			}
			seen[sound.Name] = struct{}{}

			if len(sound.Layers) == 0 {
				t.Errorf("sound %s/%s has no layers", cat.Name, sound.Name)
			}
			if sound.Weights != nil && len(sound.Weights) != len(sound.Layers) {
				t.Errorf("sound %s/%s declares %d weights for %d layers",
					cat.Name, sound.Name, len(sound.Weights), len(sound.Layers))
			}
		}
	}
}

func TestFind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		category  string
		wantFound bool
	}{
		{
			name:      "weapons",
			category:  "weapons",
			wantFound: true,
		},
		{
			name:      "ui",
			category:  "ui",
			wantFound: true,
		},
		{
			name:      "unknown",
			category:  "orchestral",
			wantFound: false,
		},
		{
			name:      "case sensitive",
			category:  "Weapons",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cat, found := Find(tt.category)
			if found != tt.wantFound {
				t.Fatalf("Find(%q) found = %v, want %v", tt.category, found, tt.wantFound)
			}
			if found && cat.Name != tt.category {
				t.Errorf("Find(%q) returned %q", tt.category, cat.Name)
			}
		})
	}
}

func TestAllRecipesRender(t *testing.T) {
	t.Parallel()

	for _, cat := range Categories() {
		for _, sound := range cat.Sounds {
			buf, err := sound.Render(22050)
			if err != nil {
				t.Errorf("%s/%s: %v", cat.Name, sound.Name, err)
				continue
			}
			if len(buf) == 0 {
				t.Errorf("%s/%s rendered empty", cat.Name, sound.Name)
				continue
			}
			if peak := buf.Peak(); peak > 1.0+1e-9 {
				t.Errorf("%s/%s peak = %v, exceeds full scale", cat.Name, sound.Name, peak)
			}
		}
	}
}
