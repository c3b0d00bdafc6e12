// SPDX-License-Identifier: EPL-2.0

// Package recipes defines the game's sound palette as data: each
// category holds a list of Sound values whose layers name an
// oscillator, an envelope and a chain of effect steps with concrete
// parameters. A single interpreter renders any Sound through the
// engine, so adding a sound means adding a table entry, not a
// function.
//
//	for _, cat := range recipes.Categories() {
//		for _, s := range cat.Sounds {
//			buf, err := s.Render(22050)
//			...
//		}
//	}
package recipes
