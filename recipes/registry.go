// SPDX-License-Identifier: EPL-2.0

package recipes

// Categories returns every sound category in generation order.
func Categories() []Category {
	return []Category{
		weapons,
		npcWeapons,
		impacts,
		destruction,
		bosses,
		mining,
		environment,
		ui,
		movement,
	}
}

// Find returns the category with the given name.
func Find(name string) (Category, bool) {
	for _, cat := range Categories() {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}
