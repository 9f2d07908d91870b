package ledger

// DefaultAvatarID is unlocked from the first run.
const DefaultAvatarID = "default"

// DefaultThemeID is the starting color theme.
const DefaultThemeID = "default"

// Avatar is a purchasable profile cosmetic.
type Avatar struct {
	ID   string
	Icon string
	Name string
	Cost int
}

// AvatarCatalog returns the purchasable avatars in shop order.
func AvatarCatalog() []Avatar {
	return []Avatar{
		{ID: DefaultAvatarID, Icon: "🙂", Name: "Kid", Cost: 0},
		{ID: "cat", Icon: "🐱", Name: "Cat", Cost: 50},
		{ID: "dog", Icon: "🐶", Name: "Dog", Cost: 50},
		{ID: "astro", Icon: "👩‍🚀", Name: "Astro", Cost: 100},
		{ID: "alien", Icon: "👽", Name: "Alien", Cost: 150},
		{ID: "robot", Icon: "🤖", Name: "Bot", Cost: 150},
		{ID: "lion", Icon: "🦁", Name: "Lion", Cost: 200},
		{ID: "unicorn", Icon: "🦄", Name: "Uni", Cost: 300},
	}
}

// FindAvatar returns the catalog entry for id, if any.
func FindAvatar(id string) (Avatar, bool) {
	for _, a := range AvatarCatalog() {
		if a.ID == id {
			return a, true
		}
	}
	return Avatar{}, false
}

// Theme is a selectable color theme. Themes are free; they unlock on
// first selection.
type Theme struct {
	ID   string
	Icon string
	Name string
}

// ThemeCatalog returns the selectable themes in shop order.
func ThemeCatalog() []Theme {
	return []Theme{
		{ID: DefaultThemeID, Icon: "🌱", Name: "Garden"},
		{ID: "ocean", Icon: "🌊", Name: "Ocean"},
		{ID: "space", Icon: "🚀", Name: "Space"},
		{ID: "candy", Icon: "🍬", Name: "Candy"},
	}
}

// FindTheme returns the catalog entry for id, if any.
func FindTheme(id string) (Theme, bool) {
	for _, t := range ThemeCatalog() {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}
