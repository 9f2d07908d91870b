package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is one selectable color scheme. Schemes are unlocked through
// the shop; Apply swaps the live styles.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgDark    color.Color
	BgCard    color.Color
	Border    color.Color
}

var palettes = map[string]Palette{
	"default": {
		Primary:   lipgloss.Color("#8B5CF6"), // Vivid Purple
		Secondary: lipgloss.Color("#14B8A6"), // Teal
		Accent:    lipgloss.Color("#F59E0B"), // Amber
		Success:   lipgloss.Color("#22C55E"), // Green
		Error:     lipgloss.Color("#F43F5E"), // Rose
		Text:      lipgloss.Color("#F8FAFC"), // White
		TextDim:   lipgloss.Color("#94A3B8"), // Slate
		BgDark:    lipgloss.Color("#0F172A"), // Deep Navy
		BgCard:    lipgloss.Color("#1E293B"), // Dark Slate
		Border:    lipgloss.Color("#334155"), // Slate
	},
	"ocean": {
		Primary:   lipgloss.Color("#0EA5E9"), // Sky
		Secondary: lipgloss.Color("#06B6D4"), // Cyan
		Accent:    lipgloss.Color("#34D399"), // Sea Green
		Success:   lipgloss.Color("#22C55E"),
		Error:     lipgloss.Color("#FB7185"),
		Text:      lipgloss.Color("#F0F9FF"),
		TextDim:   lipgloss.Color("#7DD3FC"),
		BgDark:    lipgloss.Color("#082F49"),
		BgCard:    lipgloss.Color("#0C4A6E"),
		Border:    lipgloss.Color("#075985"),
	},
	"space": {
		Primary:   lipgloss.Color("#A78BFA"), // Lavender
		Secondary: lipgloss.Color("#818CF8"), // Indigo
		Accent:    lipgloss.Color("#F472B6"), // Pink
		Success:   lipgloss.Color("#4ADE80"),
		Error:     lipgloss.Color("#F87171"),
		Text:      lipgloss.Color("#EDE9FE"),
		TextDim:   lipgloss.Color("#8B8DB0"),
		BgDark:    lipgloss.Color("#0B0A1A"),
		BgCard:    lipgloss.Color("#1E1B3A"),
		Border:    lipgloss.Color("#3730A3"),
	},
	"candy": {
		Primary:   lipgloss.Color("#EC4899"), // Hot Pink
		Secondary: lipgloss.Color("#F472B6"), // Pink
		Accent:    lipgloss.Color("#FBBF24"), // Gold
		Success:   lipgloss.Color("#34D399"),
		Error:     lipgloss.Color("#EF4444"),
		Text:      lipgloss.Color("#FDF2F8"),
		TextDim:   lipgloss.Color("#F9A8D4"),
		BgDark:    lipgloss.Color("#331022"),
		BgCard:    lipgloss.Color("#4A1D35"),
		Border:    lipgloss.Color("#831843"),
	},
}

// Colors of the active palette.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgDark    color.Color
	BgCard    color.Color
	Border    color.Color
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// Layout
var (
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
)

// Components
var (
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
)

func init() {
	Apply("default")
}

// Apply switches the live styles to the named palette. Unknown names
// fall back to the default scheme.
func Apply(id string) {
	p, ok := palettes[id]
	if !ok {
		p = palettes["default"]
	}

	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Success = p.Success
	Error = p.Error
	Text = p.Text
	TextDim = p.TextDim
	BgDark = p.BgDark
	BgCard = p.BgCard
	Border = p.Border

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	ProgressFilled = lipgloss.NewStyle().
		Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
		Background(Border)

	ButtonActive = lipgloss.NewStyle().
		Background(Primary).
		Foreground(Text).
		Bold(true).
		Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
}
