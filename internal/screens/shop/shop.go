// Package shop lets the player spend stars on avatars and switch
// color themes.
package shop

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathgarden/internal/ledger"
	"github.com/abhisek/mathgarden/internal/screen"
	"github.com/abhisek/mathgarden/internal/ui/layout"
	"github.com/abhisek/mathgarden/internal/ui/theme"
)

// shopTab selects which catalog is active.
type shopTab int

const (
	tabAvatars shopTab = iota
	tabThemes
)

// ShopScreen is the cosmetics shop.
type ShopScreen struct {
	svc *ledger.Service

	tab      shopTab
	selected int

	notice    string
	noticeErr bool
}

var _ screen.Screen = (*ShopScreen)(nil)
var _ screen.KeyHintProvider = (*ShopScreen)(nil)

// New creates the shop screen.
func New(svc *ledger.Service) *ShopScreen {
	return &ShopScreen{svc: svc}
}

func (s *ShopScreen) Init() tea.Cmd {
	return nil
}

func (s *ShopScreen) Title() string {
	return "Shop"
}

func (s *ShopScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Avatars/Themes"},
		{Key: "Enter", Description: "Buy / Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ShopScreen) listLen() int {
	if s.tab == tabAvatars {
		return len(ledger.AvatarCatalog())
	}
	return len(ledger.ThemeCatalog())
}

func (s *ShopScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "tab", "left", "right", "h", "l":
		if s.tab == tabAvatars {
			s.tab = tabThemes
		} else {
			s.tab = tabAvatars
		}
		s.selected = 0
		s.notice = ""
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < s.listLen()-1 {
			s.selected++
		}
	case "enter":
		s.activate()
	}

	return s, nil
}

// activate buys or selects the highlighted item.
func (s *ShopScreen) activate() {
	ctx := context.Background()

	if s.tab == tabThemes {
		t := ledger.ThemeCatalog()[s.selected]
		if err := s.svc.SelectTheme(ctx, t.ID); err != nil {
			s.notice = err.Error()
			s.noticeErr = true
			return
		}
		theme.Apply(t.ID)
		s.notice = fmt.Sprintf("%s theme on!", t.Name)
		s.noticeErr = false
		return
	}

	av := ledger.AvatarCatalog()[s.selected]
	l := s.svc.Ledger()

	if l.HasAvatar(av.ID) {
		if err := s.svc.SelectAvatar(ctx, av.ID); err != nil {
			s.notice = err.Error()
			s.noticeErr = true
			return
		}
		s.notice = fmt.Sprintf("%s is now your buddy!", av.Name)
		s.noticeErr = false
		return
	}

	err := s.svc.PurchaseAvatar(ctx, av.ID)
	switch {
	case errors.Is(err, ledger.ErrInsufficientFunds):
		s.notice = fmt.Sprintf("You need ⭐ %d for %s. Keep playing!", av.Cost, av.Name)
		s.noticeErr = true
	case err != nil:
		s.notice = err.Error()
		s.noticeErr = true
	default:
		s.svc.EvaluateUnlocks(ctx)
		s.notice = fmt.Sprintf("%s joined your team! 🎉", av.Name)
		s.noticeErr = false
	}
}

func (s *ShopScreen) View(width, height int) string {
	l := s.svc.Ledger()

	var lines []string
	lines = append(lines, theme.Title.Render("🛒 Star Shop"))
	lines = append(lines, theme.Subtitle.Render(fmt.Sprintf("You have ⭐ %d", l.Stars)))
	lines = append(lines, "")
	lines = append(lines, s.renderTabs())
	lines = append(lines, "")

	if s.tab == tabAvatars {
		lines = append(lines, s.renderAvatars(l)...)
	} else {
		lines = append(lines, s.renderThemes(l)...)
	}

	if s.notice != "" {
		style := theme.Correct
		if s.noticeErr {
			style = theme.Incorrect
		}
		lines = append(lines, "", style.Render(s.notice))
	}

	card := theme.Card.Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (s *ShopScreen) renderTabs() string {
	active := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Underline(true)
	inactive := lipgloss.NewStyle().Foreground(theme.TextDim)

	avatars := inactive.Render("Avatars")
	themes := inactive.Render("Themes")
	if s.tab == tabAvatars {
		avatars = active.Render("Avatars")
	} else {
		themes = active.Render("Themes")
	}
	return avatars + "    " + themes
}

func (s *ShopScreen) renderAvatars(l *ledger.Ledger) []string {
	var lines []string
	for i, av := range ledger.AvatarCatalog() {
		var tag string
		switch {
		case av.ID == l.CurrentAvatar:
			tag = lipgloss.NewStyle().Foreground(theme.Success).Render("in use")
		case l.HasAvatar(av.ID):
			tag = lipgloss.NewStyle().Foreground(theme.TextDim).Render("owned")
		default:
			tag = lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("⭐ %d", av.Cost))
		}
		lines = append(lines, s.renderRow(i, fmt.Sprintf("%s  %-10s %s", av.Icon, av.Name, tag)))
	}
	return lines
}

func (s *ShopScreen) renderThemes(l *ledger.Ledger) []string {
	var lines []string
	for i, t := range ledger.ThemeCatalog() {
		var tag string
		if t.ID == l.CurrentTheme {
			tag = lipgloss.NewStyle().Foreground(theme.Success).Render("in use")
		} else {
			tag = lipgloss.NewStyle().Foreground(theme.TextDim).Render("free")
		}
		lines = append(lines, s.renderRow(i, fmt.Sprintf("%s  %-10s %s", t.Icon, t.Name, tag)))
	}
	return lines
}

func (s *ShopScreen) renderRow(i int, text string) string {
	if i == s.selected {
		return lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Render("▸ " + text)
	}
	return lipgloss.NewStyle().
		Foreground(theme.Text).
		Render("  " + text)
}
