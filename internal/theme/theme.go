// Package theme holds the Lip Gloss styles shared across the UI.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mbwilding/steam-achievement-manager/internal/achievement"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title         *lipgloss.Style
	Header        *lipgloss.Style
	Border        *lipgloss.Style
	Item          *lipgloss.Style
	ItemIndicator *lipgloss.Style
	SelectedItem  *lipgloss.Style
	Checked       *lipgloss.Style
	Success       *lipgloss.Style
	Failed        *lipgloss.Style
	Complete      *lipgloss.Style

	StatusInfo    *lipgloss.Style
	StatusSuccess *lipgloss.Style
	StatusError   *lipgloss.Style

	Prompt      *lipgloss.Style
	Placeholder *lipgloss.Style
	FooterKey   *lipgloss.Style
	FooterDesc  *lipgloss.Style

	Tiers map[achievement.Tier]*lipgloss.Style
}

var (
	colorLegendary = lipgloss.Color("#FF8000")
	colorEpic      = lipgloss.Color("#A335EE")
	colorRare      = lipgloss.Color("#0070DD")
	colorUncommon  = lipgloss.Color("#1EFF00")
	colorCommon    = lipgloss.Color("#FFFFFF")
)

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	),
	Border: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle(),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("#181818")).Bold(true),
	),
	Checked: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	),
	Success: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	),
	Failed: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	),
	Complete: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	),
	StatusInfo: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	),
	StatusSuccess: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	),
	StatusError: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	),
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	FooterKey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	),
	FooterDesc: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Tiers: map[achievement.Tier]*lipgloss.Style{
		achievement.Legendary: ptr(lipgloss.NewStyle().Foreground(colorLegendary).Bold(true)),
		achievement.Epic:      ptr(lipgloss.NewStyle().Foreground(colorEpic).Bold(true)),
		achievement.Rare:      ptr(lipgloss.NewStyle().Foreground(colorRare)),
		achievement.Uncommon:  ptr(lipgloss.NewStyle().Foreground(colorUncommon)),
		achievement.Common:    ptr(lipgloss.NewStyle().Foreground(colorCommon)),
	},
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Tier returns the style for a rarity tier, falling back to Item.
func (s *Styles) Tier(t achievement.Tier) *lipgloss.Style {
	if style, ok := s.Tiers[t]; ok {
		return style
	}
	return s.Item
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
