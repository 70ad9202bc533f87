// Package tui provides the interactive terminal UI for kotoba.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - titles
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - readings, subtitles
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - words, kanji
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text
	ColorSuccess   = lipgloss.Color("#a8e6cf") // Green - translations
	ColorText      = lipgloss.Color("#f1faee") // Light text
	ColorBg        = lipgloss.Color("#1a1a2e") // Dark background
	ColorBgAlt     = lipgloss.Color("#2d3436") // Alt background
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	WordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Background(ColorBgAlt).
			Padding(1, 4).
			Margin(1, 0).
			Align(lipgloss.Center)

	ReadingStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Italic(true).
			Align(lipgloss.Center)

	TranslationStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Align(lipgloss.Center)

	SentenceStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	SentenceTranslationStyle = lipgloss.NewStyle().
					Foreground(ColorMuted).
					Italic(true)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(2, 4).
			Align(lipgloss.Center)

	FlipHintStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true).
			Align(lipgloss.Center)

	ProgressStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	ListItemStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)

	ListItemActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent).
				Background(ColorBgAlt).
				Padding(0, 1)

	SearchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 1)

	DetailLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a8dadc")).
				Bold(true).
				Width(14)

	DetailValueStyle = lipgloss.NewStyle().
				Foreground(ColorText)
)
