// Package tui provides the interactive terminal UI for emotionai.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary = lipgloss.Color("#2563EB") // Blue - brand, accents
	ColorText    = lipgloss.Color("#f1faee") // Light text
	ColorMuted   = lipgloss.Color("#666666") // Gray - help text
	ColorLabel   = lipgloss.Color("#a8dadc") // Label color
	ColorAccent  = lipgloss.Color("#ffe66d") // Yellow - keys
	ColorBorder  = lipgloss.Color("#3d5a80") // Border color
)

// Header styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	TitleAccentStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	FeatureStyle = lipgloss.NewStyle().
			Foreground(ColorLabel)
)

// Help styles
var (
	HelpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	HelpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorLabel).
				MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Width(12)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	HelpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2).
			Width(50)

	HelpFooterStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)

// Content area style
var ContentStyle = lipgloss.NewStyle().
	Padding(1, 2)
