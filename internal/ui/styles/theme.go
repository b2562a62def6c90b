// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// palette is the phosphor color ramp for one theme.
type palette struct {
	bright lipgloss.Color // banner, headers
	base   lipgloss.Color // body text
	dim    lipgloss.Color // separators, hints
	accent lipgloss.Color // user input, highlights
	alert  lipgloss.Color // errors
}

var palettes = map[string]palette{
	"green": {
		bright: lipgloss.Color("#99FF99"),
		base:   lipgloss.Color("#33FF33"),
		dim:    lipgloss.Color("#1A8C1A"),
		accent: lipgloss.Color("#CCFFCC"),
		alert:  lipgloss.Color("#FF5555"),
	},
	"amber": {
		bright: lipgloss.Color("#FFD580"),
		base:   lipgloss.Color("#FFB000"),
		dim:    lipgloss.Color("#8C6200"),
		accent: lipgloss.Color("#FFE8B3"),
		alert:  lipgloss.Color("#FF5555"),
	},
	"mono": {
		bright: lipgloss.Color("#FFFFFF"),
		base:   lipgloss.Color("#C0C0C0"),
		dim:    lipgloss.Color("#606060"),
		accent: lipgloss.Color("#FFFFFF"),
		alert:  lipgloss.Color("#FF5555"),
	},
}

// Theme holds all the styled components for the terminal.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	Name         string
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// SCROLLBACK LINE STYLES
	// ==========================================================================

	Normal     lipgloss.Style
	Banner     lipgloss.Style
	Tagline    lipgloss.Style
	Separator  lipgloss.Style
	MenuHeader lipgloss.Style
	UserInput  lipgloss.Style
	Processing lipgloss.Style
	AIResponse lipgloss.Style
	Error      lipgloss.Style

	// ==========================================================================
	// INPUT AND STATUS BAR STYLES
	// ==========================================================================

	InputPrompt lipgloss.Style
	InputText   lipgloss.Style
	Spinner     lipgloss.Style
	StatusBar   lipgloss.Style
	StatusKey   lipgloss.Style
}

// NewTheme creates a theme by name. Unknown names fall back to green.
func NewTheme(name string) *Theme {
	p, ok := palettes[name]
	if !ok {
		name = "green"
		p = palettes[name]
	}

	colorProfile := termenv.ColorProfile()
	t := &Theme{
		Name:         name,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}
	t.initStyles(p)
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles(p palette) {
	t.Normal = lipgloss.NewStyle().Foreground(p.base)

	t.Banner = lipgloss.NewStyle().
		Foreground(p.bright).
		Bold(true)

	t.Tagline = lipgloss.NewStyle().
		Foreground(p.dim).
		Bold(true)

	t.Separator = lipgloss.NewStyle().Foreground(p.dim)

	t.MenuHeader = lipgloss.NewStyle().
		Foreground(p.bright).
		Bold(true)

	t.UserInput = lipgloss.NewStyle().
		Foreground(p.accent).
		Bold(true)

	t.Processing = lipgloss.NewStyle().
		Foreground(p.dim).
		Italic(true)

	t.AIResponse = lipgloss.NewStyle().Foreground(p.bright)

	t.Error = lipgloss.NewStyle().
		Foreground(p.alert).
		Bold(true)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(p.bright).
		Bold(true)

	t.InputText = lipgloss.NewStyle().Foreground(p.base)

	t.Spinner = lipgloss.NewStyle().Foreground(p.bright)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(p.dim).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(p.dim).
		Padding(0, 1)

	t.StatusKey = lipgloss.NewStyle().
		Foreground(p.bright).
		Bold(true)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}
