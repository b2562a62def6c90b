// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"strings"

	"github.com/joshua-lossner/lossner-term/internal/session"
)

// View renders the terminal: scrollback, input line, status bar.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderInput())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

// renderLines turns the controller's scrollback into styled text.
func (m Model) renderLines() string {
	var b strings.Builder
	for _, line := range m.controller.Lines() {
		b.WriteString(m.renderLine(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderLine(line session.Line) string {
	if line.Markdown && m.renderer != nil {
		if out, err := m.renderer.Render(line.Text); err == nil {
			return strings.TrimRight(out, "\n")
		}
	}

	switch line.Kind {
	case session.KindError:
		return m.theme.Error.Render(line.Text)
	case session.KindProcessing:
		return m.theme.Processing.Render(line.Text)
	case session.KindSeparator:
		return m.theme.Separator.Render(line.Text)
	case session.KindUserInput:
		return m.theme.UserInput.Render(line.Text)
	case session.KindASCIIArt:
		return m.theme.Banner.Render(line.Text)
	case session.KindTagline:
		return m.theme.Tagline.Render(line.Text)
	case session.KindAIResponse:
		return m.theme.AIResponse.Render(line.Text)
	case session.KindMenuHeader:
		return m.theme.MenuHeader.Render(line.Text)
	default:
		return m.theme.Normal.Render(line.Text)
	}
}

func (m Model) renderInput() string {
	if m.booting {
		return ""
	}
	if m.processing {
		return m.spin.View() + " " + m.theme.Processing.Render("Processing...")
	}
	return m.input.View()
}

func (m Model) renderStatusBar() string {
	voice := "off"
	if m.controller.AudioEnabled() {
		voice = "on"
	}

	parts := []string{
		m.theme.StatusKey.Render("lossner.tech"),
		m.theme.Normal.Render(string(m.controller.Menu())),
		m.theme.Normal.Render("voice " + voice),
		m.theme.StatusKey.Render("ctrl+c") + " quit",
	}
	bar := strings.Join(parts, m.theme.Separator.Render(" | "))
	return m.theme.StatusBar.Width(m.width).Render(bar)
}
