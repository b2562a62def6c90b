// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshua-lossner/lossner-term/internal/session"
)

// SettingsMsg applies reloaded UI settings to a running program. The
// config watcher sends it from outside the Update loop.
type SettingsMsg struct {
	Theme          string
	TaglineSeconds int
}

// bootTickMsg reveals the next boot message.
type bootTickMsg struct{}

// taglineTickMsg rotates the banner tagline.
type taglineTickMsg struct{}

// execDoneMsg carries the result of a finished controller command.
type execDoneMsg struct {
	result session.Result
}

const bootInterval = 400 * time.Millisecond

func bootTickCmd() tea.Cmd {
	return tea.Tick(bootInterval, func(time.Time) tea.Msg {
		return bootTickMsg{}
	})
}

func taglineTickCmd(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg {
		return taglineTickMsg{}
	})
}
