// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/joshua-lossner/lossner-term/internal/session"
	"github.com/joshua-lossner/lossner-term/internal/ui/styles"
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the terminal.
type Model struct {
	controller *session.Controller
	theme      *styles.Theme

	// UI components
	viewport viewport.Model
	input    textinput.Model
	spin     spinner.Model
	renderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int

	// Boot sequence
	booting bool
	bootIdx int

	// processing is true while a command runs in a tea.Cmd goroutine.
	// The controller is not thread-safe; this flag keeps commands
	// strictly one at a time.
	processing bool

	taglineEvery time.Duration
}

// New creates the terminal model around an initialized controller.
func New(controller *session.Controller, theme *styles.Theme, taglineEvery time.Duration) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a command or ask Alex..."
	ti.CharLimit = 1024
	ti.Focus()

	vp := viewport.New(80, 20)

	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}
	sp.Style = theme.Spinner

	if taglineEvery <= 0 {
		taglineEvery = 4 * time.Second
	}

	return Model{
		controller:   controller,
		theme:        theme,
		viewport:     vp,
		input:        ti,
		spin:         sp,
		booting:      true,
		taglineEvery: taglineEvery,
	}
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts the boot sequence and the tagline rotation.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, bootTickCmd(), taglineTickCmd(m.taglineEvery))
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case bootTickMsg:
		return m.handleBootTick()

	case taglineTickMsg:
		m.controller.AdvanceTagline()
		m.refresh(false)
		return m, taglineTickCmd(m.taglineEvery)

	case execDoneMsg:
		return m.handleExecDone(msg)

	case SettingsMsg:
		return m.handleSettings(msg)

	case spinner.TickMsg:
		if m.processing {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// =============================================================================
// MESSAGE HANDLERS
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)

	// Layout: viewport + input line + status bar (with top border).
	const reservedHeight = 3
	vpHeight := m.height - reservedHeight
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = vpHeight

	inputWidth := m.width - 4
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.input.Width = inputWidth

	// Markdown wraps to the terminal, so the renderer is rebuilt on
	// every resize.
	wrap := m.width - 4
	if wrap < 20 {
		wrap = 20
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err == nil {
		m.renderer = renderer
	}

	m.refresh(true)
	return m, nil
}

func (m Model) handleBootTick() (tea.Model, tea.Cmd) {
	if m.bootIdx < len(session.BootMessages) {
		m.controller.AppendBoot(session.BootMessages[m.bootIdx])
		m.bootIdx++
		m.refresh(true)
		return m, bootTickCmd()
	}

	m.booting = false
	m.controller.ShowMainMenu()
	m.refresh(true)
	return m, textinput.Blink
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "ctrl+q":
		return m, tea.Quit

	case "enter":
		if m.booting || m.processing {
			return m, nil
		}
		value := m.input.Value()
		m.input.Reset()
		m.processing = true
		return m, tea.Batch(m.spin.Tick, m.execCmd(value))

	case "pgup":
		m.viewport.HalfViewUp()
		return m, nil

	case "pgdown":
		m.viewport.HalfViewDown()
		return m, nil

	case "ctrl+home":
		m.viewport.GotoTop()
		return m, nil

	case "ctrl+end":
		m.viewport.GotoBottom()
		return m, nil
	}

	if m.booting || m.processing {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleExecDone(msg execDoneMsg) (tea.Model, tea.Cmd) {
	m.processing = false
	m.refresh(true)

	res := msg.result
	if res.Quit {
		return m, tea.Quit
	}
	if res.OpenURL != "" {
		return m, tea.Batch(openURLCmd(res.OpenURL), textinput.Blink)
	}
	// Playback is never enabled for this frontend, so Result.Audio is
	// always empty here; only the HTTP API delivers audio.
	return m, textinput.Blink
}

// handleSettings re-themes and re-times the running terminal after the
// config file changed on disk. Content and credential changes still
// need a restart.
func (m Model) handleSettings(msg SettingsMsg) (tea.Model, tea.Cmd) {
	m.theme = styles.NewTheme(msg.Theme)
	m.theme.SetSize(m.width, m.height)
	m.spin.Style = m.theme.Spinner

	// The new cadence takes hold when the current tick fires.
	if every := time.Duration(msg.TaglineSeconds) * time.Second; every > 0 {
		m.taglineEvery = every
	}

	m.refresh(false)
	return m, nil
}

// execCmd runs one controller command off the Update loop. The
// processing flag guarantees at most one of these is in flight.
func (m Model) execCmd(input string) tea.Cmd {
	controller := m.controller
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		return execDoneMsg{result: controller.Execute(ctx, input)}
	}
}

// refresh re-renders the scrollback into the viewport.
func (m *Model) refresh(toBottom bool) {
	m.viewport.SetContent(m.renderLines())
	if toBottom {
		m.viewport.GotoBottom()
	}
}
