// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the plain line-based frontend, for terminals and
// pipes that cannot host the full-screen UI.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/peterh/liner"

	"github.com/joshua-lossner/lossner-term/internal/config"
	"github.com/joshua-lossner/lossner-term/internal/session"
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// inputLine wraps liner with persistent input history.
type inputLine struct {
	line        *liner.State
	historyFile string
}

func newInputLine() *inputLine {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}
	historyFile := filepath.Join(configDir, "input_history")

	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	return &inputLine{line: line, historyFile: historyFile}
}

func (l *inputLine) close() {
	if f, err := os.OpenFile(l.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600); err == nil {
		l.line.WriteHistory(f)
		f.Close()
	}
	l.line.Close()
}

// =============================================================================
// PLAIN REPL
// =============================================================================

// RunPlain drives the session through a readline-style loop. Output is
// unstyled text: new scrollback lines are printed after each command.
func RunPlain(controller *session.Controller) error {
	input := newInputLine()
	defer input.close()

	for _, msg := range session.BootMessages {
		fmt.Println(msg)
		time.Sleep(200 * time.Millisecond)
	}
	controller.ShowMainMenu()
	shown := printLines(controller, nil)

	for {
		text, err := input.line.Prompt("> ")
		if err != nil {
			// Ctrl+C or EOF ends the session.
			fmt.Println()
			return nil
		}
		if text != "" {
			input.line.AppendHistory(text)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		res := controller.Execute(ctx, text)
		cancel()

		shown = printLines(controller, shown)

		if res.OpenURL != "" {
			fmt.Println("Open in browser: " + res.OpenURL)
		}
		if res.Quit {
			return nil
		}
	}
}

// printLines prints what the user has not seen yet. Screens rebuild the
// whole buffer, so when the shown lines are no longer a prefix of the
// scrollback the entire screen is reprinted.
func printLines(controller *session.Controller, shown []session.Line) []session.Line {
	lines := controller.Lines()

	start := len(shown)
	if !isPrefix(shown, lines) {
		start = 0
		fmt.Println()
	}

	for _, line := range lines[start:] {
		// The echoed input was just typed on the prompt line.
		if line.Kind == session.KindUserInput {
			continue
		}
		fmt.Println(line.Text)
	}

	snapshot := make([]session.Line, len(lines))
	copy(snapshot, lines)
	return snapshot
}

func isPrefix(shown, lines []session.Line) bool {
	if len(shown) > len(lines) {
		return false
	}
	for i := range shown {
		if shown[i].Text != lines[i].Text || shown[i].Kind != lines[i].Kind {
			return false
		}
	}
	return true
}
