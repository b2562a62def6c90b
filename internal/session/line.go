// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the terminal's brain: the scrollback buffer, the
// command interpreter and the navigation state machine.
package session

// LineKind classifies a scrollback line for styling.
type LineKind string

const (
	KindNormal     LineKind = "normal"
	KindError      LineKind = "error"
	KindProcessing LineKind = "processing"
	KindSeparator  LineKind = "separator"
	KindUserInput  LineKind = "user-input"
	KindMarkdown   LineKind = "markdown"
	KindASCIIArt   LineKind = "ascii-art"
	KindTagline    LineKind = "tagline"
	KindAIResponse LineKind = "ai-response"
	KindMenuHeader LineKind = "menu-header"
)

// Line is one entry of the scrollback buffer.
type Line struct {
	Text string
	Kind LineKind

	// Markdown marks text that should go through the markdown renderer.
	Markdown bool

	// Command, when set, is the input this line stands for when clicked
	// or selected (menu entries carry their own number).
	Command string
}

func plain(text string) Line {
	return Line{Text: text, Kind: KindNormal}
}
