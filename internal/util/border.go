// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the lossner-term application.
package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// BorderWidth is the fixed column width of section rules and headers.
// Every view in the terminal is laid out against this width.
const BorderWidth = 70

// Border draws a horizontal rule of BorderWidth columns from the given
// character. When title is non-empty it is centered within the rule,
// padded by one space on each side:
//
//	━━━━━━━━━━━━━━━━━━━━━━━━━━ MAIN MENU ━━━━━━━━━━━━━━━━━━━━━━━━━━━
//
// Width math is display-column aware so CJK titles center correctly.
func Border(title string, char rune) string {
	if title == "" {
		return strings.Repeat(string(char), BorderWidth)
	}

	titled := " " + title + " "
	remaining := BorderWidth - runewidth.StringWidth(titled)
	if remaining < 2 {
		return titled
	}

	left := remaining / 2
	right := remaining - left
	return strings.Repeat(string(char), left) + titled + strings.Repeat(string(char), right)
}

// Rule draws an untitled horizontal rule of BorderWidth columns.
func Rule(char rune) string {
	return Border("", char)
}
