// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the lossner-term application.
//
// This package contains common helper functions used throughout the
// application for string manipulation, border drawing, and file operations.
//
// # Key Functions
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe string truncation with ellipsis
//   - TitleCase: word-capitalized display titles
//
// Border Drawing:
//   - Border: fixed-width horizontal rule with an optional centered title
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//
// # Usage
//
//	// Truncate long strings safely for display
//	display := util.TruncateRunes(longText, 50)
//
//	// Draw a section header rule
//	header := util.Border("MAIN MENU", '━')
//
//	// Write files atomically to prevent data loss
//	err := util.AtomicWriteFile(path, data, 0644)
package util
