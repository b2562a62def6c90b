// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the terminal.
//
// The look is a single-color phosphor display: one accent color in a few
// intensities, picked by theme name (green, amber, mono). All styles live
// on a Theme value so the rest of the UI never touches lipgloss colors
// directly.
package styles
