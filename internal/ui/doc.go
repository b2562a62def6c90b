// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui is the Bubble Tea frontend for the terminal.
//
// The Model here is deliberately thin: all command interpretation and
// navigation lives in the session Controller. The UI renders the
// controller's scrollback into a viewport, feeds submitted input back to
// it, and performs the side effects the controller cannot (quitting,
// opening links).
//
// Input is serialized through a single processing flag; while a command
// is in flight the input line shows a spinner and further submissions
// are ignored. That flag is the only concurrency guard the controller
// needs.
package ui
