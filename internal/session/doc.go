// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the terminal's brain: the scrollback buffer, the
// command interpreter and the navigation state machine.
//
// A Controller owns all mutable session state. Frontends (the Bubble Tea
// UI, the plain REPL) feed it one submitted input at a time through
// Execute and render whatever Lines() holds afterwards. Side effects
// that only a frontend can perform, like opening a browser or playing
// audio, come back in the Result rather than happening here.
//
// Navigation is a stack of views with the main menu always at the
// bottom. Forward navigation pushes; "back" pops and replays the prior
// view with history recording suppressed, so the stack top always
// matches what is on screen.
package session
