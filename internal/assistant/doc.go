// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package assistant implements Alex, the terminal's conversational layer.
//
// Alex answers through a chat-completions API when a key is configured.
// Without a key, or when the API fails, answers come from a local canned
// persona (persona.go) so the terminal always talks back. Asking Alex
// something is never a fatal path.
package assistant
