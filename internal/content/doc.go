// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package content fetches resume sections from a GitHub repository of
// markdown files and shapes them for display.
//
// The package has three layers:
//
//   - Client: a thin GitHub Contents API client. Rate limited, sends an
//     identifying User-Agent on every request and an Authorization header
//     when a token is configured.
//   - Service: the operations the terminal consumes - ListDirectories,
//     ListFiles and GetFile. Frontmatter is parsed out of each file and
//     listings are sorted with the per-section policies in sort.go.
//   - Fallback: static built-in content substituted when the repository
//     answers 403 or 404, so the terminal never shows an empty section
//     because of a missing token or repo. Any other failure propagates.
package content
