// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package content fetches resume sections from a GitHub repository of
// markdown files and shapes them for display.
package content

// Directories is the fixed enumeration of resume sections, in main-menu
// order. Used whenever the live repository cannot enumerate its own
// subdirectories.
var Directories = []string{
	"Experience",
	"Skills",
	"Projects",
	"Education",
	"Journal",
	"About",
}

// Directory identifies one content section.
type Directory struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Item is one entry in a directory listing: a markdown file with its
// parsed frontmatter. Items are ephemeral - fetched per navigation
// action, never cached.
type Item struct {
	// Name is the filename within the directory, e.g. "devops-engineer.md".
	Name string `json:"name"`

	// Title is the frontmatter title, or a title derived from Name.
	Title string `json:"title"`

	// Order is the frontmatter sort order (frontmatter.DefaultOrder when absent).
	Order int `json:"order"`

	// Metadata holds the remaining frontmatter fields: company, period,
	// status, timeline, institution, location and friends.
	Metadata map[string]string `json:"metadata"`

	// DownloadURL is where the raw body can be fetched, when known.
	DownloadURL string `json:"downloadUrl,omitempty"`
}

// File is a fully fetched content file.
type File struct {
	Title    string            `json:"title"`
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata"`
	Filename string            `json:"filename"`
}
