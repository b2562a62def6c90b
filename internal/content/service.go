// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package content fetches resume sections from a GitHub repository of
// markdown files and shapes them for display.
package content

import (
	"context"
	"strings"

	"github.com/joshua-lossner/lossner-term/internal/frontmatter"
)

// =============================================================================
// CONTENT SERVICE
// =============================================================================

// Service is what the terminal talks to. It layers frontmatter parsing,
// section sorting and the static fallback over the raw GitHub client.
//
// Listings and files are fetched per navigation action and never cached;
// content repos are tiny and staleness would be worse than the latency.
type Service struct {
	client *Client
}

// NewService creates a content service backed by the given client.
// A nil client means no repository is configured and every call serves
// the static fallback.
func NewService(client *Client) *Service {
	return &Service{client: client}
}

// Offline reports whether the service has no live repository configured.
func (s *Service) Offline() bool {
	return s.client == nil || s.client.config.Owner == "" || s.client.config.Repo == ""
}

// ListDirectories returns the content sections. The live repository's
// subdirectories win when reachable; otherwise the fixed section list.
func (s *Service) ListDirectories(ctx context.Context) ([]Directory, error) {
	if s.Offline() {
		return FallbackDirectories(), nil
	}

	entries, err := s.client.ListDir(ctx, "")
	if err != nil {
		if IsAccessDenied(err) {
			return FallbackDirectories(), nil
		}
		return nil, err
	}

	var dirs []Directory
	for _, e := range entries {
		if e.Type == "dir" {
			dirs = append(dirs, Directory{Name: e.Name, Path: e.Path})
		}
	}
	if len(dirs) == 0 {
		return FallbackDirectories(), nil
	}
	return dirs, nil
}

// ListFiles returns the sorted listing for one section. Each markdown
// file's body is fetched so its frontmatter can drive the listing. A 403
// or 404 from the repository substitutes the static fallback; any other
// failure propagates.
func (s *Service) ListFiles(ctx context.Context, directory string) ([]Item, error) {
	if s.Offline() {
		return FallbackItems(directory), nil
	}

	entries, err := s.client.ListDir(ctx, directory)
	if err != nil {
		if IsAccessDenied(err) {
			return FallbackItems(directory), nil
		}
		return nil, err
	}

	var items []Item
	for _, e := range entries {
		if e.Type != "file" || !strings.HasSuffix(e.Name, ".md") {
			continue
		}

		body, err := s.client.Download(ctx, e.DownloadURL)
		if err != nil {
			if IsAccessDenied(err) {
				// The listing said the file exists; a denied download
				// means the whole section is effectively inaccessible.
				return FallbackItems(directory), nil
			}
			return nil, err
		}

		doc := frontmatter.Parse(body)
		title := doc.Title
		if title == "" {
			title = frontmatter.TitleFromFilename(e.Name)
		}
		items = append(items, Item{
			Name:        e.Name,
			Title:       title,
			Order:       doc.Order,
			Metadata:    doc.Metadata,
			DownloadURL: e.DownloadURL,
		})
	}

	if len(items) == 0 {
		return FallbackItems(directory), nil
	}
	SortItems(items, directory)
	return items, nil
}

// GetFile fetches one content file with its frontmatter parsed out.
// A 403 or 404 substitutes the static fallback body; other failures
// propagate.
func (s *Service) GetFile(ctx context.Context, directory, filename string) (*File, error) {
	if s.Offline() {
		return FallbackFile(directory, filename), nil
	}

	entry, err := s.client.Stat(ctx, directory+"/"+filename)
	if err != nil {
		if IsAccessDenied(err) {
			return FallbackFile(directory, filename), nil
		}
		return nil, err
	}

	body, err := s.client.Download(ctx, entry.DownloadURL)
	if err != nil {
		if IsAccessDenied(err) {
			return FallbackFile(directory, filename), nil
		}
		return nil, err
	}

	doc := frontmatter.Parse(body)
	title := doc.Title
	if title == "" {
		title = frontmatter.TitleFromFilename(filename)
	}
	return &File{
		Title:    title,
		Content:  doc.Body,
		Metadata: doc.Metadata,
		Filename: filename,
	}, nil
}
