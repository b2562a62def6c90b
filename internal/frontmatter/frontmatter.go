// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package frontmatter extracts the delimited metadata header from markdown
// content files.
//
// A header is a block of `key: value` lines between two `---` marker lines
// at the very start of the document. Parsing is deliberately line-oriented
// rather than regex-over-the-whole-document: each line is matched on its
// own, so one field's value can never bleed into the next field's line.
package frontmatter

import (
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultOrder is the sort order assigned when a document carries no
// parseable `order` field. High so unordered documents sink to the end.
const DefaultOrder = 999

// Marker is the header delimiter line.
const Marker = "---"

// Document is the result of parsing a content file.
type Document struct {
	// Title is the promoted `title` field, or "" if the header had none.
	Title string

	// Order is the parsed `order` field, or DefaultOrder.
	Order int

	// Metadata holds every other recognized `key: value` pair.
	// `school` and `institution` both land under "institution",
	// last write wins by line order. A "period" entry is synthesized
	// from `start`/`end` when no explicit `period` field is present.
	Metadata map[string]string

	// Body is the document content with the header block stripped.
	// Input without a well-formed header yields the whole input here.
	Body string
}

var titleCaser = cases.Title(language.English)

// Parse extracts the frontmatter header from raw document text.
// It never fails: malformed input degrades to an empty header and the
// full text as body.
func Parse(raw string) Document {
	doc := Document{
		Order:    DefaultOrder,
		Metadata: make(map[string]string),
		Body:     raw,
	}

	lines := strings.Split(raw, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != Marker {
		return doc
	}

	// Find the closing marker. No closing marker means no header.
	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == Marker {
			end = i
			break
		}
	}
	if end < 0 {
		return doc
	}

	var start, finish string
	for _, line := range lines[1:end] {
		key, value, ok := parseLine(line)
		if !ok {
			continue
		}
		switch key {
		case "title":
			doc.Title = value
		case "order":
			if n, err := strconv.Atoi(value); err == nil {
				doc.Order = n
			}
		case "start":
			start = value
			doc.Metadata[key] = value
		case "end":
			finish = value
			doc.Metadata[key] = value
		case "school", "institution":
			doc.Metadata["institution"] = value
		default:
			doc.Metadata[key] = value
		}
	}

	// An explicit period field always beats the derived start/end form.
	if _, ok := doc.Metadata["period"]; !ok {
		if period := derivePeriod(start, finish); period != "" {
			doc.Metadata["period"] = period
		}
	}

	doc.Body = strings.Join(lines[end+1:], "\n")
	return doc
}

// parseLine matches a single `key: value` header line. The value may be
// wrapped in double quotes. Lines that do not fit the shape are skipped.
func parseLine(line string) (key, value string, ok bool) {
	colon := strings.Index(line, ":")
	if colon <= 0 {
		return "", "", false
	}

	key = strings.ToLower(strings.TrimSpace(line[:colon]))
	if key == "" || strings.ContainsAny(key, " \t") {
		return "", "", false
	}

	value = strings.TrimSpace(line[colon+1:])
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		value = value[1 : len(value)-1]
	}
	if value == "" {
		return "", "", false
	}
	return key, value, true
}

// derivePeriod synthesizes a display period from start/end fields.
func derivePeriod(start, end string) string {
	switch {
	case start != "" && end != "":
		return start + " - " + end
	case start != "":
		return start
	case end != "":
		return end
	}
	return ""
}

// TitleFromFilename turns a content filename into a display title:
// extension stripped, separators converted to spaces, title-cased.
// "senior-solutions-consultant.md" becomes "Senior Solutions Consultant".
func TitleFromFilename(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return titleCaser.String(base)
}
