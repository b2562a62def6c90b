// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package frontmatter extracts the delimited metadata header from markdown
// content files.
package frontmatter

import (
	"strings"
	"testing"
)

// =============================================================================
// HEADER PARSING TESTS
// =============================================================================

func TestParse_FullHeader(t *testing.T) {
	raw := `---
title: "Senior Software Engineer"
company: Tech Innovations Inc.
period: 2021 - Present
order: 1
location: San Francisco, CA
---

# Role

Lead architect for the microservices migration.`

	doc := Parse(raw)

	if doc.Title != "Senior Software Engineer" {
		t.Errorf("Title = %q", doc.Title)
	}
	if doc.Order != 1 {
		t.Errorf("Order = %d, want 1", doc.Order)
	}
	if doc.Metadata["company"] != "Tech Innovations Inc." {
		t.Errorf("company = %q", doc.Metadata["company"])
	}
	if doc.Metadata["period"] != "2021 - Present" {
		t.Errorf("period = %q", doc.Metadata["period"])
	}
	if doc.Metadata["location"] != "San Francisco, CA" {
		t.Errorf("location = %q", doc.Metadata["location"])
	}
	if _, ok := doc.Metadata["title"]; ok {
		t.Error("title should be promoted out of metadata")
	}
	if strings.Contains(doc.Body, Marker) || strings.Contains(doc.Body, "company:") {
		t.Errorf("body still contains header content: %q", doc.Body)
	}
	if !strings.Contains(doc.Body, "# Role") {
		t.Errorf("body lost content: %q", doc.Body)
	}
}

func TestParse_NoHeader(t *testing.T) {
	raw := "# Just markdown\n\nNo frontmatter here."
	doc := Parse(raw)

	if doc.Body != raw {
		t.Errorf("body should be the whole input, got %q", doc.Body)
	}
	if len(doc.Metadata) != 0 {
		t.Errorf("metadata should be empty, got %v", doc.Metadata)
	}
	if doc.Order != DefaultOrder {
		t.Errorf("Order = %d, want %d", doc.Order, DefaultOrder)
	}
}

func TestParse_UnclosedHeader(t *testing.T) {
	raw := "---\ntitle: Broken\nNo closing marker."
	doc := Parse(raw)

	if doc.Title != "" {
		t.Errorf("unclosed header should not parse, Title = %q", doc.Title)
	}
	if doc.Body != raw {
		t.Errorf("body should be the whole input")
	}
}

// Values must be matched per-line: a field's value must never swallow the
// following line.
func TestParse_AnchoredPerLine(t *testing.T) {
	raw := "---\ncompany: Digital Solutions Corp\nperiod: 2018 - 2021\n---\nbody"
	doc := Parse(raw)

	if strings.Contains(doc.Metadata["company"], "period") {
		t.Errorf("company bled into next line: %q", doc.Metadata["company"])
	}
	if doc.Metadata["period"] != "2018 - 2021" {
		t.Errorf("period = %q", doc.Metadata["period"])
	}
}

func TestParse_OrderUnparseable(t *testing.T) {
	raw := "---\norder: soon\n---\nbody"
	doc := Parse(raw)
	if doc.Order != DefaultOrder {
		t.Errorf("Order = %d, want default %d", doc.Order, DefaultOrder)
	}
}

func TestParse_SchoolAndInstitution(t *testing.T) {
	testCases := []struct {
		name   string
		header string
		want   string
	}{
		{"school wins when last", "institution: Stanford University\nschool: UC Berkeley", "UC Berkeley"},
		{"institution wins when last", "school: UC Berkeley\ninstitution: Stanford University", "Stanford University"},
		{"school alone", "school: UC Berkeley", "UC Berkeley"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc := Parse("---\n" + tc.header + "\n---\nbody")
			if doc.Metadata["institution"] != tc.want {
				t.Errorf("institution = %q, want %q", doc.Metadata["institution"], tc.want)
			}
		})
	}
}

// =============================================================================
// DERIVED PERIOD TESTS
// =============================================================================

func TestParse_DerivedPeriod(t *testing.T) {
	testCases := []struct {
		name   string
		header string
		want   string
	}{
		{"start and end", "start: June 2022\nend: May 2024", "June 2022 - May 2024"},
		{"start only", "start: June 2022", "June 2022"},
		{"end only", "end: May 2024", "May 2024"},
		{"explicit period wins", "start: June 2022\nend: May 2024\nperiod: 2022 - Present", "2022 - Present"},
		{"explicit period wins regardless of order", "period: 2022 - Present\nstart: June 2022", "2022 - Present"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc := Parse("---\n" + tc.header + "\n---\nbody")
			if doc.Metadata["period"] != tc.want {
				t.Errorf("period = %q, want %q", doc.Metadata["period"], tc.want)
			}
		})
	}
}

// =============================================================================
// LINE MATCHING TESTS
// =============================================================================

func TestParseLine(t *testing.T) {
	testCases := []struct {
		line  string
		key   string
		value string
		ok    bool
	}{
		{"title: Hello", "title", "Hello", true},
		{`title: "Quoted Value"`, "title", "Quoted Value", true},
		{"Status: In Progress", "status", "In Progress", true},
		{"timeline: 2024-01", "timeline", "2024-01", true},
		{"no colon here", "", "", false},
		{": empty key", "", "", false},
		{"key:", "", "", false},
		{"spaced key: v", "", "", false},
		{"url: https://example.com", "url", "https://example.com", true},
	}

	for _, tc := range testCases {
		t.Run(tc.line, func(t *testing.T) {
			key, value, ok := parseLine(tc.line)
			if ok != tc.ok || key != tc.key || value != tc.value {
				t.Errorf("parseLine(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tc.line, key, value, ok, tc.key, tc.value, tc.ok)
			}
		})
	}
}

// =============================================================================
// FILENAME TITLE TESTS
// =============================================================================

func TestTitleFromFilename(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"senior-solutions-consultant.md", "Senior Solutions Consultant"},
		{"devops_engineer.md", "Devops Engineer"},
		{"about.md", "About"},
		{"cloud-architecture", "Cloud Architecture"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := TitleFromFilename(tc.input)
			if result != tc.expected {
				t.Errorf("TitleFromFilename(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}
