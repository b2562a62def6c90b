// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package content fetches resume sections from a GitHub repository of
// markdown files and shapes them for display.
package content

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// =============================================================================
// SECTION SORT POLICIES
// =============================================================================

// SortItems orders a directory listing in place per the section's policy:
//
//   - Projects: in-progress entries first, then most recent first by
//     timeline (falling back to period), then order, then title.
//   - Experience, Education: most recent first by the end of the period,
//     then order, then title.
//   - Everything else: order ascending, then title.
//
// The sort is stable so equal items keep their listing order.
func SortItems(items []Item, directory string) {
	now := time.Now()

	switch strings.ToLower(directory) {
	case "projects":
		sort.SliceStable(items, func(i, j int) bool {
			pi, pj := projectGroup(items[i]), projectGroup(items[j])
			if pi != pj {
				return pi < pj
			}
			di := ResolveDate(projectDate(items[i]), now)
			dj := ResolveDate(projectDate(items[j]), now)
			if !di.Equal(dj) {
				return di.After(dj)
			}
			return byOrderThenTitle(items[i], items[j])
		})
	case "experience", "education":
		sort.SliceStable(items, func(i, j int) bool {
			di := ResolveDate(items[i].Metadata["period"], now)
			dj := ResolveDate(items[j].Metadata["period"], now)
			if !di.Equal(dj) {
				return di.After(dj)
			}
			return byOrderThenTitle(items[i], items[j])
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			return byOrderThenTitle(items[i], items[j])
		})
	}
}

// projectGroup puts in-progress projects ahead of finished ones.
func projectGroup(it Item) int {
	if strings.EqualFold(strings.TrimSpace(it.Metadata["status"]), "in progress") {
		return 0
	}
	return 1
}

// projectDate picks the field a project is dated by.
func projectDate(it Item) string {
	if tl := it.Metadata["timeline"]; tl != "" {
		return tl
	}
	return it.Metadata["period"]
}

func byOrderThenTitle(a, b Item) bool {
	if a.Order != b.Order {
		return a.Order < b.Order
	}
	return a.Title < b.Title
}

// =============================================================================
// DATE RESOLUTION
// =============================================================================

var yearPattern = regexp.MustCompile(`\b(\d{4})\b`)

// dateLayouts are tried in order for a full parse of the date text.
var dateLayouts = []string{
	"January 2006",
	"Jan 2006",
	"2006-01",
	"2006-01-02",
	"January 2, 2006",
}

// ResolveDate turns free-form resume date text into a comparable instant.
// It is total: every input resolves to some time, so comparisons between
// any two items are always defined.
//
//   - "Present", "Current", "Active" and "In Progress" resolve to now.
//   - A range like "2018 - 2021" resolves by its end segment.
//   - "June 2022" and "2024-01" style values parse directly.
//   - A bare year resolves to December 31 of that year, so "2021" still
//     outranks "June 2021".
//   - Anything unparseable resolves to the epoch and sinks to the bottom
//     of most-recent-first listings.
func ResolveDate(text string, now time.Time) time.Time {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Unix(0, 0).UTC()
	}

	lower := strings.ToLower(text)
	for _, word := range []string{"present", "current", "active", "in progress"} {
		if strings.Contains(lower, word) {
			return now
		}
	}

	// Ranges resolve by their end: take everything after the last " - ".
	if idx := strings.LastIndex(text, " - "); idx >= 0 {
		return ResolveDate(text[idx+3:], now)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t
		}
	}

	// A bare or trailing year counts as the end of that year.
	if matches := yearPattern.FindAllString(text, -1); len(matches) > 0 {
		year, _ := strconv.Atoi(matches[len(matches)-1])
		return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	}

	return time.Unix(0, 0).UTC()
}
