// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package content fetches resume sections from a GitHub repository of
// markdown files and shapes them for display.
package content

import (
	"testing"
	"time"
)

// =============================================================================
// DATE RESOLUTION TESTS
// =============================================================================

func TestResolveDate(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		input string
		want  time.Time
	}{
		{"Present", now},
		{"current", now},
		{"In Progress", now},
		{"2021 - Present", now},
		{"2018 - 2021", time.Date(2021, time.December, 31, 0, 0, 0, 0, time.UTC)},
		{"June 2022", time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-01", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{"2021", time.Date(2021, time.December, 31, 0, 0, 0, 0, time.UTC)},
		{"June 2020 - May 2023", time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC)},
		{"", time.Unix(0, 0).UTC()},
		{"whenever", time.Unix(0, 0).UTC()},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got := ResolveDate(tc.input, now)
			if !got.Equal(tc.want) {
				t.Errorf("ResolveDate(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

// A bare year must outrank any month within that year.
func TestResolveDate_BareYearOutranksMonths(t *testing.T) {
	now := time.Now()
	year := ResolveDate("2021", now)
	june := ResolveDate("June 2021", now)
	if !year.After(june) {
		t.Errorf("bare year %v should be after June of that year %v", year, june)
	}
}

// =============================================================================
// SECTION SORT TESTS
// =============================================================================

func titles(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}

func assertOrder(t *testing.T, items []Item, want ...string) {
	t.Helper()
	got := titles(items)
	if len(got) != len(want) {
		t.Fatalf("got %d items %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}

func TestSortItems_ExperienceMostRecentFirst(t *testing.T) {
	items := []Item{
		{Title: "Senior Solutions Consultant", Order: 2, Metadata: map[string]string{"period": "2018 - 2021"}},
		{Title: "DevOps Engineer", Order: 1, Metadata: map[string]string{"period": "2021 - Present"}},
		{Title: "Junior Developer", Order: 3, Metadata: map[string]string{"period": "2015 - 2018"}},
	}
	SortItems(items, "Experience")
	assertOrder(t, items, "DevOps Engineer", "Senior Solutions Consultant", "Junior Developer")
}

func TestSortItems_ProjectsInProgressFirst(t *testing.T) {
	items := []Item{
		{Title: "Finished Recent", Metadata: map[string]string{"status": "Completed", "timeline": "2024 - 2025"}},
		{Title: "Active Old", Metadata: map[string]string{"status": "In Progress", "timeline": "2020 - Present"}},
		{Title: "Finished Old", Metadata: map[string]string{"status": "Completed", "timeline": "2019 - 2020"}},
	}
	SortItems(items, "Projects")
	assertOrder(t, items, "Active Old", "Finished Recent", "Finished Old")
}

func TestSortItems_ProjectsTimelineBeatsPeriod(t *testing.T) {
	items := []Item{
		{Title: "By Period", Metadata: map[string]string{"period": "2024"}},
		{Title: "By Timeline", Metadata: map[string]string{"timeline": "2025", "period": "2019"}},
	}
	SortItems(items, "Projects")
	assertOrder(t, items, "By Timeline", "By Period")
}

func TestSortItems_DefaultOrderThenTitle(t *testing.T) {
	items := []Item{
		{Title: "Zeta", Order: 1},
		{Title: "Alpha", Order: 2},
		{Title: "Beta", Order: 1},
	}
	SortItems(items, "Skills")
	assertOrder(t, items, "Beta", "Zeta", "Alpha")
}

func TestSortItems_UndatedSinksLast(t *testing.T) {
	items := []Item{
		{Title: "Undated", Metadata: map[string]string{}},
		{Title: "Dated", Metadata: map[string]string{"period": "2010 - 2012"}},
	}
	SortItems(items, "Education")
	assertOrder(t, items, "Dated", "Undated")
}

// =============================================================================
// FALLBACK DATA TESTS
// =============================================================================

func TestFallbackItems_ExperiencePair(t *testing.T) {
	items := FallbackItems("Experience")
	assertOrder(t, items, "DevOps Engineer", "Senior Solutions Consultant")
}

func TestFallbackItems_CopiesAreIndependent(t *testing.T) {
	a := FallbackItems("Experience")
	a[0].Metadata["period"] = "mutated"
	b := FallbackItems("Experience")
	if b[0].Metadata["period"] == "mutated" {
		t.Error("fallback tables must not be shared with callers")
	}
}

func TestFallbackItems_EverySectionNonEmpty(t *testing.T) {
	for _, dir := range Directories {
		if len(FallbackItems(dir)) == 0 {
			t.Errorf("section %q has no fallback listing", dir)
		}
	}
}

func TestFallbackFile_KnownAndUnknown(t *testing.T) {
	known := FallbackFile("About", "about.md")
	if known.Title != "About" || known.Content == placeholderBody {
		t.Errorf("known file should carry its real body, got title %q", known.Title)
	}

	unknown := FallbackFile("Experience", "never-existed.md")
	if unknown.Content != placeholderBody {
		t.Errorf("unknown file should get the placeholder body")
	}
	if unknown.Title != "Never Existed" {
		t.Errorf("unknown file title = %q", unknown.Title)
	}
}
