// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "testing"

func TestNewTheme_KnownNames(t *testing.T) {
	for _, name := range []string{"green", "amber", "mono"} {
		theme := NewTheme(name)
		if theme.Name != name {
			t.Errorf("NewTheme(%q).Name = %q", name, theme.Name)
		}
	}
}

func TestNewTheme_UnknownFallsBackToGreen(t *testing.T) {
	theme := NewTheme("rainbow")
	if theme.Name != "green" {
		t.Errorf("Name = %q, want green", theme.Name)
	}
}

func TestSetSize(t *testing.T) {
	theme := NewTheme("green")
	theme.SetSize(120, 40)
	if theme.Width != 120 || theme.Height != 40 {
		t.Errorf("size = %dx%d", theme.Width, theme.Height)
	}
}
