// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"

	"github.com/joshua-lossner/lossner-term/internal/session"
)

func TestIsPrefix(t *testing.T) {
	a := []session.Line{{Text: "one"}, {Text: "two"}}
	grown := []session.Line{{Text: "one"}, {Text: "two"}, {Text: "three"}}
	rebuilt := []session.Line{{Text: "banner"}, {Text: "two"}, {Text: "three"}}

	if !isPrefix(nil, a) {
		t.Error("empty must prefix anything")
	}
	if !isPrefix(a, grown) {
		t.Error("appended scrollback must keep its prefix")
	}
	if isPrefix(a, rebuilt) {
		t.Error("rebuilt screen must not count as a prefix")
	}
	if isPrefix(grown, a) {
		t.Error("longer shown than scrollback must not be a prefix")
	}
}
