// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package rust

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// spaces rewrites four-space indentation in a golden string to the unit
// this build was compiled with.
func spaces(s string) string {
	return strings.ReplaceAll(s, "    ", IndentUnit)
}

// assertRender compares a rendering with a golden string and prints a diff.
func assertRender(t *testing.T, want, got string) {
	t.Helper()
	if diff := cmp.Diff(spaces(want), got); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}
