// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package rust

import (
	"slices"
	"strings"
)

// Indent returns the prefix for the given nesting depth: level copies of
// IndentUnit. Negative levels are treated as zero.
func Indent(level int) string {
	if level <= 0 {
		return ""
	}
	return strings.Repeat(IndentUnit, level)
}

// appendOwned appends to s without ever writing into a backing array that a
// copy of the owning construct may still reference.
func appendOwned[T any](s []T, v ...T) []T {
	return append(slices.Clip(s), v...)
}

// terminated makes sure a rendered child ends its last line.
func terminated(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
