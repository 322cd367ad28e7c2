// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package output

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Changed reports whether writing next over prev would modify the file.
func Changed(prev, next string) bool {
	return prev != next
}

// Diff returns a line diff of prev against next. Every line is prefixed
// with "-" (removed), "+" (added) or " " (kept). Identical inputs give "".
func Diff(prev, next string) string {
	if !Changed(prev, next) {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(prev, next)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			out.WriteString(prefix)
			out.WriteString(line)
			out.WriteByte('\n')
		}
	}
	return out.String()
}

// DiffStats counts added and removed lines between prev and next.
func DiffStats(prev, next string) (added, removed int) {
	for _, line := range splitLines(Diff(prev, next)) {
		switch line[0] {
		case '+':
			added++
		case '-':
			removed++
		}
	}
	return added, removed
}
