// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package verify

import (
	"fmt"
	"os"
	"strings"

	"github.com/petar-djukic/rmodgen/pkg/types"
)

const defaultContextLines = 3

// Format renders diagnostics with numbered source lines around each
// location. Content is taken from sources when the diagnostic's path is a
// key there, and read from disk otherwise. Diagnostics without a line, or
// whose file cannot be read, are listed without context.
func Format(diags []types.Diagnostic, sources map[string]string, contextLines int) string {
	if contextLines <= 0 {
		contextLines = defaultContextLines
	}

	var buf strings.Builder
	for _, d := range diags {
		fmt.Fprintf(&buf, "### %s\n\n", d.String())
		if d.Line == 0 {
			continue
		}

		content, ok := sources[d.FilePath]
		if !ok {
			data, err := os.ReadFile(d.FilePath)
			if err != nil {
				continue
			}
			content = string(data)
		}

		if context := codeContext(content, d.Line, contextLines); context != "" {
			buf.WriteString("```\n")
			buf.WriteString(context)
			buf.WriteString("```\n\n")
		}
	}
	return buf.String()
}

// codeContext returns numbered lines with contextLines above and below the
// error line, which is marked with "> ".
func codeContext(content string, errorLine, contextLines int) string {
	lines := strings.Split(content, "\n")
	if errorLine < 1 || errorLine > len(lines) {
		return ""
	}

	start := max(errorLine-contextLines-1, 0)
	end := min(errorLine+contextLines, len(lines))

	var buf strings.Builder
	for i := start; i < end; i++ {
		lineNum := i + 1
		marker := "  "
		if lineNum == errorLine {
			marker = "> "
		}
		fmt.Fprintf(&buf, "%s%4d │ %s\n", marker, lineNum, lines[i])
	}
	return buf.String()
}
