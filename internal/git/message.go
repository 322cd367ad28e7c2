// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"fmt"
	"strings"
)

const (
	maxSubjectLength = 72
	subjectPrefix    = "chore(rmodgen): regenerate "
)

// GenerateMessage creates a conventional commit message for a generation
// run: a "chore(rmodgen): regenerate <summary>" subject, a body listing
// the generated files and the Generated-By trailer.
func GenerateMessage(summary string, files []string) string {
	msg := buildSubject(summary, files)
	if body := buildBody(files); body != "" {
		msg += "\n\n" + body
	}
	msg += "\n\n" + generatedTrailer
	return msg
}

// buildSubject creates the first line of the commit message, at most 72
// characters. Without a summary the file count is used.
func buildSubject(summary string, files []string) string {
	summary = strings.TrimRight(strings.TrimSpace(summary), ".")
	if summary == "" {
		switch len(files) {
		case 1:
			summary = files[0]
		default:
			summary = fmt.Sprintf("%d files", len(files))
		}
	}

	subject := subjectPrefix + summary
	if len(subject) > maxSubjectLength {
		subject = subject[:maxSubjectLength-3] + "..."
	}
	return subject
}

// buildBody creates the commit body listing generated files.
func buildBody(files []string) string {
	if len(files) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString("Generated files:\n")
	for _, f := range files {
		fmt.Fprintf(&buf, "- %s\n", f)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
