// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines shared types used across rmodgen packages.
package types

import "fmt"

// Severity ranks a diagnostic.
type Severity int

const (
	SeverityError   Severity = iota // Blocks the write
	SeverityWarning                 // Reported, does not block
	SeverityNote                    // Informational
)

// String returns the lowercase name used in compiler output.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNote:
		return "note"
	default:
		return "unknown"
	}
}

// MarshalText lets the severity appear by name in JSON results.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseSeverity maps a compiler label such as "error" or "warning" to a
// Severity. Unknown labels are treated as errors.
func ParseSeverity(label string) Severity {
	switch label {
	case "warning":
		return SeverityWarning
	case "note", "help":
		return SeverityNote
	default:
		return SeverityError
	}
}

// Diagnostic is a problem found in generated source, either by the
// in-process syntax check or by an external check command.
type Diagnostic struct {
	Source   string   `json:"source"`           // Producer: "syntax" or the check command name
	FilePath string   `json:"path,omitempty"`   // File the diagnostic refers to (empty for in-memory text)
	Line     int      `json:"line,omitempty"`   // 1-based line, 0 if unknown
	Column   int      `json:"column,omitempty"` // 1-based column, 0 if unknown
	Severity Severity `json:"severity"`         // Error, warning or note
	Message  string   `json:"message"`          // Human-readable description
}

// String formats the diagnostic as path:line:col: severity: message,
// omitting the location parts that are unknown.
func (d Diagnostic) String() string {
	loc := d.FilePath
	if d.Line > 0 {
		loc = fmt.Sprintf("%s:%d", loc, d.Line)
		if d.Column > 0 {
			loc = fmt.Sprintf("%s:%d", loc, d.Column)
		}
	}
	if loc == "" {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", loc, d.Severity, d.Message)
}

// HasErrors reports whether any diagnostic has error severity.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
