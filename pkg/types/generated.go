// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// FileStatus tells what happened to a generated file.
type FileStatus int

const (
	StatusWritten   FileStatus = iota // New content written to disk
	StatusUnchanged                   // Disk content already matched
	StatusSkipped                     // Not written: check failed or dry run
)

func (s FileStatus) String() string {
	switch s {
	case StatusWritten:
		return "written"
	case StatusUnchanged:
		return "unchanged"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// MarshalText lets the status appear by name in JSON results.
func (s FileStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// GeneratedFile describes one output of a generation run.
type GeneratedFile struct {
	Path   string     `json:"path"`             // Output path
	Source string     `json:"source"`           // Model document or Go directory it came from
	Region string     `json:"region,omitempty"` // Marked region spliced, empty for whole files
	Bytes  int        `json:"bytes"`            // Size of the rendered text
	Status FileStatus `json:"status"`
}
