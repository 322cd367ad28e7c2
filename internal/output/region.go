// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package output

import (
	"errors"
	"fmt"
	"strings"

	"github.com/petar-djukic/rmodgen/internal/textmatch"
)

const (
	beginMarker = "// rmodgen:begin "
	endMarker   = "// rmodgen:end "
)

// ErrRegionNotFound is returned when a file has no region of the requested
// name.
var ErrRegionNotFound = errors.New("region not found")

// MarkerError describes malformed region markers.
type MarkerError struct {
	Line    int    // 1-based line of the offending marker
	Name    string // Region name on the marker
	Message string // What went wrong
}

func (e *MarkerError) Error() string {
	return fmt.Sprintf("marker error at line %d (region %q): %s", e.Line, e.Name, e.Message)
}

// Region is a marked span of a file. Begin and End are the 1-based lines
// of the two markers.
type Region struct {
	Name   string
	Begin  int
	End    int
	Indent string // Leading whitespace of the begin marker
}

// BeginMarker returns the line that opens the named region.
func BeginMarker(name string) string { return beginMarker + name }

// EndMarker returns the line that closes the named region.
func EndMarker(name string) string { return endMarker + name }

// Regions lists the marked regions of content in file order. Markers must
// pair up by name, may not nest and may not repeat a name.
func Regions(content string) ([]Region, error) {
	var regions []Region
	var open *Region
	seen := make(map[string]bool)

	for i, line := range splitLines(content) {
		trimmed := strings.TrimSpace(line)
		lineNo := i + 1

		if name, ok := strings.CutPrefix(trimmed, beginMarker); ok {
			name = strings.TrimSpace(name)
			switch {
			case open != nil:
				return nil, &MarkerError{Line: lineNo, Name: name, Message: fmt.Sprintf("nested inside region %q", open.Name)}
			case seen[name]:
				return nil, &MarkerError{Line: lineNo, Name: name, Message: "duplicate region"}
			}
			seen[name] = true
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			open = &Region{Name: name, Begin: lineNo, Indent: indent}
			continue
		}

		if name, ok := strings.CutPrefix(trimmed, endMarker); ok {
			name = strings.TrimSpace(name)
			if open == nil || open.Name != name {
				return nil, &MarkerError{Line: lineNo, Name: name, Message: "end marker without matching begin"}
			}
			open.End = lineNo
			regions = append(regions, *open)
			open = nil
		}
	}

	if open != nil {
		return nil, &MarkerError{Line: open.Begin, Name: open.Name, Message: "unterminated region"}
	}
	return regions, nil
}

// Splice replaces the body of the named region with generated text. The
// markers stay in place and every non-empty generated line is indented
// like the begin marker. Text outside the region is untouched.
func Splice(content, name, generated string) (string, error) {
	regions, err := Regions(content)
	if err != nil {
		return "", err
	}

	var target *Region
	names := make([]string, 0, len(regions))
	for i := range regions {
		names = append(names, regions[i].Name)
		if regions[i].Name == name {
			target = &regions[i]
		}
	}
	if target == nil {
		if best, ok := textmatch.Closest(name, names, textmatch.DefaultThreshold); ok {
			return "", fmt.Errorf("%w: %q (did you mean %q?)", ErrRegionNotFound, name, best)
		}
		return "", fmt.Errorf("%w: %q", ErrRegionNotFound, name)
	}

	lines := splitLines(content)
	var b strings.Builder
	for _, l := range lines[:target.Begin] {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	if generated != "" {
		for _, l := range strings.Split(strings.TrimSuffix(generated, "\n"), "\n") {
			if l != "" {
				b.WriteString(target.Indent)
				b.WriteString(l)
			}
			b.WriteByte('\n')
		}
	}
	for i, l := range lines[target.End-1:] {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(l)
	}
	if strings.HasSuffix(content, "\n") {
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// splitLines splits content into lines without a phantom empty line after
// a final newline.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}
