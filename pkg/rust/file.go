// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package rust

import "strings"

// File assembles a whole source file: doc comment, imports, free text and
// root components, in that order.
type File struct {
	components []Component
	imports    []string
	docstring  string
	top        string
	bottom     string
}

// NewFile creates an empty file.
func NewFile() File {
	return File{}
}

// WithComponents replaces all root components.
func (f File) WithComponents(components []Component) File {
	f.components = ownComponents(components)
	return f
}

// WithComponent appends a root component.
func (f File) WithComponent(c Component) File {
	f.PushComponent(c)
	return f
}

// WithImports replaces all imports.
func (f File) WithImports(imports []string) File {
	f.imports = append([]string(nil), imports...)
	return f
}

// WithImport appends an import line such as "use std::fmt".
func (f File) WithImport(imp string) File {
	f.PushImport(imp)
	return f
}

// WithDocstring sets the file documentation. Pass plain text; every line
// is prefixed with the inner doc comment marker when rendering.
func (f File) WithDocstring(doc string) File {
	f.SetDocstring(doc)
	return f
}

// WithTop sets free text placed after the imports.
func (f File) WithTop(text string) File {
	f.SetTop(text)
	return f
}

// WithBottom sets free text placed after the components.
func (f File) WithBottom(text string) File {
	f.SetBottom(text)
	return f
}

// PushComponent appends a child in place. A pointer is copied and a nil child is skipped.
func (f *File) PushComponent(c Component) {
	f.components = appendComponent(f.components, c)
}

// PushImport is the in-place form of WithImport.
func (f *File) PushImport(imp string) {
	f.imports = appendOwned(f.imports, imp)
}

// SetDocstring is the in-place form of WithDocstring.
func (f *File) SetDocstring(doc string) { f.docstring = doc }

// SetTop is the in-place form of WithTop.
func (f *File) SetTop(text string) { f.top = text }

// SetBottom is the in-place form of WithBottom.
func (f *File) SetBottom(text string) { f.bottom = text }

// Components returns a copy of the root components.
func (f File) Components() []Component { return append([]Component(nil), f.components...) }

// Render produces the file contents. Non-empty sections are separated by
// one blank line, root components are rendered at level 0 and separated
// from each other the same way, and the result ends in a single newline.
func (f File) Render() string {
	var sections []string

	if f.docstring != "" {
		sections = append(sections, docComment(f.docstring))
	}

	if len(f.imports) > 0 {
		imports := make([]string, len(f.imports))
		for i, imp := range f.imports {
			imports[i] = imp + ";"
		}
		sections = append(sections, strings.Join(imports, "\n"))
	}

	if f.top != "" {
		sections = append(sections, strings.TrimRight(f.top, "\n"))
	}

	for _, c := range f.components {
		sections = append(sections, strings.TrimSuffix(terminated(Render(c, 0)), "\n"))
	}

	if f.bottom != "" {
		sections = append(sections, strings.TrimRight(f.bottom, "\n"))
	}

	if len(sections) == 0 {
		return ""
	}
	return strings.Join(sections, "\n\n") + "\n"
}

// String returns Render().
func (f File) String() string { return f.Render() }

// docComment prefixes every line with "//! ". Empty lines get a bare "//!".
func docComment(doc string) string {
	lines := strings.Split(strings.TrimSuffix(doc, "\n"), "\n")
	for i, l := range lines {
		if l == "" {
			lines[i] = "//!"
			continue
		}
		lines[i] = "//! " + l
	}
	return strings.Join(lines, "\n")
}
