// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package rust

// Text is verbatim source for anything the model does not represent.
type Text struct {
	text string
}

// NewText wraps raw source text.
func NewText(text string) Text {
	return Text{text: text}
}

// Kind reports KindText.
func (Text) Kind() Kind { return KindText }
func (Text) component() {}

// Render prefixes the text with indentation and otherwise leaves it alone:
// only the first line is indented and no newline is added.
func (t Text) Render(indent int) string {
	return Indent(indent) + t.text
}

// String is Render at indent level zero.
func (t Text) String() string { return t.Render(0) }
