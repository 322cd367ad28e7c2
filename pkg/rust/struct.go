// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package rust

import "strings"

// Struct is a struct declaration with named fields.
type Struct struct {
	name       string
	fields     []Field
	visibility Visibility
	generics   generics
	extra      string
	cfg        string
}

// NewStruct creates an empty private struct.
func NewStruct(name string) Struct {
	return Struct{name: name}
}

// WithField appends a field. Fields render in insertion order.
func (s Struct) WithField(field Field) Struct {
	s.PushField(field)
	return s
}

// WithVisibility sets the visibility prefix of the struct.
func (s Struct) WithVisibility(visibility Visibility) Struct {
	s.SetVisibility(visibility)
	return s
}

// WithTemplate adds a type parameter such as "T".
func (s Struct) WithTemplate(id string) Struct {
	s.PushTemplate(id)
	return s
}

// WithLifetime adds a lifetime parameter. Pass only the identifier:
// "a" renders as 'a.
func (s Struct) WithLifetime(id string) Struct {
	s.PushLifetime(id)
	return s
}

// WithExtra sets text placed between the generic clause and the opening
// brace, typically a where clause.
func (s Struct) WithExtra(extra string) Struct {
	s.SetExtra(extra)
	return s
}

// WithCfg sets a line emitted right above the declaration, typically an
// attribute such as #[derive(Debug)].
func (s Struct) WithCfg(cfg string) Struct {
	s.SetCfg(cfg)
	return s
}

// PushField is the in-place form of WithField.
func (s *Struct) PushField(field Field) {
	s.fields = appendOwned(s.fields, field)
}

// SetVisibility is the in-place form of WithVisibility.
func (s *Struct) SetVisibility(visibility Visibility) {
	s.visibility = visibility
}

// PushTemplate is the in-place form of WithTemplate.
func (s *Struct) PushTemplate(id string) {
	s.generics.pushTemplate(id)
}

// PushLifetime is the in-place form of WithLifetime.
func (s *Struct) PushLifetime(id string) {
	s.generics.pushLifetime(id)
}

// SetExtra is the in-place form of WithExtra.
func (s *Struct) SetExtra(extra string) {
	s.extra = extra
}

// SetCfg is the in-place form of WithCfg.
func (s *Struct) SetCfg(cfg string) {
	s.cfg = cfg
}

// Name returns the struct identifier.
func (s Struct) Name() string { return s.name }

// Fields returns a copy of the field list.
func (s Struct) Fields() []Field { return append([]Field(nil), s.fields...) }

// Kind reports KindStruct.
func (Struct) Kind() Kind { return KindStruct }
func (Struct) component() {}

// Render emits the optional cfg line, the declaration, one line per field
// and the closing brace.
func (s Struct) Render(indent int) string {
	var b strings.Builder
	writeCfg(&b, s.cfg, indent)

	b.WriteString(Indent(indent))
	b.WriteString(s.visibility.prefix())
	b.WriteString("struct ")
	b.WriteString(s.name)
	b.WriteString(s.generics.clause())
	openBrace(&b, s.extra)

	fieldIndent := Indent(indent + 1)
	for _, f := range s.fields {
		b.WriteString(fieldIndent)
		b.WriteString(f.String())
		b.WriteString(",\n")
	}

	closeBrace(&b, indent)
	return b.String()
}

// String is Render at indent level zero.
func (s Struct) String() string { return s.Render(0) }
