// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package rust

import (
	"strconv"
	"strings"
)

// Enum is an enum declaration.
type Enum struct {
	name       string
	variants   []EnumVariant
	visibility Visibility
	generics   generics
	extra      string
	cfg        string
}

// NewEnum creates an empty private enum.
func NewEnum(name string) Enum {
	return Enum{name: name}
}

// WithVariant appends a variant.
func (e Enum) WithVariant(variant EnumVariant) Enum {
	e.PushVariant(variant)
	return e
}

// WithVisibility sets the visibility prefix of the enum.
func (e Enum) WithVisibility(visibility Visibility) Enum {
	e.SetVisibility(visibility)
	return e
}

// WithTemplate adds a type parameter such as "T".
func (e Enum) WithTemplate(id string) Enum {
	e.PushTemplate(id)
	return e
}

// WithLifetime adds a lifetime parameter given without the apostrophe.
func (e Enum) WithLifetime(id string) Enum {
	e.PushLifetime(id)
	return e
}

// WithExtra sets text placed before the opening brace, typically a where clause.
func (e Enum) WithExtra(extra string) Enum {
	e.SetExtra(extra)
	return e
}

// WithCfg sets the attribute line emitted above the declaration.
func (e Enum) WithCfg(cfg string) Enum {
	e.SetCfg(cfg)
	return e
}

// PushVariant is the in-place form of WithVariant.
func (e *Enum) PushVariant(variant EnumVariant) {
	e.variants = appendOwned(e.variants, variant)
}

// SetVisibility is the in-place form of WithVisibility.
func (e *Enum) SetVisibility(visibility Visibility) {
	e.visibility = visibility
}

// PushTemplate is the in-place form of WithTemplate.
func (e *Enum) PushTemplate(id string) {
	e.generics.pushTemplate(id)
}

// PushLifetime is the in-place form of WithLifetime.
func (e *Enum) PushLifetime(id string) {
	e.generics.pushLifetime(id)
}

// SetExtra is the in-place form of WithExtra.
func (e *Enum) SetExtra(extra string) {
	e.extra = extra
}

// SetCfg is the in-place form of WithCfg.
func (e *Enum) SetCfg(cfg string) {
	e.cfg = cfg
}

// Name returns the enum identifier.
func (e Enum) Name() string { return e.name }

// Variants returns a copy of the variant list.
func (e Enum) Variants() []EnumVariant { return append([]EnumVariant(nil), e.variants...) }

// Kind reports KindEnum.
func (Enum) Kind() Kind { return KindEnum }
func (Enum) component() {}

// Render emits the optional cfg line, the declaration, each variant one
// level deeper and the closing brace.
func (e Enum) Render(indent int) string {
	var b strings.Builder
	writeCfg(&b, e.cfg, indent)

	b.WriteString(Indent(indent))
	b.WriteString(e.visibility.prefix())
	b.WriteString("enum ")
	b.WriteString(e.name)
	b.WriteString(e.generics.clause())
	openBrace(&b, e.extra)

	for _, v := range e.variants {
		b.WriteString(terminated(Render(v, indent+1)))
	}

	closeBrace(&b, indent)
	return b.String()
}

// String is Render at indent level zero.
func (e Enum) String() string { return e.Render(0) }

// EnumVariant is one case of an enum: a StructVariant, ValueVariant or
// EmptyVariant. Variants render as a single entry ending in a comma and
// without a trailing newline.
type EnumVariant interface {
	Component
	VariantName() string
	variant()
}

// StructVariant is a variant with named fields: Name { field: type, }.
// Field visibility is ignored when rendering.
type StructVariant struct {
	name   string
	fields []Field
}

// ValueVariant is a tuple-like variant: Name(type, type).
type ValueVariant struct {
	name  string
	types []string
}

// EmptyVariant is a unit variant: Name.
type EmptyVariant struct {
	name string
}

// NewStructVariant creates a variant with named fields.
func NewStructVariant(name string, fields ...Field) StructVariant {
	return StructVariant{name: name, fields: append([]Field(nil), fields...)}
}

// NewValueVariant creates a tuple-like variant.
func NewValueVariant(name string, types ...string) ValueVariant {
	return ValueVariant{name: name, types: append([]string(nil), types...)}
}

// NewEmptyVariant creates a unit variant.
func NewEmptyVariant(name string) EmptyVariant {
	return EmptyVariant{name: name}
}

// VariantName returns the variant identifier.
func (v StructVariant) VariantName() string { return v.name }

// VariantName returns the variant identifier.
func (v ValueVariant) VariantName() string { return v.name }

// VariantName returns the variant identifier.
func (v EmptyVariant) VariantName() string { return v.name }

// Fields returns a copy of the named fields.
func (v StructVariant) Fields() []Field { return append([]Field(nil), v.fields...) }

// Types returns a copy of the value types.
func (v ValueVariant) Types() []string { return append([]string(nil), v.types...) }

// Kind reports KindEnumVariant.
func (StructVariant) Kind() Kind { return KindEnumVariant }

// Kind reports KindEnumVariant.
func (ValueVariant) Kind() Kind { return KindEnumVariant }

// Kind reports KindEnumVariant.
func (EmptyVariant) Kind() Kind { return KindEnumVariant }

func (StructVariant) component() {}
func (ValueVariant) component() {}
func (EmptyVariant) component() {}

func (StructVariant) variant() {}
func (ValueVariant) variant() {}
func (EmptyVariant) variant() {}

// Render emits the variant with one field per line.
func (v StructVariant) Render(indent int) string {
	var b strings.Builder
	b.WriteString(Indent(indent))
	b.WriteString(v.name)
	b.WriteString(" {\n")

	fieldIndent := Indent(indent + 1)
	for _, f := range v.fields {
		b.WriteString(fieldIndent)
		b.WriteString(f.bare())
		b.WriteString(",\n")
	}

	b.WriteString(Indent(indent))
	b.WriteString("},")
	return b.String()
}

// Render emits Name(T, U), on one line.
func (v ValueVariant) Render(indent int) string {
	return Indent(indent) + v.name + "(" + strings.Join(v.types, ", ") + "),"
}

// Render emits the bare name followed by a comma.
func (v EmptyVariant) Render(indent int) string {
	return Indent(indent) + v.name + ","
}

// String is Render at indent level zero.
func (v StructVariant) String() string { return v.Render(0) }

// String is Render at indent level zero.
func (v ValueVariant) String() string { return v.Render(0) }

// String is Render at indent level zero.
func (v EmptyVariant) String() string { return v.Render(0) }

// VariantBuilder infers a variant's shape from what was added to it. Adding
// any named field makes a StructVariant; adding only values makes a
// ValueVariant; adding nothing makes an EmptyVariant.
//
// Mixing PushField and PushValue on one builder is a caller error. The
// result is then a StructVariant in which each value appears as a field
// named by its position.
type VariantBuilder struct {
	name          string
	structVariant bool
	entries       []variantEntry
}

type variantEntry struct {
	name string
	typ  string
}

// BuildVariant starts a variant builder.
func BuildVariant(name string) *VariantBuilder {
	return &VariantBuilder{name: name}
}

// WithField adds a named field, which makes the result a StructVariant.
func (vb *VariantBuilder) WithField(name, typ string) *VariantBuilder {
	vb.PushField(name, typ)
	return vb
}

// WithValue adds an unnamed value.
func (vb *VariantBuilder) WithValue(typ string) *VariantBuilder {
	vb.PushValue(typ)
	return vb
}

// PushField is the in-place form of WithField.
func (vb *VariantBuilder) PushField(name, typ string) {
	vb.structVariant = true
	vb.entries = append(vb.entries, variantEntry{name: name, typ: typ})
}

// PushValue adds an unnamed entry; it is named after its position.
func (vb *VariantBuilder) PushValue(typ string) {
	vb.entries = append(vb.entries, variantEntry{name: strconv.Itoa(len(vb.entries)), typ: typ})
}

// Build returns the variant. The builder may keep being used afterwards.
func (vb *VariantBuilder) Build() EnumVariant {
	if vb.structVariant {
		fields := make([]Field, 0, len(vb.entries))
		for _, e := range vb.entries {
			fields = append(fields, PrivateField(e.name, e.typ))
		}
		return StructVariant{name: vb.name, fields: fields}
	}

	if len(vb.entries) == 0 {
		return EmptyVariant{name: vb.name}
	}

	types := make([]string, 0, len(vb.entries))
	for _, e := range vb.entries {
		types = append(types, e.typ)
	}
	return ValueVariant{name: vb.name, types: types}
}
