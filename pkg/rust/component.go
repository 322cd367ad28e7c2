// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package rust models Rust source constructs (modules, structs, enums,
// impl blocks, traits, functions, bindings and free text) and renders
// them to formatted source.
//
// Every construct is a plain value. The WithX methods return an updated
// copy so calls can be chained; the SetX and PushX methods mutate in
// place. A child handed to a parent is copied into it, so the model is
// always a tree. Rendering never fails and never validates the embedded
// text fragments (types, bounds, bodies): those are emitted verbatim.
package rust

import "strings"

// Kind tags the concrete construct held by a Component.
type Kind int

const (
	KindModule Kind = iota
	KindStruct
	KindEnum
	KindEnumVariant
	KindMethod
	KindImplementation
	KindTrait
	KindVariable
	KindText
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindModule:
		return "Module"
	case KindStruct:
		return "Struct"
	case KindEnum:
		return "Enum"
	case KindEnumVariant:
		return "EnumVariant"
	case KindMethod:
		return "Method"
	case KindImplementation:
		return "Implementation"
	case KindTrait:
		return "Trait"
	case KindVariable:
		return "Variable"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Component is the closed union of all constructs. Only the types in this
// package implement it.
type Component interface {
	Kind() Kind
	component()
}

// Render renders any construct at the given indent level. Pointers are
// rendered through the value they point to; nil renders as nothing.
func Render(c Component, indent int) string {
	switch v := own(c).(type) {
	case Module:
		return v.Render(indent)
	case Struct:
		return v.Render(indent)
	case Enum:
		return v.Render(indent)
	case StructVariant:
		return v.Render(indent)
	case ValueVariant:
		return v.Render(indent)
	case EmptyVariant:
		return v.Render(indent)
	case Method:
		return v.Render(indent)
	case Implementation:
		return v.Render(indent)
	case Trait:
		return v.Render(indent)
	case Variable:
		return v.Render(indent)
	case Text:
		return v.Render(indent)
	default:
		return ""
	}
}

// own returns c as a plain value. The pointer types also satisfy Component
// through their value methods; they are dereferenced so a parent never
// shares a child with its caller. Nil and typed-nil pointers yield nil.
func own(c Component) Component {
	switch v := c.(type) {
	case *Module:
		return deref(v)
	case *Struct:
		return deref(v)
	case *Enum:
		return deref(v)
	case *StructVariant:
		return deref(v)
	case *ValueVariant:
		return deref(v)
	case *EmptyVariant:
		return deref(v)
	case *Method:
		return deref(v)
	case *Implementation:
		return deref(v)
	case *Trait:
		return deref(v)
	case *Variable:
		return deref(v)
	case *Text:
		return deref(v)
	default:
		return c
	}
}

func deref[T Component](p *T) Component {
	if p == nil {
		return nil
	}
	return *p
}

// appendComponent appends the owned form of c, dropping nil.
func appendComponent(list []Component, c Component) []Component {
	if c = own(c); c == nil {
		return list
	}
	return appendOwned(list, c)
}

// ownComponents copies a component list into owned values.
func ownComponents(components []Component) []Component {
	var out []Component
	for _, c := range components {
		out = appendComponent(out, c)
	}
	return out
}

// writeChildren renders children one after another, separated by a blank
// line. No separator follows the last child.
func writeChildren(b *strings.Builder, children []Component, indent int) {
	for i, c := range children {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(terminated(Render(c, indent)))
	}
}

// writeCfg emits the raw attribute line that precedes a declaration.
func writeCfg(b *strings.Builder, cfg string, indent int) {
	if cfg == "" {
		return
	}
	b.WriteString(Indent(indent))
	b.WriteString(cfg)
	b.WriteByte('\n')
}

// openBrace finishes a declaration line with optional extra text and "{".
func openBrace(b *strings.Builder, extra string) {
	if extra != "" {
		b.WriteByte(' ')
		b.WriteString(extra)
	}
	b.WriteString(" {\n")
}

// closeBrace writes the closing brace line of a block.
func closeBrace(b *strings.Builder, indent int) {
	b.WriteString(Indent(indent))
	b.WriteString("}\n")
}
