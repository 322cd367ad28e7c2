// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package rust

import "strings"

// VariableKind selects the binding keyword.
type VariableKind int

const (
	Let    VariableKind = iota // let, for bindings inside a body
	Const                      // const item
	Static                     // static item
)

// String returns the Rust keyword for the kind.
func (k VariableKind) String() string {
	switch k {
	case Const:
		return "const"
	case Static:
		return "static"
	default:
		return "let"
	}
}

// Variable is a let, const or static binding.
type Variable struct {
	kind       VariableKind
	name       string
	value      string
	typ        string
	mutable    bool
	visibility Visibility
}

// NewVariable creates a binding of the given kind.
func NewVariable(kind VariableKind, name string) Variable {
	return Variable{kind: kind, name: name}
}

// NewLet creates a let binding.
func NewLet(name string) Variable { return NewVariable(Let, name) }

// NewConst creates a const item.
func NewConst(name string) Variable { return NewVariable(Const, name) }

// NewStatic creates a static item.
func NewStatic(name string) Variable { return NewVariable(Static, name) }

// WithValue sets the initializer. An empty value omits " = ".
func (v Variable) WithValue(value string) Variable {
	v.SetValue(value)
	return v
}

// WithType sets the type annotation.
func (v Variable) WithType(typ string) Variable {
	v.SetType(typ)
	return v
}

// WithMut marks a let binding mutable.
func (v Variable) WithMut(mutable bool) Variable {
	v.SetMut(mutable)
	return v
}

// WithVisibility sets the visibility prefix of the binding.
func (v Variable) WithVisibility(visibility Visibility) Variable {
	v.SetVisibility(visibility)
	return v
}

// SetValue is the in-place form of WithValue.
func (v *Variable) SetValue(value string) { v.value = value }

// SetType is the in-place form of WithType.
func (v *Variable) SetType(typ string) { v.typ = typ }

// SetMut is the in-place form of WithMut.
func (v *Variable) SetMut(mutable bool) { v.mutable = mutable }

// SetVisibility is the in-place form of WithVisibility.
func (v *Variable) SetVisibility(visibility Visibility) { v.visibility = visibility }

// Name returns the binding identifier.
func (v Variable) Name() string { return v.name }

// VariableKind returns the binding keyword.
func (v Variable) VariableKind() VariableKind { return v.kind }

// Kind reports KindVariable.
func (Variable) Kind() Kind { return KindVariable }
func (Variable) component() {}

// Render emits a single line without a trailing newline:
// [vis ]let|const|static [mut ]name[: type][ = value];
func (v Variable) Render(indent int) string {
	var b strings.Builder
	b.WriteString(Indent(indent))
	b.WriteString(v.visibility.prefix())
	b.WriteString(v.kind.String())
	b.WriteByte(' ')
	if v.mutable {
		b.WriteString("mut ")
	}
	b.WriteString(v.name)
	if v.typ != "" {
		b.WriteString(": ")
		b.WriteString(v.typ)
	}
	if v.value != "" {
		b.WriteString(" = ")
		b.WriteString(v.value)
	}
	b.WriteByte(';')
	return b.String()
}

// String is Render at indent level zero.
func (v Variable) String() string { return v.Render(0) }
