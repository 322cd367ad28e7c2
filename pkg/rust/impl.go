// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package rust

import "strings"

// Implementation is an impl block. Generic parameters are tracked
// separately for the impl<...> side and for the target type.
type Implementation struct {
	name       string
	components []Component
	impl       generics
	target     generics
	extra      string
}

// NewImplementation creates an inherent impl block for the named type.
func NewImplementation(name string) Implementation {
	return Implementation{name: name}
}

// NewImplementationFor creates an "impl Trait for Type" block.
func NewImplementationFor(trait, target string) Implementation {
	return Implementation{name: trait + " for " + target}
}

// WithComponent appends a child. A pointer is copied and a nil child is skipped.
func (i Implementation) WithComponent(c Component) Implementation {
	i.PushComponent(c)
	return i
}

// WithLifetime adds the lifetime to both the impl and the target side.
func (i Implementation) WithLifetime(id string) Implementation {
	i.PushLifetime(id)
	return i
}

// WithImplLifetime adds a lifetime to the impl<...> clause only.
func (i Implementation) WithImplLifetime(id string) Implementation {
	i.PushImplLifetime(id)
	return i
}

// WithTargetLifetime adds a lifetime to the target type only.
func (i Implementation) WithTargetLifetime(id string) Implementation {
	i.PushTargetLifetime(id)
	return i
}

// WithTemplate adds the type parameter to both the impl and the target side.
func (i Implementation) WithTemplate(id string) Implementation {
	i.PushTemplate(id)
	return i
}

// WithImplTemplate adds a type parameter to the impl<...> clause only.
func (i Implementation) WithImplTemplate(id string) Implementation {
	i.PushImplTemplate(id)
	return i
}

// WithTargetTemplate adds a type parameter to the target type only.
func (i Implementation) WithTargetTemplate(id string) Implementation {
	i.PushTargetTemplate(id)
	return i
}

// WithExtra sets text placed before the opening brace, such as a where clause.
func (i Implementation) WithExtra(extra string) Implementation {
	i.SetExtra(extra)
	return i
}

// PushComponent appends a child in place. A pointer is copied and a nil child is skipped.
func (i *Implementation) PushComponent(c Component) {
	i.components = appendComponent(i.components, c)
}

// PushLifetime is the in-place form of WithLifetime.
func (i *Implementation) PushLifetime(id string) {
	i.PushImplLifetime(id)
	i.PushTargetLifetime(id)
}

// PushImplLifetime is the in-place form of WithImplLifetime.
func (i *Implementation) PushImplLifetime(id string) {
	i.impl.pushLifetime(id)
}

// PushTargetLifetime is the in-place form of WithTargetLifetime.
func (i *Implementation) PushTargetLifetime(id string) {
	i.target.pushLifetime(id)
}

// PushTemplate is the in-place form of WithTemplate.
func (i *Implementation) PushTemplate(id string) {
	i.PushImplTemplate(id)
	i.PushTargetTemplate(id)
}

// PushImplTemplate is the in-place form of WithImplTemplate.
func (i *Implementation) PushImplTemplate(id string) {
	i.impl.pushTemplate(id)
}

// PushTargetTemplate is the in-place form of WithTargetTemplate.
func (i *Implementation) PushTargetTemplate(id string) {
	i.target.pushTemplate(id)
}

// SetExtra is the in-place form of WithExtra.
func (i *Implementation) SetExtra(extra string) {
	i.extra = extra
}

// Name returns the impl target, including the "Trait for" part when present.
func (i Implementation) Name() string { return i.name }

// Kind reports KindImplementation.
func (Implementation) Kind() Kind { return KindImplementation }
func (Implementation) component() {}

// Render emits impl<...> Name<...> [extra] {, each child one level deeper
// separated by blank lines, and the closing brace.
func (i Implementation) Render(indent int) string {
	var b strings.Builder
	b.WriteString(Indent(indent))
	b.WriteString("impl")
	b.WriteString(i.impl.clause())
	b.WriteByte(' ')
	b.WriteString(i.name)
	b.WriteString(i.target.clause())
	openBrace(&b, i.extra)

	writeChildren(&b, i.components, indent+1)

	closeBrace(&b, indent)
	return b.String()
}

// String is Render at indent level zero.
func (i Implementation) String() string { return i.Render(0) }
