// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package rust

import "strings"

// Trait is a trait declaration. Any component may be added as a child;
// keeping to methods, bindings and text is up to the caller.
type Trait struct {
	name       string
	visibility Visibility
	bounds     []string
	components []Component
	generics   generics
	cfg        string
	extra      string
}

// NewTrait creates an empty private trait.
func NewTrait(name string) Trait {
	return Trait{name: name}
}

// WithVisibility sets the visibility prefix of the trait.
func (t Trait) WithVisibility(visibility Visibility) Trait {
	t.SetVisibility(visibility)
	return t
}

// WithBound appends a supertrait bound. Bounds are joined with " + ".
func (t Trait) WithBound(bound string) Trait {
	t.PushBound(bound)
	return t
}

// WithComponent appends a child. A pointer is copied and a nil child is skipped.
func (t Trait) WithComponent(c Component) Trait {
	t.PushComponent(c)
	return t
}

// WithLifetime adds a lifetime parameter, given without the quote.
func (t Trait) WithLifetime(id string) Trait {
	t.PushLifetime(id)
	return t
}

// WithTemplate adds a type parameter such as "T".
func (t Trait) WithTemplate(id string) Trait {
	t.PushTemplate(id)
	return t
}

// WithCfg sets the attribute line emitted above the declaration.
func (t Trait) WithCfg(cfg string) Trait {
	t.SetCfg(cfg)
	return t
}

// WithExtra sets text inserted right before the opening brace.
func (t Trait) WithExtra(extra string) Trait {
	t.SetExtra(extra)
	return t
}

// SetVisibility is the in-place form of WithVisibility.
func (t *Trait) SetVisibility(visibility Visibility) {
	t.visibility = visibility
}

// PushBound is the in-place form of WithBound.
func (t *Trait) PushBound(bound string) {
	t.bounds = appendOwned(t.bounds, bound)
}

// PushComponent appends a child in place. A pointer is copied and a nil child is skipped.
func (t *Trait) PushComponent(c Component) {
	t.components = appendComponent(t.components, c)
}

// PushLifetime is the in-place form of WithLifetime.
func (t *Trait) PushLifetime(id string) {
	t.generics.pushLifetime(id)
}

// PushTemplate is the in-place form of WithTemplate.
func (t *Trait) PushTemplate(id string) {
	t.generics.pushTemplate(id)
}

// SetCfg is the in-place form of WithCfg.
func (t *Trait) SetCfg(cfg string) {
	t.cfg = cfg
}

// SetExtra is the in-place form of WithExtra.
func (t *Trait) SetExtra(extra string) {
	t.extra = extra
}

// Name returns the trait identifier.
func (t Trait) Name() string { return t.name }

// Kind reports KindTrait.
func (Trait) Kind() Kind { return KindTrait }
func (Trait) component() {}

// Render emits [vis ]trait Name<...>[: bounds][ extra] {, the children one
// level deeper separated by blank lines, and the closing brace.
func (t Trait) Render(indent int) string {
	var b strings.Builder
	writeCfg(&b, t.cfg, indent)

	b.WriteString(Indent(indent))
	b.WriteString(t.visibility.prefix())
	b.WriteString("trait ")
	b.WriteString(t.name)
	b.WriteString(t.generics.clause())
	if len(t.bounds) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(t.bounds, " + "))
	}
	openBrace(&b, t.extra)

	writeChildren(&b, t.components, indent+1)

	closeBrace(&b, indent)
	return b.String()
}

// String is Render at indent level zero.
func (t Trait) String() string { return t.Render(0) }
