// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package rust

import "strings"

// Module is an inline mod block with its own imports and children.
type Module struct {
	name       string
	visibility Visibility
	imports    []string
	components []Component
	cfg        string
}

// NewModule creates an empty private module.
func NewModule(name string) Module {
	return Module{name: name}
}

// WithCfg sets the attribute line above the module, such as #[cfg(test)].
func (m Module) WithCfg(cfg string) Module {
	m.SetCfg(cfg)
	return m
}

// WithVisibility sets the visibility prefix of the module.
func (m Module) WithVisibility(visibility Visibility) Module {
	m.SetVisibility(visibility)
	return m
}

// WithImport appends an import line such as "use std::fmt". The trailing
// semicolon is added when rendering.
func (m Module) WithImport(imp string) Module {
	m.PushImport(imp)
	return m
}

// WithComponents replaces all children.
func (m Module) WithComponents(components []Component) Module {
	m.SetComponents(components)
	return m
}

// WithComponent appends a child. A pointer is copied and a nil child is skipped.
func (m Module) WithComponent(c Component) Module {
	m.PushComponent(c)
	return m
}

// SetCfg is the in-place form of WithCfg.
func (m *Module) SetCfg(cfg string) {
	m.cfg = cfg
}

// SetVisibility is the in-place form of WithVisibility.
func (m *Module) SetVisibility(visibility Visibility) {
	m.visibility = visibility
}

// PushImport is the in-place form of WithImport.
func (m *Module) PushImport(imp string) {
	m.imports = appendOwned(m.imports, imp)
}

// SetComponents replaces all children. Pointer components are copied and nil entries dropped.
func (m *Module) SetComponents(components []Component) {
	m.components = ownComponents(components)
}

// PushComponent appends a child in place. A pointer is copied and a nil child is skipped.
func (m *Module) PushComponent(c Component) {
	m.components = appendComponent(m.components, c)
}

// Name returns the module identifier.
func (m Module) Name() string { return m.name }

// Components returns a copy of the children.
func (m Module) Components() []Component { return append([]Component(nil), m.components...) }

// Kind reports KindModule.
func (Module) Kind() Kind { return KindModule }
func (Module) component() {}

// Render emits the optional cfg line, the mod header, the imports followed
// by one blank line, the children and the closing brace. Children sit one
// level deeper and are separated by blank lines.
func (m Module) Render(indent int) string {
	var b strings.Builder
	writeCfg(&b, m.cfg, indent)

	b.WriteString(Indent(indent))
	b.WriteString(m.visibility.prefix())
	b.WriteString("mod ")
	b.WriteString(m.name)
	b.WriteString(" {\n")

	if len(m.imports) > 0 {
		importIndent := Indent(indent + 1)
		for _, imp := range m.imports {
			b.WriteString(importIndent)
			b.WriteString(imp)
			b.WriteString(";\n")
		}
		b.WriteByte('\n')
	}

	writeChildren(&b, m.components, indent+1)

	closeBrace(&b, indent)
	return b.String()
}

// String is Render at indent level zero.
func (m Module) String() string { return m.Render(0) }
