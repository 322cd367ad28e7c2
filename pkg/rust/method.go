// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package rust

import "strings"

// Method is a free function or an associated function inside an impl or
// trait block.
type Method struct {
	name       string
	qualifier  string
	visibility Visibility
	arguments  []string
	returnType string
	body       string
	noBody     bool
	generics   generics
}

// NewMethod creates a private function with no arguments and an empty body.
func NewMethod(name string) Method {
	return Method{name: name}
}

// WithQualifier sets the marker placed before fn, such as "unsafe",
// "const" or "async".
func (m Method) WithQualifier(qualifier string) Method {
	m.SetQualifier(qualifier)
	return m
}

// WithVisibility sets the visibility prefix of the function.
func (m Method) WithVisibility(visibility Visibility) Method {
	m.SetVisibility(visibility)
	return m
}

// WithArgument appends a raw parameter such as "name: &str".
func (m Method) WithArgument(arg string) Method {
	m.PushArgument(arg)
	return m
}

// WithReturnType sets the type after "->". An empty type omits the arrow.
func (m Method) WithReturnType(returnType string) Method {
	m.SetReturnType(returnType)
	return m
}

// WithBody sets the pre-formatted statements of the body. Each line is
// re-indented one level below the signature.
func (m Method) WithBody(body string) Method {
	m.SetBody(body)
	return m
}

// WithoutBody renders the signature terminated by ";" instead of a block,
// as used for trait method declarations.
func (m Method) WithoutBody() Method {
	m.SetNoBody(true)
	return m
}

// WithTemplate adds a type parameter such as "T".
func (m Method) WithTemplate(id string) Method {
	m.PushTemplate(id)
	return m
}

// WithLifetime adds a lifetime parameter, given without the quote.
func (m Method) WithLifetime(id string) Method {
	m.PushLifetime(id)
	return m
}

// SetQualifier is the in-place form of WithQualifier.
func (m *Method) SetQualifier(qualifier string) {
	m.qualifier = qualifier
}

// SetVisibility is the in-place form of WithVisibility.
func (m *Method) SetVisibility(visibility Visibility) {
	m.visibility = visibility
}

// PushArgument is the in-place form of WithArgument.
func (m *Method) PushArgument(arg string) {
	m.arguments = appendOwned(m.arguments, arg)
}

// SetReturnType is the in-place form of WithReturnType.
func (m *Method) SetReturnType(returnType string) {
	m.returnType = returnType
}

// SetBody is the in-place form of WithBody.
func (m *Method) SetBody(body string) {
	m.body = body
}

// SetNoBody switches between a block body and a signature ending in ";".
func (m *Method) SetNoBody(noBody bool) {
	m.noBody = noBody
}

// PushTemplate is the in-place form of WithTemplate.
func (m *Method) PushTemplate(id string) {
	m.generics.pushTemplate(id)
}

// PushLifetime is the in-place form of WithLifetime.
func (m *Method) PushLifetime(id string) {
	m.generics.pushLifetime(id)
}

// Name returns the function identifier.
func (m Method) Name() string { return m.name }

// Kind reports KindMethod.
func (Method) Kind() Kind { return KindMethod }
func (Method) component() {}

// Render emits the signature, the body lines one level deeper and the
// closing brace. Absent optional parts leave no trace in the output.
func (m Method) Render(indent int) string {
	var b strings.Builder
	b.WriteString(Indent(indent))
	b.WriteString(m.visibility.prefix())
	if m.qualifier != "" {
		b.WriteString(m.qualifier)
		b.WriteByte(' ')
	}
	b.WriteString("fn ")
	b.WriteString(m.name)
	b.WriteString(m.generics.clause())
	b.WriteByte('(')
	b.WriteString(strings.Join(m.arguments, ", "))
	b.WriteByte(')')
	if m.returnType != "" {
		b.WriteString(" -> ")
		b.WriteString(m.returnType)
	}

	if m.noBody {
		b.WriteString(";\n")
		return b.String()
	}

	b.WriteString(" {\n")
	bodyIndent := Indent(indent + 1)
	for _, line := range bodyLines(m.body) {
		if line != "" {
			b.WriteString(bodyIndent)
			b.WriteString(line)
		}
		b.WriteByte('\n')
	}
	closeBrace(&b, indent)
	return b.String()
}

// String is Render at indent level zero.
func (m Method) String() string { return m.Render(0) }

// bodyLines splits a body into lines. A final newline does not start an
// extra empty line and carriage returns before a newline are dropped.
func bodyLines(body string) []string {
	if body == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
