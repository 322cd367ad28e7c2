// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package goimport

import (
	"go/ast"
	"go/token"
	"strings"
	"unicode"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/petar-djukic/rmodgen/pkg/rust"
)

// DefaultDerive is the attribute line placed above every generated item.
const DefaultDerive = "#[derive(Debug, Clone, PartialEq)]"

// Options tunes the conversion.
type Options struct {
	Derive string // Attribute line above each item; DefaultDerive when empty
}

// decl is a declaration collected in source order.
type decl struct {
	name     string
	isEnum   bool
	st       *ast.StructType
	params   *ast.FieldList
	variants []string
}

// Convert turns the exported declarations of the scanned files into Rust
// components. Files are visited in sorted path order and declarations in
// source order, so the output is deterministic. Only top-level
// declarations are considered.
func Convert(result *ScanResult, opts Options) []rust.Component {
	if opts.Derive == "" {
		opts.Derive = DefaultDerive
	}

	var decls []*decl
	enums := make(map[string]*decl)
	var consts []*ast.ValueSpec

	for _, path := range result.Paths() {
		astutil.Apply(result.Files[path], func(c *astutil.Cursor) bool {
			switch n := c.Node().(type) {
			case *ast.File:
				return true
			case *ast.GenDecl:
				switch n.Tok {
				case token.TYPE:
					for _, spec := range n.Specs {
						if d := typeDecl(spec.(*ast.TypeSpec)); d != nil {
							decls = append(decls, d)
							if d.isEnum {
								enums[d.name] = d
							}
						}
					}
				case token.CONST:
					for _, spec := range n.Specs {
						consts = append(consts, spec.(*ast.ValueSpec))
					}
				}
			}
			return false
		}, nil)
	}

	for _, vs := range consts {
		enum := enums[constType(vs)]
		if enum == nil {
			continue
		}
		for _, name := range vs.Names {
			if name.IsExported() {
				enum.variants = append(enum.variants, variantName(enum.name, name.Name))
			}
		}
	}

	var components []rust.Component
	for _, d := range decls {
		if d.isEnum {
			if len(d.variants) == 0 {
				continue
			}
			components = append(components, buildEnum(d, opts))
			continue
		}
		components = append(components, buildStruct(d, opts))
	}
	return components
}

// Import scans dir and converts it into a file model.
func Import(dir string, opts Options) (rust.File, []ScanError, error) {
	result, err := ScanDir(dir, 0)
	if err != nil {
		return rust.File{}, nil, err
	}
	return rust.NewFile().WithComponents(Convert(result, opts)), result.Errors, nil
}

// typeDecl recognizes exported struct types and exported types whose
// underlying type is string.
func typeDecl(ts *ast.TypeSpec) *decl {
	if !ts.Name.IsExported() || ts.Assign.IsValid() {
		return nil
	}
	switch t := ts.Type.(type) {
	case *ast.StructType:
		return &decl{name: ts.Name.Name, st: t, params: ts.TypeParams}
	case *ast.Ident:
		if t.Name == "string" {
			return &decl{name: ts.Name.Name, isEnum: true}
		}
	}
	return nil
}

// constType returns the declared type name of a const spec, either from an
// explicit type or from a conversion such as Color("blue").
func constType(vs *ast.ValueSpec) string {
	if ident, ok := vs.Type.(*ast.Ident); ok {
		return ident.Name
	}
	if vs.Type == nil && len(vs.Values) == 1 {
		if call, ok := vs.Values[0].(*ast.CallExpr); ok {
			if ident, ok := call.Fun.(*ast.Ident); ok {
				return ident.Name
			}
		}
	}
	return ""
}

// variantName trims the type name prefix from a constant: ColorRed
// becomes Red. The name is kept as is when the remainder would not start
// with an upper-case letter.
func variantName(typeName, constName string) string {
	rest, ok := strings.CutPrefix(constName, typeName)
	if !ok || rest == "" || !unicode.IsUpper([]rune(rest)[0]) {
		return constName
	}
	return rest
}

func buildStruct(d *decl, opts Options) rust.Struct {
	s := rust.NewStruct(d.name).
		WithVisibility(rust.Public).
		WithCfg(opts.Derive)

	if d.params != nil {
		for _, p := range d.params.List {
			for _, name := range p.Names {
				s.PushTemplate(name.Name)
			}
		}
	}

	for _, field := range d.st.Fields.List {
		if len(field.Names) == 0 {
			continue
		}
		tag := parseFieldTag(field.Tag)
		if tag.skip {
			continue
		}
		for _, name := range field.Names {
			if !name.IsExported() {
				continue
			}
			fieldName := tag.name
			if fieldName == "" {
				fieldName = SnakeCase(name.Name)
			}
			s.PushField(rust.PublicField(rustIdent(fieldName), RustType(field.Type)))
		}
	}
	return s
}

func buildEnum(d *decl, opts Options) rust.Enum {
	e := rust.NewEnum(d.name).
		WithVisibility(rust.Public).
		WithCfg(opts.Derive)
	for _, v := range d.variants {
		e.PushVariant(rust.NewEmptyVariant(v))
	}
	return e
}
