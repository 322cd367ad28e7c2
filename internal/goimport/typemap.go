// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package goimport

import (
	"fmt"
	"go/ast"
	"reflect"
	"strings"
)

// TypeMapping maps Go type names to Rust type text.
var TypeMapping = map[string]string{
	"string":          "String",
	"int":             "i64",
	"int8":            "i8",
	"int16":           "i16",
	"int32":           "i32",
	"int64":           "i64",
	"uint":            "u64",
	"uint8":           "u8",
	"uint16":          "u16",
	"uint32":          "u32",
	"uint64":          "u64",
	"byte":            "u8",
	"rune":            "char",
	"float32":         "f32",
	"float64":         "f64",
	"bool":            "bool",
	"any":             "serde_json::Value",
	"time.Time":       "String",
	"time.Duration":   "i64",
	"json.RawMessage": "serde_json::Value",
}

// RustType converts a Go type expression to Rust type text. Pointers
// become Option, slices and arrays Vec, maps HashMap. Identifiers not in
// TypeMapping are kept as written.
func RustType(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		if rs, ok := TypeMapping[t.Name]; ok {
			return rs
		}
		return t.Name
	case *ast.SelectorExpr:
		if ident, ok := t.X.(*ast.Ident); ok {
			if rs, ok := TypeMapping[ident.Name+"."+t.Sel.Name]; ok {
				return rs
			}
		}
		return t.Sel.Name
	case *ast.StarExpr:
		return "Option<" + RustType(t.X) + ">"
	case *ast.ArrayType:
		return "Vec<" + RustType(t.Elt) + ">"
	case *ast.MapType:
		return fmt.Sprintf("std::collections::HashMap<%s, %s>", RustType(t.Key), RustType(t.Value))
	case *ast.IndexExpr:
		return RustType(t.X) + "<" + RustType(t.Index) + ">"
	case *ast.IndexListExpr:
		args := make([]string, 0, len(t.Indices))
		for _, idx := range t.Indices {
			args = append(args, RustType(idx))
		}
		return RustType(t.X) + "<" + strings.Join(args, ", ") + ">"
	default:
		return "serde_json::Value"
	}
}

// fieldTag holds what the json struct tag says about a field.
type fieldTag struct {
	name string
	skip bool
}

func parseFieldTag(tag *ast.BasicLit) fieldTag {
	if tag == nil {
		return fieldTag{}
	}
	st := reflect.StructTag(strings.Trim(tag.Value, "`"))
	name, _, _ := strings.Cut(st.Get("json"), ",")
	if name == "-" {
		return fieldTag{skip: true}
	}
	return fieldTag{name: name}
}

// rustKeywords need the raw identifier prefix r# when used as names.
var rustKeywords = map[string]bool{
	"as": true, "async": true, "await": true, "break": true, "const": true,
	"continue": true, "crate": true, "dyn": true, "else": true, "enum": true,
	"extern": true, "false": true, "fn": true, "for": true, "if": true,
	"impl": true, "in": true, "let": true, "loop": true, "match": true,
	"mod": true, "move": true, "mut": true, "pub": true, "ref": true,
	"return": true, "self": true, "Self": true, "static": true, "struct": true,
	"super": true, "trait": true, "true": true, "type": true, "unsafe": true,
	"use": true, "where": true, "while": true, "yield": true,
}

func rustIdent(s string) string {
	if rustKeywords[s] {
		return "r#" + s
	}
	return s
}

// SnakeCase converts PascalCase or camelCase to snake_case, keeping
// acronyms together: "HTTPServer" becomes "http_server".
func SnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)

	for i, r := range runes {
		if i > 0 && r >= 'A' && r <= 'Z' {
			prevUpper := runes[i-1] >= 'A' && runes[i-1] <= 'Z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if !prevUpper || nextLower {
				b.WriteRune('_')
			}
		}
		b.WriteRune(r)
	}

	return strings.ToLower(b.String())
}
