// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// DefinitionKind identifies the category of a Rust item found in source.
type DefinitionKind int

const (
	DefStruct DefinitionKind = iota
	DefEnum
	DefFunction
	DefTrait
	DefModule
	DefImpl
	DefConst
	DefStatic
)

// String returns the Rust keyword for the kind.
func (k DefinitionKind) String() string {
	switch k {
	case DefStruct:
		return "struct"
	case DefEnum:
		return "enum"
	case DefFunction:
		return "fn"
	case DefTrait:
		return "trait"
	case DefModule:
		return "mod"
	case DefImpl:
		return "impl"
	case DefConst:
		return "const"
	case DefStatic:
		return "static"
	default:
		return "unknown"
	}
}

// MarshalText lets the kind appear as its keyword in JSON output.
func (k DefinitionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Definition is a named item located in Rust source.
type Definition struct {
	Name string         `json:"name"` // Item identifier; for impl blocks the target type
	Kind DefinitionKind `json:"kind"` // Item category
	Line int            `json:"line"` // 1-based line of the item
}
