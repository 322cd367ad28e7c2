// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package rust

import "strings"

// Visibility is the access modifier placed in front of an item.
type Visibility int

const (
	Private      Visibility = iota // no modifier
	Public                         // pub
	CrateVisible                   // pub(crate)
)

// String returns the modifier keyword, or "" for Private.
func (v Visibility) String() string {
	switch v {
	case Public:
		return "pub"
	case CrateVisible:
		return "pub(crate)"
	default:
		return ""
	}
}

// prefix returns the modifier followed by a space, or nothing at all.
func (v Visibility) prefix() string {
	if s := v.String(); s != "" {
		return s + " "
	}
	return ""
}

// ParseVisibility maps a modifier spelling back to a Visibility. It accepts
// "", "private", "pub", "public", "pub(crate)" and "crate".
func ParseVisibility(s string) (Visibility, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "private":
		return Private, true
	case "pub", "public":
		return Public, true
	case "pub(crate)", "crate":
		return CrateVisible, true
	default:
		return Private, false
	}
}

// Field is a named, typed member of a struct or struct-shaped enum variant.
type Field struct {
	name       string
	typ        string
	visibility Visibility
}

// NewField creates a field with an explicit visibility.
func NewField(name, typ string, visibility Visibility) Field {
	return Field{name: name, typ: typ, visibility: visibility}
}

// PrivateField creates a field without a visibility modifier.
func PrivateField(name, typ string) Field {
	return NewField(name, typ, Private)
}

// PublicField creates a pub field.
func PublicField(name, typ string) Field {
	return NewField(name, typ, Public)
}

// Name returns the field identifier.
func (f Field) Name() string { return f.name }

// Type returns the field type as written.
func (f Field) Type() string { return f.typ }

// Visibility returns the field visibility.
func (f Field) Visibility() Visibility { return f.visibility }

// String renders the field as "[vis ]name: type".
func (f Field) String() string {
	return f.visibility.prefix() + f.bare()
}

// bare renders the field without its visibility.
func (f Field) bare() string {
	return f.name + ": " + f.typ
}
