// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package schema loads a declarative model document (YAML, JSON or TOML)
// describing one Rust source file and builds the equivalent rust.File.
package schema

// Document is the root of a model file.
type Document struct {
	Doc     string   `yaml:"doc" toml:"doc"`
	Imports []string `yaml:"imports" toml:"imports"`
	Top     string   `yaml:"top" toml:"top"`
	Bottom  string   `yaml:"bottom" toml:"bottom"`
	Items   []Item   `yaml:"items" toml:"items"`
}

// Item describes one construct. Kind selects which of the remaining
// attributes apply; attributes that do not apply to the kind are ignored.
type Item struct {
	Kind       string   `yaml:"kind" toml:"kind"`
	Name       string   `yaml:"name" toml:"name"`
	Visibility string   `yaml:"visibility" toml:"visibility"`
	Lifetimes  []string `yaml:"lifetimes" toml:"lifetimes"`
	Templates  []string `yaml:"templates" toml:"templates"`
	Extra      string   `yaml:"extra" toml:"extra"`
	Cfg        string   `yaml:"cfg" toml:"cfg"`

	// struct
	Fields []FieldSpec `yaml:"fields" toml:"fields"`

	// enum
	Variants []VariantSpec `yaml:"variants" toml:"variants"`

	// fn
	Qualifier string   `yaml:"qualifier" toml:"qualifier"`
	Args      []string `yaml:"args" toml:"args"`
	Returns   string   `yaml:"returns" toml:"returns"`
	Body      string   `yaml:"body" toml:"body"`
	NoBody    bool     `yaml:"no_body" toml:"no_body"`

	// impl
	Target          string   `yaml:"target" toml:"target"`
	Trait           string   `yaml:"trait" toml:"trait"`
	ImplLifetimes   []string `yaml:"impl_lifetimes" toml:"impl_lifetimes"`
	TargetLifetimes []string `yaml:"target_lifetimes" toml:"target_lifetimes"`
	ImplTemplates   []string `yaml:"impl_templates" toml:"impl_templates"`
	TargetTemplates []string `yaml:"target_templates" toml:"target_templates"`

	// mod
	Imports []string `yaml:"imports" toml:"imports"`

	// trait
	Bounds []string `yaml:"bounds" toml:"bounds"`

	// let, const, static
	Type  string `yaml:"type" toml:"type"`
	Value string `yaml:"value" toml:"value"`
	Mut   bool   `yaml:"mut" toml:"mut"`

	// text
	Text string `yaml:"text" toml:"text"`

	// mod, impl, trait
	Items []Item `yaml:"items" toml:"items"`
}

// FieldSpec is a struct field or a field of a struct-shaped variant.
type FieldSpec struct {
	Name       string `yaml:"name" toml:"name"`
	Type       string `yaml:"type" toml:"type"`
	Visibility string `yaml:"visibility" toml:"visibility"`
}

// VariantSpec is an enum variant. Values makes a tuple variant, Fields a
// struct variant, neither a unit variant.
type VariantSpec struct {
	Name   string      `yaml:"name" toml:"name"`
	Values []string    `yaml:"values" toml:"values"`
	Fields []FieldSpec `yaml:"fields" toml:"fields"`
}
