// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package schema

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/petar-djukic/rmodgen/internal/textmatch"
	"github.com/petar-djukic/rmodgen/pkg/rust"
)

// Kinds lists the valid values of Item.Kind.
var Kinds = []string{"struct", "enum", "fn", "impl", "mod", "trait", "let", "const", "static", "text"}

// Build converts a decoded document into a file model. Errors name the
// offending item by its path, for example items[2].items[0].
func Build(doc *Document) (rust.File, error) {
	if doc == nil {
		return rust.NewFile(), nil
	}

	file := rust.NewFile().
		WithDocstring(doc.Doc).
		WithImports(doc.Imports).
		WithTop(doc.Top).
		WithBottom(doc.Bottom)

	components, err := buildItems(doc.Items, "items")
	if err != nil {
		return rust.File{}, err
	}
	return file.WithComponents(components), nil
}

func buildItems(items []Item, path string) ([]rust.Component, error) {
	components := make([]rust.Component, 0, len(items))
	for i, it := range items {
		c, err := buildItem(it, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		components = append(components, c)
	}
	return components, nil
}

func buildItem(it Item, path string) (rust.Component, error) {
	kind := strings.ToLower(strings.TrimSpace(it.Kind))
	switch kind {
	case "text":
		return rust.NewText(it.Text), nil
	case "impl":
		return buildImpl(it, path)
	case "":
		return nil, invalid(path, "missing kind", "set kind to one of: "+strings.Join(Kinds, ", "))
	}

	if !slices.Contains(Kinds, kind) {
		err := errors.Wrapf(ErrInvalidModel, "%s: unknown kind %q", path, it.Kind)
		if best, ok := textmatch.Closest(kind, Kinds, textmatch.DefaultThreshold); ok {
			return nil, errors.WithHintf(err, "did you mean %q?", best)
		}
		return nil, errors.WithHint(err, "valid kinds: "+strings.Join(Kinds, ", "))
	}

	if it.Name == "" {
		return nil, invalid(path, "missing name", "every "+kind+" item needs a name")
	}
	vis, err := parseVisibility(it.Visibility, path)
	if err != nil {
		return nil, err
	}

	switch kind {
	case "struct":
		return buildStruct(it, vis, path)
	case "enum":
		return buildEnum(it, vis, path)
	case "fn":
		return buildMethod(it, vis), nil
	case "mod":
		return buildModule(it, vis, path)
	case "trait":
		return buildTrait(it, vis, path)
	default:
		return buildVariable(kind, it, vis), nil
	}
}

func buildStruct(it Item, vis rust.Visibility, path string) (rust.Component, error) {
	s := rust.NewStruct(it.Name).
		WithVisibility(vis).
		WithExtra(it.Extra).
		WithCfg(it.Cfg)
	for _, l := range it.Lifetimes {
		s.PushLifetime(l)
	}
	for _, t := range it.Templates {
		s.PushTemplate(t)
	}

	fields, err := buildFields(it.Fields, path+".fields")
	if err != nil {
		return nil, err
	}
	for _, f := range fields {
		s.PushField(f)
	}
	return s, nil
}

func buildEnum(it Item, vis rust.Visibility, path string) (rust.Component, error) {
	e := rust.NewEnum(it.Name).
		WithVisibility(vis).
		WithExtra(it.Extra).
		WithCfg(it.Cfg)
	for _, l := range it.Lifetimes {
		e.PushLifetime(l)
	}
	for _, t := range it.Templates {
		e.PushTemplate(t)
	}

	for i, v := range it.Variants {
		vpath := fmt.Sprintf("%s.variants[%d]", path, i)
		if v.Name == "" {
			return nil, invalid(vpath, "missing name", "every variant needs a name")
		}

		switch {
		case len(v.Values) > 0 && len(v.Fields) > 0:
			return nil, invalid(vpath, "variant "+v.Name+" has both values and fields",
				"a variant is either tuple-shaped (values) or struct-shaped (fields)")
		case len(v.Values) > 0:
			e.PushVariant(rust.NewValueVariant(v.Name, v.Values...))
		case len(v.Fields) > 0:
			fields, err := buildFields(v.Fields, vpath+".fields")
			if err != nil {
				return nil, err
			}
			e.PushVariant(rust.NewStructVariant(v.Name, fields...))
		default:
			e.PushVariant(rust.NewEmptyVariant(v.Name))
		}
	}
	return e, nil
}

func buildMethod(it Item, vis rust.Visibility) rust.Component {
	m := rust.NewMethod(it.Name).
		WithVisibility(vis).
		WithQualifier(it.Qualifier).
		WithReturnType(it.Returns).
		WithBody(it.Body)
	m.SetNoBody(it.NoBody)
	for _, a := range it.Args {
		m.PushArgument(a)
	}
	for _, l := range it.Lifetimes {
		m.PushLifetime(l)
	}
	for _, t := range it.Templates {
		m.PushTemplate(t)
	}
	return m
}

func buildImpl(it Item, path string) (rust.Component, error) {
	var impl rust.Implementation
	switch {
	case it.Trait != "":
		if it.Target == "" {
			return nil, invalid(path, "trait impl without target", "set target to the implementing type")
		}
		impl = rust.NewImplementationFor(it.Trait, it.Target)
	case it.Target != "":
		impl = rust.NewImplementation(it.Target)
	case it.Name != "":
		impl = rust.NewImplementation(it.Name)
	default:
		return nil, invalid(path, "missing target", "set target (and optionally trait) on impl items")
	}

	impl.SetExtra(it.Extra)
	for _, l := range it.Lifetimes {
		impl.PushLifetime(l)
	}
	for _, l := range it.ImplLifetimes {
		impl.PushImplLifetime(l)
	}
	for _, l := range it.TargetLifetimes {
		impl.PushTargetLifetime(l)
	}
	for _, t := range it.Templates {
		impl.PushTemplate(t)
	}
	for _, t := range it.ImplTemplates {
		impl.PushImplTemplate(t)
	}
	for _, t := range it.TargetTemplates {
		impl.PushTargetTemplate(t)
	}

	children, err := buildItems(it.Items, path+".items")
	if err != nil {
		return nil, err
	}
	for _, c := range children {
		impl.PushComponent(c)
	}
	return impl, nil
}

func buildModule(it Item, vis rust.Visibility, path string) (rust.Component, error) {
	m := rust.NewModule(it.Name).
		WithVisibility(vis).
		WithCfg(it.Cfg)
	for _, imp := range it.Imports {
		m.PushImport(imp)
	}

	children, err := buildItems(it.Items, path+".items")
	if err != nil {
		return nil, err
	}
	return m.WithComponents(children), nil
}

func buildTrait(it Item, vis rust.Visibility, path string) (rust.Component, error) {
	t := rust.NewTrait(it.Name).
		WithVisibility(vis).
		WithCfg(it.Cfg).
		WithExtra(it.Extra)
	for _, b := range it.Bounds {
		t.PushBound(b)
	}
	for _, l := range it.Lifetimes {
		t.PushLifetime(l)
	}
	for _, tp := range it.Templates {
		t.PushTemplate(tp)
	}

	children, err := buildItems(it.Items, path+".items")
	if err != nil {
		return nil, err
	}
	for _, c := range children {
		t.PushComponent(c)
	}
	return t, nil
}

func buildVariable(kind string, it Item, vis rust.Visibility) rust.Component {
	var k rust.VariableKind
	switch kind {
	case "const":
		k = rust.Const
	case "static":
		k = rust.Static
	default:
		k = rust.Let
	}
	return rust.NewVariable(k, it.Name).
		WithVisibility(vis).
		WithMut(it.Mut).
		WithType(it.Type).
		WithValue(it.Value)
}

func buildFields(specs []FieldSpec, path string) ([]rust.Field, error) {
	fields := make([]rust.Field, 0, len(specs))
	for i, fs := range specs {
		fpath := fmt.Sprintf("%s[%d]", path, i)
		if fs.Name == "" {
			return nil, invalid(fpath, "missing name", "every field needs a name")
		}
		if fs.Type == "" {
			return nil, invalid(fpath, "field "+fs.Name+" has no type", "set type, for example u64 or Vec<String>")
		}
		vis, err := parseVisibility(fs.Visibility, fpath)
		if err != nil {
			return nil, err
		}
		fields = append(fields, rust.NewField(fs.Name, fs.Type, vis))
	}
	return fields, nil
}

func parseVisibility(s, path string) (rust.Visibility, error) {
	vis, ok := rust.ParseVisibility(s)
	if !ok {
		return rust.Private, invalid(path, fmt.Sprintf("unknown visibility %q", s),
			"use one of: private, pub, pub(crate)")
	}
	return vis, nil
}

func invalid(path, msg, hint string) error {
	return errors.WithHint(errors.Wrapf(ErrInvalidModel, "%s: %s", path, msg), hint)
}
