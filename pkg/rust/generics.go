// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package rust

import "strings"

// GenericClause renders lifetimes and type parameters as one bracketed
// clause, lifetimes first, for example <'a, 'b, T>. Lifetimes are given
// without the apostrophe. Both lists keep caller order and are not
// deduplicated. When both are empty the result is "".
func GenericClause(lifetimes, templates []string) string {
	if len(lifetimes) == 0 && len(templates) == 0 {
		return ""
	}

	params := make([]string, 0, len(lifetimes)+len(templates))
	for _, l := range lifetimes {
		params = append(params, "'"+l)
	}
	params = append(params, templates...)

	return "<" + strings.Join(params, ", ") + ">"
}

// generics holds the parameter lists of a single generic site.
type generics struct {
	lifetimes []string
	templates []string
}

func (g *generics) pushLifetime(id string) { g.lifetimes = appendOwned(g.lifetimes, id) }
func (g *generics) pushTemplate(id string) { g.templates = appendOwned(g.templates, id) }

func (g generics) clause() string {
	return GenericClause(g.lifetimes, g.templates)
}
