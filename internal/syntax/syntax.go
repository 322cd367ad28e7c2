// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package syntax parses rendered Rust source in process with tree-sitter
// to catch malformed output before it reaches disk, and lists the items
// the source defines.
package syntax

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"

	"github.com/petar-djukic/rmodgen/pkg/types"
)

// Source is the producer name set on every diagnostic from this package.
const Source = "syntax"

// maxSnippet bounds the source excerpt quoted in an error message.
const maxSnippet = 40

// definitionQuery captures item names; the capture name is the item kind.
const definitionQuery = `
	(struct_item name: (type_identifier) @struct)
	(enum_item name: (type_identifier) @enum)
	(function_item name: (identifier) @fn)
	(function_signature_item name: (identifier) @fn)
	(trait_item name: (type_identifier) @trait)
	(mod_item name: (identifier) @mod)
	(impl_item type: (_) @impl)
	(const_item name: (identifier) @const)
	(static_item name: (identifier) @static)
`

var captureKinds = map[string]types.DefinitionKind{
	"struct": types.DefStruct,
	"enum":   types.DefEnum,
	"fn":     types.DefFunction,
	"trait":  types.DefTrait,
	"mod":    types.DefModule,
	"impl":   types.DefImpl,
	"const":  types.DefConst,
	"static": types.DefStatic,
}

var (
	queryOnce sync.Once
	query     *sitter.Query
	queryErr  error
)

func definitions() (*sitter.Query, error) {
	queryOnce.Do(func() {
		query, queryErr = sitter.NewQuery([]byte(definitionQuery), rust.GetLanguage())
	})
	return query, queryErr
}

// Report is the outcome of a syntax check.
type Report struct {
	Diagnostics []types.Diagnostic
	Definitions []types.Definition
}

// OK reports whether the source parsed without errors.
func (r *Report) OK() bool {
	return !types.HasErrors(r.Diagnostics)
}

// Check parses source as Rust. Every ERROR or MISSING node in the tree
// becomes a diagnostic with a 1-based position. The error return is
// reserved for failures of the parser itself.
func Check(ctx context.Context, source []byte) (*Report, error) {
	root, err := sitter.ParseCtx(ctx, source, rust.GetLanguage())
	if err != nil {
		return nil, fmt.Errorf("parsing rust source: %w", err)
	}

	report := &Report{}
	if root.HasError() {
		collectErrors(root, source, &report.Diagnostics)
	}

	defs, err := findDefinitions(root, source)
	if err != nil {
		return nil, err
	}
	report.Definitions = defs
	return report, nil
}

// CheckFile reads and checks a file. Diagnostics carry its path.
func CheckFile(ctx context.Context, path string) (*Report, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	report, err := Check(ctx, content)
	if err != nil {
		return nil, err
	}
	for i := range report.Diagnostics {
		report.Diagnostics[i].FilePath = path
	}
	return report, nil
}

// collectErrors walks the tree and records the outermost ERROR nodes and
// every MISSING node.
func collectErrors(n *sitter.Node, source []byte, diags *[]types.Diagnostic) {
	switch {
	case n.IsMissing():
		*diags = append(*diags, diagnostic(n, fmt.Sprintf("missing `%s`", n.Type())))
		return
	case n.IsError():
		*diags = append(*diags, diagnostic(n, fmt.Sprintf("unexpected `%s`", snippet(n.Content(source)))))
		return
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child != nil && (child.HasError() || child.IsMissing()) {
			collectErrors(child, source, diags)
		}
	}
}

func diagnostic(n *sitter.Node, msg string) types.Diagnostic {
	p := n.StartPoint()
	return types.Diagnostic{
		Source:   Source,
		Line:     int(p.Row) + 1,
		Column:   int(p.Column) + 1,
		Severity: types.SeverityError,
		Message:  msg,
	}
}

// snippet returns the first line of text, shortened to maxSnippet bytes.
func snippet(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	if len(line) > maxSnippet {
		line = line[:maxSnippet-3] + "..."
	}
	return line
}

func findDefinitions(root *sitter.Node, source []byte) ([]types.Definition, error) {
	q, err := definitions()
	if err != nil {
		return nil, fmt.Errorf("compiling definition query: %w", err)
	}

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(q, root)

	var defs []types.Definition
	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, c := range m.Captures {
			kind, known := captureKinds[q.CaptureNameForId(c.Index)]
			name := c.Node.Content(source)
			if !known || name == "" {
				continue
			}
			defs = append(defs, types.Definition{
				Name: name,
				Kind: kind,
				Line: int(c.Node.StartPoint().Row) + 1,
			})
		}
	}

	sort.SliceStable(defs, func(i, j int) bool { return defs[i].Line < defs[j].Line })
	return defs, nil
}
