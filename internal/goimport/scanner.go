// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package goimport turns exported Go data types into Rust declarations:
// structs become pub structs and typed string constant groups become enums.
package goimport

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// skipDirs contains directory names that ScanDir never descends into.
var skipDirs = map[string]bool{
	"vendor":       true,
	".git":         true,
	"testdata":     true,
	"node_modules": true,
}

// ScanResult holds the parsed files of a directory scan.
type ScanResult struct {
	FileSet *token.FileSet
	Files   map[string]*ast.File // Files exporting data types, keyed by path relative to the root
	Skipped []string             // Parsed files with nothing to convert
	Errors  []ScanError
}

// Paths returns the relative paths of the converted files in sorted order.
func (r *ScanResult) Paths() []string {
	paths := make([]string, 0, len(r.Files))
	for p := range r.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// ScanError records a parse failure for a single file.
type ScanError struct {
	FilePath string
	Err      error
}

func (e ScanError) Error() string {
	return fmt.Sprintf("%s: %v", e.FilePath, e.Err)
}

// ScanDir parses the non-test Go sources under dir, at most concurrency
// files at a time (runtime.NumCPU() when concurrency <= 0).
//
// Files that declare no exported type or constant land in Skipped, files
// that fail to parse land in Errors; neither aborts the scan. vendor/,
// .git/, testdata/ and node_modules/ are not walked, nor is anything the
// root .gitignore excludes.
func ScanDir(dir string, concurrency int) (*ScanResult, error) {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving directory: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	sources, err := collectSources(root)
	if err != nil {
		return nil, fmt.Errorf("walking directory: %w", err)
	}

	result := &ScanResult{
		FileSet: token.NewFileSet(),
		Files:   make(map[string]*ast.File, len(sources)),
	}

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = make(chan struct{}, concurrency)
	)
	for _, rel := range sources {
		sem <- struct{}{}
		wg.Add(1)
		go func() {
			defer func() {
				<-sem
				wg.Done()
			}()
			f, parseErr := parser.ParseFile(result.FileSet, filepath.Join(root, rel), nil, parser.SkipObjectResolution)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case parseErr != nil:
				result.Errors = append(result.Errors, ScanError{FilePath: rel, Err: parseErr})
			case !exportsData(f):
				result.Skipped = append(result.Skipped, rel)
			default:
				result.Files[rel] = f
			}
		}()
	}
	wg.Wait()

	sort.Strings(result.Skipped)
	sort.Slice(result.Errors, func(i, j int) bool {
		return result.Errors[i].FilePath < result.Errors[j].FilePath
	})
	return result, nil
}

// collectSources lists the .go files under root that ScanDir parses, as
// paths relative to root.
func collectSources(root string) ([]string, error) {
	ignored := loadIgnore(root)

	var sources []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		parts := strings.Split(filepath.ToSlash(rel), "/")

		if d.IsDir() {
			if skipDirs[d.Name()] || ignored.Match(parts, true) {
				return filepath.SkipDir
			}
			return nil
		}
		name := d.Name()
		if strings.HasSuffix(name, ".go") && !strings.HasSuffix(name, "_test.go") && !ignored.Match(parts, false) {
			sources = append(sources, rel)
		}
		return nil
	})
	return sources, err
}

// loadIgnore builds a matcher from the root .gitignore. A missing file
// matches nothing.
func loadIgnore(root string) gitignore.Matcher {
	var patterns []gitignore.Pattern
	if data, err := os.ReadFile(filepath.Join(root, ".gitignore")); err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			patterns = append(patterns, gitignore.ParsePattern(line, nil))
		}
	}
	return gitignore.NewMatcher(patterns)
}

// exportsData reports whether f declares an exported type or constant at
// the top level. Aliases do not count.
func exportsData(f *ast.File) bool {
	for _, d := range f.Decls {
		gd, ok := d.(*ast.GenDecl)
		if !ok {
			continue
		}
		for _, spec := range gd.Specs {
			switch s := spec.(type) {
			case *ast.TypeSpec:
				if s.Name.IsExported() && !s.Assign.IsValid() {
					return true
				}
			case *ast.ValueSpec:
				if gd.Tok != token.CONST {
					continue
				}
				for _, name := range s.Names {
					if name.IsExported() {
						return true
					}
				}
			}
		}
	}
	return false
}
