// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package generator

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gitpkg "github.com/petar-djukic/rmodgen/internal/git"
	"github.com/petar-djukic/rmodgen/pkg/rust"
	"github.com/petar-djukic/rmodgen/pkg/types"
)

const pointModel = `
items:
  - kind: struct
    name: Point
    visibility: pub
    fields:
      - {name: x, type: i64, visibility: pub}
      - {name: y, type: i64, visibility: pub}
`

func pointRender() string {
	return rust.NewFile().WithComponent(
		rust.NewStruct("Point").
			WithVisibility(rust.Public).
			WithField(rust.PublicField("x", "i64")).
			WithField(rust.PublicField("y", "i64")),
	).Render()
}

const pointHeader = "// Code generated by rmodgen from model/point.yaml. DO NOT EDIT.\n\n"

// setupWorkDir creates a temp dir with the given files.
func setupWorkDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

var pointJob = Job{Source: "model/point.yaml", Output: "src/point.rs"}

func TestRunner_WritesFileWithHeader(t *testing.T) {
	dir := setupWorkDir(t, map[string]string{"model/point.yaml": pointModel})

	runner := NewRunner(Deps{WorkDir: dir, NoGit: true})
	result, err := runner.Run(context.Background(), []Job{pointJob})
	require.NoError(t, err)

	assert.True(t, result.Success)
	require.Len(t, result.Files, 1)
	assert.Equal(t, types.StatusWritten, result.Files[0].Status)
	assert.Equal(t, len(pointRender()), result.Files[0].Bytes)
	assert.Empty(t, result.Diagnostics)

	got := readFile(t, filepath.Join(dir, "src", "point.rs"))
	if diff := cmp.Diff(pointHeader+pointRender(), got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunner_SecondRunUnchanged(t *testing.T) {
	dir := setupWorkDir(t, map[string]string{"model/point.yaml": pointModel})
	runner := NewRunner(Deps{WorkDir: dir, NoGit: true})

	_, err := runner.Run(context.Background(), []Job{pointJob})
	require.NoError(t, err)

	result, err := runner.Run(context.Background(), []Job{pointJob})
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	assert.Equal(t, types.StatusUnchanged, result.Files[0].Status)
}

func TestRunner_DryRunCollectsDiff(t *testing.T) {
	dir := setupWorkDir(t, map[string]string{
		"model/point.yaml": pointModel,
		"src/point.rs":     "struct Old;\n",
	})

	runner := NewRunner(Deps{WorkDir: dir, DryRun: true})
	result, err := runner.Run(context.Background(), []Job{pointJob})
	require.NoError(t, err)

	assert.True(t, result.Success)
	require.Len(t, result.Files, 1)
	assert.Equal(t, types.StatusSkipped, result.Files[0].Status)
	require.Contains(t, result.Diffs, "src/point.rs")
	assert.Contains(t, result.Diffs["src/point.rs"], "-struct Old;")
	assert.Contains(t, result.Diffs["src/point.rs"], "+pub struct Point {")

	assert.Equal(t, "struct Old;\n", readFile(t, filepath.Join(dir, "src", "point.rs")))
}

func TestRunner_SplicesRegion(t *testing.T) {
	existing := strings.Join([]string{
		"use std::fmt;",
		"",
		"// rmodgen:begin point",
		"old",
		"// rmodgen:end point",
		"",
		"fn keep() {}",
		"",
	}, "\n")
	dir := setupWorkDir(t, map[string]string{
		"model/point.yaml": pointModel,
		"src/lib.rs":       existing,
	})

	runner := NewRunner(Deps{WorkDir: dir, NoGit: true})
	result, err := runner.Run(context.Background(), []Job{{Source: "model/point.yaml", Output: "src/lib.rs", Region: "point"}})
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	assert.Equal(t, types.StatusWritten, result.Files[0].Status)
	assert.Equal(t, "point", result.Files[0].Region)

	got := readFile(t, filepath.Join(dir, "src", "lib.rs"))
	assert.NotContains(t, got, "Code generated")
	assert.NotContains(t, got, "old")
	assert.Contains(t, got, "// rmodgen:begin point\npub struct Point {")
	assert.Contains(t, got, "// rmodgen:end point\n\nfn keep() {}")
}

func TestRunner_SpliceIntoMissingFile(t *testing.T) {
	dir := setupWorkDir(t, map[string]string{"model/point.yaml": pointModel})

	runner := NewRunner(Deps{WorkDir: dir, NoGit: true})
	result, err := runner.Run(context.Background(), []Job{{Source: "model/point.yaml", Output: "src/lib.rs", Region: "point"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
	assert.False(t, result.Success)
}

func TestRunner_LoadErrorWrapsErrLoad(t *testing.T) {
	dir := setupWorkDir(t, map[string]string{
		"model/bad.yaml": "items:\n  - kind: strct\n    name: Point\n",
	})

	runner := NewRunner(Deps{WorkDir: dir, NoGit: true})
	result, err := runner.Run(context.Background(), []Job{{Source: "model/bad.yaml", Output: "src/bad.rs"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoad)
	assert.Contains(t, err.Error(), "items[0]")
	assert.False(t, result.Success)

	_, statErr := os.Stat(filepath.Join(dir, "src", "bad.rs"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunner_MissingOutput(t *testing.T) {
	dir := setupWorkDir(t, map[string]string{"model/point.yaml": pointModel})

	runner := NewRunner(Deps{WorkDir: dir, NoGit: true})
	_, err := runner.Run(context.Background(), []Job{{Source: "model/point.yaml"}})
	assert.ErrorIs(t, err, ErrLoad)
}

const brokenModel = `
items:
  - kind: text
    text: "fn broken( {"
`

func TestRunner_SyntaxErrorBlocksWrite(t *testing.T) {
	dir := setupWorkDir(t, map[string]string{"model/broken.yaml": brokenModel})
	job := Job{Source: "model/broken.yaml", Output: "src/broken.rs"}

	runner := NewRunner(Deps{WorkDir: dir, NoGit: true})
	result, err := runner.Run(context.Background(), []Job{job})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCheck)
	assert.False(t, result.Success)

	require.Len(t, result.Files, 1)
	assert.Equal(t, types.StatusSkipped, result.Files[0].Status)
	require.NotEmpty(t, result.Diagnostics)
	assert.Equal(t, "src/broken.rs", result.Diagnostics[0].FilePath)
	assert.True(t, types.HasErrors(result.Diagnostics))

	_, statErr := os.Stat(filepath.Join(dir, "src", "broken.rs"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunner_ForceWritesDespiteSyntaxErrors(t *testing.T) {
	dir := setupWorkDir(t, map[string]string{"model/broken.yaml": brokenModel})
	job := Job{Source: "model/broken.yaml", Output: "src/broken.rs"}

	runner := NewRunner(Deps{WorkDir: dir, NoGit: true, Force: true})
	result, err := runner.Run(context.Background(), []Job{job})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.Diagnostics)

	assert.Contains(t, readFile(t, filepath.Join(dir, "src", "broken.rs")), "fn broken( {")
}

const trailingBrokenModel = `
items:
  - kind: struct
    name: A
  - kind: text
    text: "fn broken( {"
`

// lineOf returns the 1-based line of the first line containing needle.
func lineOf(t *testing.T, content, needle string) int {
	t.Helper()
	for i, line := range strings.Split(content, "\n") {
		if strings.Contains(line, needle) {
			return i + 1
		}
	}
	t.Fatalf("%q not found in:\n%s", needle, content)
	return 0
}

func TestRunner_DiagnosticLinesMatchWrittenFile(t *testing.T) {
	dir := setupWorkDir(t, map[string]string{"model/broken.yaml": trailingBrokenModel})
	job := Job{Source: "model/broken.yaml", Output: "src/broken.rs"}

	runner := NewRunner(Deps{WorkDir: dir, NoGit: true, Force: true})
	result, err := runner.Run(context.Background(), []Job{job})
	require.NoError(t, err)
	require.NotEmpty(t, result.Diagnostics)

	written := readFile(t, filepath.Join(dir, "src", "broken.rs"))
	assert.Equal(t, lineOf(t, written, "fn broken"), result.Diagnostics[0].Line)
	assert.Equal(t, written, result.Sources["src/broken.rs"])
}

func TestRunner_DiagnosticLinesMatchSplicedRegion(t *testing.T) {
	existing := "use std::fmt;\n\nmod inner {\n    // rmodgen:begin body\n    // rmodgen:end body\n}\n"
	dir := setupWorkDir(t, map[string]string{
		"model/broken.yaml": trailingBrokenModel,
		"src/lib.rs":        existing,
	})
	job := Job{Source: "model/broken.yaml", Output: "src/lib.rs", Region: "body"}

	runner := NewRunner(Deps{WorkDir: dir, NoGit: true, Force: true})
	result, err := runner.Run(context.Background(), []Job{job})
	require.NoError(t, err)
	require.NotEmpty(t, result.Diagnostics)

	written := readFile(t, filepath.Join(dir, "src", "lib.rs"))
	assert.Contains(t, written, "    fn broken( {\n")
	d := result.Diagnostics[0]
	assert.Equal(t, lineOf(t, written, "fn broken"), d.Line)
	assert.Greater(t, d.Column, 4)
	assert.Equal(t, written, result.Sources["src/lib.rs"])
}

func TestRunner_BlockedFileKeepsCheckedSource(t *testing.T) {
	dir := setupWorkDir(t, map[string]string{"model/broken.yaml": trailingBrokenModel})
	job := Job{Source: "model/broken.yaml", Output: "src/broken.rs"}

	runner := NewRunner(Deps{WorkDir: dir, NoGit: true})
	result, err := runner.Run(context.Background(), []Job{job})
	require.ErrorIs(t, err, ErrCheck)
	require.NotEmpty(t, result.Diagnostics)

	source := result.Sources["src/broken.rs"]
	assert.True(t, strings.HasPrefix(source, "// Code generated by rmodgen from model/broken.yaml. DO NOT EDIT.\n\n"))
	assert.Equal(t, lineOf(t, source, "fn broken"), result.Diagnostics[0].Line)
}

func TestRunner_ImportsGoPackage(t *testing.T) {
	dir := setupWorkDir(t, map[string]string{
		"api/user.go": "package api\n\ntype User struct {\n\tFullName string `json:\"full_name\"`\n\tAge int\n}\n",
	})

	runner := NewRunner(Deps{WorkDir: dir, NoGit: true, Derive: "#[derive(Debug)]"})
	result, err := runner.Run(context.Background(), []Job{{Source: "api", Output: "src/api.rs"}})
	require.NoError(t, err)
	assert.True(t, result.Success)

	got := readFile(t, filepath.Join(dir, "src", "api.rs"))
	assert.True(t, strings.HasPrefix(got, "// Code generated by rmodgen from api. DO NOT EDIT.\n\n"))
	assert.Contains(t, got, "#[derive(Debug)]\npub struct User {")
	assert.Contains(t, got, "pub full_name: String,")
	assert.Contains(t, got, "pub age: i64,")
}

func TestRunner_ContextCancellation(t *testing.T) {
	dir := setupWorkDir(t, map[string]string{"model/point.yaml": pointModel})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewRunner(Deps{WorkDir: dir, NoGit: true})
	result, err := runner.Run(ctx, []Job{pointJob})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, result.Success)
	assert.Empty(t, result.Files)
}

func TestRunner_CheckCommandFailure(t *testing.T) {
	dir := setupWorkDir(t, map[string]string{
		"model/point.yaml": pointModel,
		"check.sh":         "echo \"$1:1:1: error: rejected\"\nexit 1\n",
	})

	runner := NewRunner(Deps{
		WorkDir:      dir,
		NoGit:        true,
		CheckCmd:     "sh check.sh {file}",
		CheckTimeout: 10 * time.Second,
	})
	result, err := runner.Run(context.Background(), []Job{pointJob})
	require.NoError(t, err)

	assert.False(t, result.Success)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, "src/point.rs", result.Diagnostics[0].FilePath)
	assert.Equal(t, "rejected", result.Diagnostics[0].Message)
}

func TestRunner_CommitsGeneratedFiles(t *testing.T) {
	dir := initRepo(t, map[string]string{"model/point.yaml": pointModel})

	runner := NewRunner(Deps{WorkDir: dir, Commit: true})
	result, err := runner.Run(context.Background(), []Job{pointJob})
	require.NoError(t, err)
	assert.True(t, result.Success)

	repo, err := gitpkg.Open(gitpkg.Config{WorkDir: dir})
	require.NoError(t, err)

	isGenerator, err := repo.IsGeneratorCommit()
	require.NoError(t, err)
	assert.True(t, isGenerator)

	dirty, err := repo.IsDirty()
	require.NoError(t, err)
	assert.False(t, dirty)
}

func TestRunner_DirtyTreeRejected(t *testing.T) {
	dir := initRepo(t, map[string]string{"model/point.yaml": pointModel})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("wip\n"), 0o644))

	runner := NewRunner(Deps{WorkDir: dir, Commit: true})
	_, err := runner.Run(context.Background(), []Job{pointJob})
	assert.ErrorIs(t, err, gitpkg.ErrDirtyWorkTree)

	_, statErr := os.Stat(filepath.Join(dir, "src", "point.rs"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		jobs []Job
		want string
	}{
		{"single", []Job{{Source: "a.yaml"}}, "a.yaml"},
		{"deduplicated", []Job{{Source: "a.yaml"}, {Source: "a.yaml"}, {Source: "b.toml"}}, "a.yaml, b.toml"},
		{"many", []Job{{Source: "a"}, {Source: "b"}, {Source: "c"}, {Source: "d"}}, "4 sources"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, summarize(tt.jobs))
		})
	}
}

// initRepo creates a git repository whose initial commit holds files.
func initRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := setupWorkDir(t, files)

	r, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := r.Worktree()
	require.NoError(t, err)

	require.NoError(t, wt.AddWithOptions(&gogit.AddOptions{All: true}))
	_, err = wt.Commit("initial commit", &gogit.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@test.com", When: time.Now()},
	})
	require.NoError(t, err)
	return dir
}

func TestRunner_DirtyTreeIgnoredWithoutCommit(t *testing.T) {
	dir := initRepo(t, map[string]string{"model/point.yaml": pointModel})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("wip\n"), 0o644))

	runner := NewRunner(Deps{WorkDir: dir})
	result, err := runner.Run(context.Background(), []Job{pointJob})
	require.NoError(t, err)
	assert.True(t, result.Success)

	repo, err := gitpkg.Open(gitpkg.Config{WorkDir: dir})
	require.NoError(t, err)
	isGenerator, err := repo.IsGeneratorCommit()
	require.NoError(t, err)
	assert.False(t, isGenerator)
}
