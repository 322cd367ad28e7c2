// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shapeModel = `
items:
  - kind: enum
    name: Shape
    variants:
      - name: Circle
        values: [f64]
      - name: Square
        values: [f64]
`

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "rmodgen "+version+"\n", out)
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	model := filepath.Join(dir, "shape.yaml")
	require.NoError(t, os.WriteFile(model, []byte(shapeModel), 0o644))

	out, _, err := execute(t, "render", model)
	require.NoError(t, err)
	assert.Contains(t, out, "enum Shape {")
	assert.Contains(t, out, "Circle(f64),")
}

func TestGenerate_WritesAndReportsJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shape.yaml"), []byte(shapeModel), 0o644))

	out, _, err := execute(t, "--workdir", dir, "--no-git", "generate", "shape.yaml", "-o", "src/shape.rs")
	require.NoError(t, err)

	var result struct {
		Files []struct {
			Path   string `json:"path"`
			Status string `json:"status"`
		} `json:"files"`
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Success)
	require.Len(t, result.Files, 1)
	assert.Equal(t, "src/shape.rs", result.Files[0].Path)
	assert.Equal(t, "written", result.Files[0].Status)

	_, err = os.Stat(filepath.Join(dir, "src", "shape.rs"))
	assert.NoError(t, err)
}

func TestGenerate_RequiresOutput(t *testing.T) {
	_, _, err := execute(t, "--no-git", "generate", "shape.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output")
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.rs")
	bad := filepath.Join(dir, "bad.rs")
	require.NoError(t, os.WriteFile(good, []byte("pub struct Good;\n\nfn run() {}\n"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("fn broken( {\n"), 0o644))

	out, _, err := execute(t, "check", good)
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Good"`)
	assert.Contains(t, out, `"name": "run"`)

	_, stderr, err := execute(t, "check", bad)
	require.Error(t, err)
	assert.Contains(t, stderr, "bad.rs:1:")
}
