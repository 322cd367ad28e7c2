// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_ValidRepo(t *testing.T) {
	dir := initTestRepo(t)

	repo, err := Open(Config{WorkDir: dir, AutoCommit: true})
	require.NoError(t, err)
	assert.NotNil(t, repo)
}

func TestOpen_Subdirectory(t *testing.T) {
	dir := initTestRepo(t)
	sub := filepath.Join(dir, "src", "model")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	repo, err := Open(Config{WorkDir: sub})
	require.NoError(t, err)

	root, err := repo.Root()
	require.NoError(t, err)
	assert.Equal(t, dir, root)
}

func TestOpen_NotARepo(t *testing.T) {
	dir := t.TempDir()

	_, err := Open(Config{WorkDir: dir})
	assert.ErrorIs(t, err, ErrNoGit)
}

func TestIsDirty_CleanRepo(t *testing.T) {
	dir := initTestRepo(t)
	repo, err := Open(Config{WorkDir: dir})
	require.NoError(t, err)

	dirty, err := repo.IsDirty()
	require.NoError(t, err)
	assert.False(t, dirty)
}

func TestIsDirty_WithUnstagedChanges(t *testing.T) {
	dir := initTestRepo(t)
	repo, err := Open(Config{WorkDir: dir})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "lib.rs"), []byte("pub struct Changed;\n"), 0o644))

	dirty, err := repo.IsDirty()
	require.NoError(t, err)
	assert.True(t, dirty)
}

func TestIsDirty_WithUntrackedFiles(t *testing.T) {
	dir := initTestRepo(t)
	repo, err := Open(Config{WorkDir: dir})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.rs"), []byte("struct New;\n"), 0o644))

	dirty, err := repo.IsDirty()
	require.NoError(t, err)
	assert.True(t, dirty)
}

func TestIsGeneratorCommit(t *testing.T) {
	t.Run("generator commit", func(t *testing.T) {
		dir := initTestRepo(t)
		addFileAndCommit(t, dir, "model.rs", "struct Model;\n", "chore(rmodgen): regenerate model.rs\n\n"+generatedTrailer)

		repo, err := Open(Config{WorkDir: dir})
		require.NoError(t, err)

		isGenerator, err := repo.IsGeneratorCommit()
		require.NoError(t, err)
		assert.True(t, isGenerator)
	})

	t.Run("hand-written commit", func(t *testing.T) {
		dir := initTestRepo(t)

		repo, err := Open(Config{WorkDir: dir})
		require.NoError(t, err)

		isGenerator, err := repo.IsGeneratorCommit()
		require.NoError(t, err)
		assert.False(t, isGenerator)
	})
}

func TestGenerateMessage(t *testing.T) {
	tests := []struct {
		name        string
		summary     string
		files       []string
		wantSubject string
	}{
		{
			name:        "summary",
			summary:     "models.yaml",
			files:       []string{"src/model.rs"},
			wantSubject: "chore(rmodgen): regenerate models.yaml",
		},
		{
			name:        "summary trailing period trimmed",
			summary:     "  models.yaml.  ",
			files:       []string{"src/model.rs"},
			wantSubject: "chore(rmodgen): regenerate models.yaml",
		},
		{
			name:        "single file without summary",
			files:       []string{"src/model.rs"},
			wantSubject: "chore(rmodgen): regenerate src/model.rs",
		},
		{
			name:        "several files without summary",
			files:       []string{"a.rs", "b.rs", "c.rs"},
			wantSubject: "chore(rmodgen): regenerate 3 files",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := GenerateMessage(tt.summary, tt.files)
			assert.Equal(t, tt.wantSubject, firstLineOf(msg))
			assert.True(t, strings.HasSuffix(msg, "\n\n"+generatedTrailer))
		})
	}
}

func TestGenerateMessage_LongSummaryTruncated(t *testing.T) {
	long := "a very long list of model files that should be truncated because the subject must stay short"
	msg := GenerateMessage(long, []string{"long.rs"})

	firstLine := firstLineOf(msg)
	assert.Len(t, firstLine, maxSubjectLength)
	assert.True(t, strings.HasSuffix(firstLine, "..."))
}

func TestGenerateMessage_IncludesFiles(t *testing.T) {
	msg := GenerateMessage("models", []string{"a.rs", "b.rs"})
	assert.Contains(t, msg, "Generated files:\n- a.rs\n- b.rs\n\n"+generatedTrailer)
}

// initTestRepo creates a temp dir with a git repo, an initial commit, and
// returns the directory path.
func initTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	r, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := r.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "lib.rs"), []byte("pub struct Lib;\n"), 0o644))

	_, err = wt.Add("lib.rs")
	require.NoError(t, err)

	_, err = wt.Commit("initial commit", &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@test.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return dir
}

// addFileAndCommit adds a file and creates a commit with the given message.
func addFileAndCommit(t *testing.T, dir, name, content, msg string) {
	t.Helper()

	r, err := gogit.PlainOpen(dir)
	require.NoError(t, err)

	wt, err := r.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))

	_, err = wt.Add(name)
	require.NoError(t, err)

	_, err = wt.Commit(msg, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@test.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)
}

func firstLineOf(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
