// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"fmt"
	"path/filepath"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

const (
	authorName  = "rmodgen"
	authorEmail = "noreply@rmodgen"
)

func signature() *object.Signature {
	return &object.Signature{
		Name:  authorName,
		Email: authorEmail,
		When:  time.Now(),
	}
}

// HandleDirty checks for uncommitted changes before a run. A dirty tree is
// committed separately when DirtyCommit is set, tolerated when AllowDirty
// is set, and rejected with ErrDirtyWorkTree otherwise.
func (r *Repo) HandleDirty() error {
	dirty, err := r.IsDirty()
	if err != nil {
		return err
	}

	switch {
	case !dirty:
		return nil
	case r.cfg.DirtyCommit:
	case r.cfg.AllowDirty:
		return nil
	default:
		return ErrDirtyWorkTree
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}

	if err := wt.AddWithOptions(&gogit.AddOptions{All: true}); err != nil {
		return fmt.Errorf("staging dirty files: %w", err)
	}

	if _, err := wt.Commit(dirtyCommitMsg, &gogit.CommitOptions{Author: signature()}); err != nil {
		return fmt.Errorf("committing dirty files: %w", err)
	}

	return nil
}

// AutoCommit stages exactly the given files and commits them with a
// generated message carrying the Generated-By trailer. Paths may be
// absolute or relative to the repository root. Nothing is committed when
// AutoCommit is off or no file changed.
func (r *Repo) AutoCommit(files []string, summary string) error {
	if !r.cfg.AutoCommit || len(files) == 0 {
		return nil
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}
	root := wt.Filesystem.Root()

	rel := make([]string, 0, len(files))
	for _, f := range files {
		p := f
		if filepath.IsAbs(f) {
			if p, err = filepath.Rel(root, f); err != nil {
				return fmt.Errorf("resolving %s: %w", f, err)
			}
		}
		p = filepath.ToSlash(p)
		if _, err := wt.Add(p); err != nil {
			return fmt.Errorf("staging %s: %w", p, err)
		}
		rel = append(rel, p)
	}

	status, err := wt.Status()
	if err != nil {
		return fmt.Errorf("getting status: %w", err)
	}
	staged := false
	for _, p := range rel {
		if s := status.File(p); s.Staging != gogit.Unmodified && s.Staging != gogit.Untracked {
			staged = true
			break
		}
	}
	if !staged {
		return nil
	}

	msg := GenerateMessage(summary, rel)
	if _, err := wt.Commit(msg, &gogit.CommitOptions{Author: signature()}); err != nil {
		return fmt.Errorf("committing: %w", err)
	}

	return nil
}

// Undo reverts the last commit if it was made by rmodgen. It resets
// softly to the parent so the generated changes stay in the work tree.
func (r *Repo) Undo() error {
	isGenerator, err := r.IsGeneratorCommit()
	if err != nil {
		return err
	}
	if !isGenerator {
		return ErrNotGeneratorCommit
	}

	head, err := r.repo.Head()
	if err != nil {
		return fmt.Errorf("getting HEAD: %w", err)
	}

	commit, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		return fmt.Errorf("getting commit: %w", err)
	}

	if commit.NumParents() == 0 {
		return fmt.Errorf("cannot undo: HEAD is the initial commit")
	}

	parent, err := commit.Parent(0)
	if err != nil {
		return fmt.Errorf("getting parent commit: %w", err)
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}

	err = wt.Reset(&gogit.ResetOptions{
		Commit: parent.Hash,
		Mode:   gogit.SoftReset,
	})
	if err != nil {
		return fmt.Errorf("resetting to parent: %w", err)
	}

	return nil
}
