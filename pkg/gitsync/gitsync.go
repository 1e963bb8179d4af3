// Package gitsync keeps a shelf script tree in step with its upstream git
// repository. Studios typically distribute shelves as a repo that artists
// pull before Maya rebuilds the shelf.
package gitsync

import (
	"context"
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
)

// Repo wraps a git repository holding a shelf script tree.
type Repo struct {
	path string
	repo *git.Repository
}

// Open opens the repository at path. A shelf root that is not a git
// repository is an error; callers treat it as "nothing to sync".
func Open(path string) (*Repo, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("gitsync: open %s: %w", path, err)
	}

	return &Repo{path: path, repo: repo}, nil
}

// Path returns the repository's working tree path.
func (r *Repo) Path() string { return r.path }

// Head returns the short branch name and commit hash of HEAD.
func (r *Repo) Head() (branch, hash string, err error) {
	ref, err := r.repo.Head()
	if err != nil {
		return "", "", fmt.Errorf("gitsync: head: %w", err)
	}

	return ref.Name().Short(), ref.Hash().String(), nil
}

// Pull fast-forwards the working tree from origin. An already up-to-date
// tree is not an error; the bool reports whether anything changed.
func (r *Repo) Pull(ctx context.Context) (bool, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("gitsync: worktree: %w", err)
	}

	err = wt.PullContext(ctx, &git.PullOptions{RemoteName: "origin"})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("gitsync: pull: %w", err)
	}

	return true, nil
}

// IsClean reports whether the working tree has no local modifications.
// Local edits to shelf scripts usually mean an artist is iterating on a
// tool; sync should warn rather than overwrite.
func (r *Repo) IsClean() (bool, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("gitsync: worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("gitsync: status: %w", err)
	}

	return status.IsClean(), nil
}
