// Package vcs reads and updates the git state of a project: the current
// branch, the branch list, branch creation and worktree status.
//
// It is independent of the scanner; the project browser shows its output
// next to the directory tree.
package vcs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Repo is a git repository opened from a path inside its worktree.
type Repo struct {
	repo *git.Repository
	root string
}

// Open opens the repository containing path, searching parent directories.
func Open(path string) (*Repo, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, wrapError(ErrNotRepository, path)
	}
	if err != nil {
		return nil, wrapError(err, "failed to open repository")
	}

	root := path
	if wt, err := repo.Worktree(); err == nil {
		root = wt.Filesystem.Root()
	}
	return &Repo{repo: repo, root: root}, nil
}

// Root returns the top-level directory of the worktree.
func (r *Repo) Root() string {
	return r.root
}

// CurrentBranch returns the branch HEAD points at. It works in a repository
// without commits; a detached HEAD yields ErrDetachedHead.
func (r *Repo) CurrentBranch() (string, error) {
	head, err := r.repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", wrapError(err, "failed to read HEAD")
	}
	if head.Type() != plumbing.SymbolicReference || !head.Target().IsBranch() {
		return "", ErrDetachedHead
	}
	return head.Target().Short(), nil
}

// Branches returns the local branch names, sorted.
func (r *Repo) Branches() ([]string, error) {
	iter, err := r.repo.Branches()
	if err != nil {
		return nil, wrapError(err, "failed to list branches")
	}
	defer iter.Close()

	var names []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, wrapError(err, "failed to list branches")
	}
	sort.Strings(names)
	return names, nil
}

// CreateBranch creates branch name at the current HEAD commit without
// checking it out.
func (r *Repo) CreateBranch(name string) error {
	refName := plumbing.NewBranchReferenceName(name)
	if name == "" || refName.Validate() != nil {
		return fmt.Errorf("%w: %q", ErrInvalidBranch, name)
	}

	if _, err := r.repo.Reference(refName, false); err == nil {
		return fmt.Errorf("%w: %s", ErrBranchExists, name)
	}

	head, err := r.repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return ErrNoCommits
	}
	if err != nil {
		return wrapError(err, "failed to resolve HEAD")
	}

	if err := r.repo.Storer.SetReference(plumbing.NewHashReference(refName, head.Hash())); err != nil {
		return wrapError(err, "failed to create branch reference")
	}
	return nil
}
