package vcs

import (
	"errors"
	"fmt"
)

// Sentinel errors, checkable with errors.Is.
var (
	// ErrNotRepository is returned when no repository contains the path.
	ErrNotRepository = errors.New("not a git repository")
	// ErrDetachedHead is returned when HEAD does not point at a branch.
	ErrDetachedHead = errors.New("HEAD is detached")
	// ErrBranchExists is returned when creating a branch that already exists.
	ErrBranchExists = errors.New("branch already exists")
	// ErrInvalidBranch is returned for names git does not accept as branches.
	ErrInvalidBranch = errors.New("invalid branch name")
	// ErrNoCommits is returned when an operation needs a commit and the
	// repository has none yet.
	ErrNoCommits = errors.New("repository has no commits")
)

// wrapError annotates err with msg, keeping it matchable with errors.Is.
func wrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
