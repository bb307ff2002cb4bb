package main

import (
	"errors"
	"fmt"

	"github.com/hayeah/projtree/internal/vcs"
)

// GitCmd groups the git subcommands.
type GitCmd struct {
	Status   *GitStatusCmd   `arg:"subcommand:status" help:"Show the current branch and changed files"`
	Branches *GitBranchesCmd `arg:"subcommand:branches" help:"List local branches"`
	Branch   *GitBranchCmd   `arg:"subcommand:branch" help:"Create a branch at HEAD"`
}

type GitStatusCmd struct {
	Root string `arg:"positional" default:"." help:"Directory inside the repository"`
}

type GitBranchesCmd struct {
	Root string `arg:"positional" default:"." help:"Directory inside the repository"`
}

type GitBranchCmd struct {
	Root string `arg:"positional,required" help:"Directory inside the repository"`
	Name string `arg:"positional,required" help:"Name of the new branch"`
}

// GitRunner executes one git subcommand against the repository at a root.
type GitRunner struct {
	Args GitCmd
	App  *App
}

// NewGitRunner creates and initializes a new GitRunner
func NewGitRunner(cmd GitCmd, app *App) (*GitRunner, error) {
	if cmd.Status == nil && cmd.Branches == nil && cmd.Branch == nil {
		return nil, fmt.Errorf("no git subcommand specified, use 'status', 'branches' or 'branch'")
	}
	return &GitRunner{
		Args: cmd,
		App:  app,
	}, nil
}

// Run executes the git subcommand
func (r *GitRunner) Run() error {
	switch {
	case r.Args.Status != nil:
		return r.status(r.Args.Status.Root)
	case r.Args.Branches != nil:
		return r.branches(r.Args.Branches.Root)
	default:
		return r.createBranch(r.Args.Branch.Root, r.Args.Branch.Name)
	}
}

func (r *GitRunner) status(root string) error {
	repo, err := vcs.Open(root)
	if err != nil {
		return err
	}

	branch, err := repo.CurrentBranch()
	switch {
	case errors.Is(err, vcs.ErrDetachedHead):
		branch = "(detached HEAD)"
	case err != nil:
		return err
	}

	changes, err := repo.Status()
	if err != nil {
		return err
	}

	fmt.Fprintf(r.App.Out, "On branch %s\n", branch)
	if len(changes) == 0 {
		_, err = fmt.Fprintln(r.App.Out, "nothing to commit, working tree clean")
		return err
	}
	for _, c := range changes {
		if _, err := fmt.Fprintln(r.App.Out, c.String()); err != nil {
			return err
		}
	}
	return nil
}

func (r *GitRunner) branches(root string) error {
	repo, err := vcs.Open(root)
	if err != nil {
		return err
	}
	names, err := repo.Branches()
	if err != nil {
		return err
	}

	// a detached HEAD marks no branch
	current, _ := repo.CurrentBranch()
	for _, name := range names {
		marker := "  "
		if name == current {
			marker = "* "
		}
		if _, err := fmt.Fprintln(r.App.Out, marker+name); err != nil {
			return err
		}
	}
	return nil
}

func (r *GitRunner) createBranch(root, name string) error {
	repo, err := vcs.Open(root)
	if err != nil {
		return err
	}
	if err := repo.CreateBranch(name); err != nil {
		return err
	}
	r.App.Logger.Info("created branch", "repo", repo.Root(), "branch", name)
	_, err = fmt.Fprintf(r.App.Out, "created branch %s\n", name)
	return err
}
