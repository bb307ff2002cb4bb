package vcs

import (
	"sort"

	"github.com/go-git/go-git/v5"
)

// FileStatus is the state of one changed path, in `git status --short`
// terms: Staging is the index column, Worktree the worktree column.
type FileStatus struct {
	Path     string `json:"path"`
	Staging  string `json:"staging"`
	Worktree string `json:"worktree"`
}

// String formats the status like a line of `git status --short`.
func (s FileStatus) String() string {
	return s.Staging + s.Worktree + " " + s.Path
}

// Status returns the changed paths of the worktree, sorted by path. A clean
// worktree yields an empty slice.
func (r *Repo) Status() ([]FileStatus, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return nil, wrapError(err, "failed to open worktree")
	}
	st, err := wt.Status()
	if err != nil {
		return nil, wrapError(err, "failed to read status")
	}

	out := make([]FileStatus, 0, len(st))
	for path, fs := range st {
		if fs.Staging == git.Unmodified && fs.Worktree == git.Unmodified {
			continue
		}
		out = append(out, FileStatus{
			Path:     path,
			Staging:  string(rune(fs.Staging)),
			Worktree: string(rune(fs.Worktree)),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}
