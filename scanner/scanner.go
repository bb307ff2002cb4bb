// Package scanner builds depth-bounded trees of the directories of a
// project, leaving out files, hidden directories and well-known VCS, build
// and dependency directories.
//
// A scan never fails. Directories that cannot be listed show up without
// children and entries whose type cannot be read are skipped, so a partially
// readable project still produces a tree.
package scanner

import (
	"io/fs"
	"log/slog"
	"slices"
	"strings"
)

// IgnoreMatcher prunes additional directories from a scan.
type IgnoreMatcher interface {
	IsIgnored(path string, isDir bool) (bool, error)
}

// Scanner scans directory trees. The zero value is not usable; use New.
type Scanner struct {
	lister Lister
	ignore IgnoreMatcher
	logger *slog.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLister sets the Lister used to read directories. Defaults to OSLister.
func WithLister(l Lister) Option {
	return func(s *Scanner) {
		s.lister = l
	}
}

// WithIgnore prunes every directory m reports as ignored, in addition to the
// fixed exclusions.
func WithIgnore(m IgnoreMatcher) Option {
	return func(s *Scanner) {
		s.ignore = m
	}
}

// WithLogger sets the logger that receives the listing failures a scan
// absorbs, at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// New creates a Scanner.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		lister: OSLister{},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScanDirectory scans root with the default Scanner.
func ScanDirectory(root string) DirectoryNode {
	return New().Scan(root)
}

// Scan returns the directory tree rooted at root, expanded at most MaxDepth
// levels. root is used as given; it does not need to exist.
func (s *Scanner) Scan(root string) DirectoryNode {
	return DirectoryNode{
		Name:     rootName(root),
		Path:     root,
		Children: s.scanRecursive(root, 0),
	}
}

func (s *Scanner) scanRecursive(dir string, depth int) []DirectoryNode {
	result := make([]DirectoryNode, 0)
	if depth >= MaxDepth {
		return result
	}

	entries, err := s.lister.ReadDir(dir)
	if err != nil {
		s.logger.Debug("directory not fully listed", "dir", displayString(dir), "entries", len(entries), "error", err)
	}

	for _, entry := range entries {
		if entry == nil || !isDir(entry) {
			continue
		}

		name := displayString(entry.Name())
		if IsExcluded(name) {
			continue
		}

		path := joinPath(dir, entry.Name())
		if s.ignored(path) {
			continue
		}

		result = append(result, DirectoryNode{
			Name:     name,
			Path:     displayString(path),
			Children: s.scanRecursive(path, depth+1),
		})
	}

	slices.SortStableFunc(result, func(a, b DirectoryNode) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return result
}

// isDir reports whether entry is a directory, without following symlinks.
func isDir(entry fs.DirEntry) bool {
	return entry.Type()&fs.ModeType == fs.ModeDir
}

func (s *Scanner) ignored(path string) bool {
	if s.ignore == nil {
		return false
	}
	ignored, err := s.ignore.IsIgnored(path, true)
	if err != nil {
		s.logger.Debug("ignore check failed", "path", displayString(path), "error", err)
		return false
	}
	return ignored
}
