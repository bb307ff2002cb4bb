// Package ignore prunes directories that a repository's .gitignore files
// exclude. It plugs into scanner.WithIgnore.
package ignore

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

const (
	gitignoreFile = ".gitignore"
	commentPrefix = "#"
)

// Ignore encapsulates gitignore pattern matching for one project root.
//
// The .gitignore of a directory is read the first time a path below it is
// checked, so only directories a scan actually visits are read. Files that
// cannot be read contribute no patterns.
type Ignore struct {
	fs       billy.Filesystem
	rootPath string

	mu       sync.Mutex
	patterns []gitignore.Pattern
	loaded   map[string]bool // slash-separated dirs whose .gitignore was read
	matcher  gitignore.Matcher
}

// NewIgnore prepares matching for rootPath, starting from the user's global
// excludes file and .git/info/exclude. rootPath does not need to exist.
func NewIgnore(rootPath string) *Ignore {
	var patterns []gitignore.Pattern
	if global, err := gitignore.LoadGlobalPatterns(osfs.New(string(filepath.Separator))); err == nil {
		patterns = append(patterns, global...)
	}

	fs := osfs.New(rootPath)
	patterns = append(patterns, readPatterns(fs, []string{".git", "info", "exclude"}, nil)...)

	ig := NewIgnoreFromPatterns(rootPath, patterns)
	ig.fs = fs
	return ig
}

// NewIgnoreFromPatterns builds an Ignore from already parsed patterns. It
// reads no .gitignore files.
func NewIgnoreFromPatterns(rootPath string, patterns []gitignore.Pattern) *Ignore {
	return &Ignore{
		rootPath: rootPath,
		patterns: patterns,
		loaded:   map[string]bool{},
		matcher:  gitignore.NewMatcher(patterns),
	}
}

// Patterns returns the number of patterns loaded so far.
func (ig *Ignore) Patterns() int {
	ig.mu.Lock()
	defer ig.mu.Unlock()
	return len(ig.patterns)
}

// IsIgnored reports whether path, a file or directory below the root, is
// excluded by the .gitignore files of its ancestors. Paths outside the root
// are never ignored.
func (ig *Ignore) IsIgnored(path string, isDir bool) (bool, error) {
	if isDir && filepath.Base(path) == ".git" {
		return true, nil
	}

	relPath, err := filepath.Rel(ig.rootPath, path)
	if err != nil {
		return false, err
	}

	if relPath == "." || relPath == ".." || strings.HasPrefix(relPath, ".."+string(os.PathSeparator)) {
		return false, nil
	}

	parts := strings.Split(relPath, string(os.PathSeparator))

	ig.mu.Lock()
	defer ig.mu.Unlock()
	for i := range parts {
		ig.loadDir(parts[:i])
	}
	return ig.matcher.Match(parts, isDir), nil
}

// loadDir reads the .gitignore of dir once. Deeper files are appended last
// and so take precedence. Callers hold mu.
func (ig *Ignore) loadDir(dir []string) {
	if ig.fs == nil {
		return
	}
	key := strings.Join(dir, "/")
	if ig.loaded[key] {
		return
	}
	ig.loaded[key] = true

	file := append(append([]string{}, dir...), gitignoreFile)
	ps := readPatterns(ig.fs, file, dir)
	if len(ps) == 0 {
		return
	}
	ig.patterns = append(ig.patterns, ps...)
	ig.matcher = gitignore.NewMatcher(ig.patterns)
}

// readPatterns parses the ignore file at path; domain is the directory its
// patterns are relative to. A missing or unreadable file has no patterns.
func readPatterns(fs billy.Filesystem, path []string, domain []string) []gitignore.Pattern {
	data, err := util.ReadFile(fs, fs.Join(path...))
	if err != nil {
		return nil
	}

	var ps []gitignore.Pattern
	for _, line := range strings.Split(string(bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))), "\n") {
		if strings.HasPrefix(line, commentPrefix) || strings.TrimSpace(line) == "" {
			continue
		}
		ps = append(ps, gitignore.ParsePattern(line, domain))
	}
	return ps
}
