package scanner

import "strings"

// MaxDepth is the number of levels below the root a scan expands.
const MaxDepth = 4

// excludedDirs are directory names that never show up in a scan, matched
// case-sensitively.
var excludedDirs = map[string]struct{}{
	"node_modules": {},
	"target":       {},
	"dist":         {},
	".git":         {},
	".svn":         {},
	".hg":          {},
	"__pycache__":  {},
	".next":        {},
	".nuxt":        {},
	"build":        {},
}

// IsExcluded reports whether a directory named name is left out of scans:
// hidden directories and well-known VCS, build and dependency directories.
func IsExcluded(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	_, ok := excludedDirs[name]
	return ok
}

// ExcludedNames returns the fixed exclusion set.
func ExcludedNames() []string {
	names := make([]string, 0, len(excludedDirs))
	for name := range excludedDirs {
		names = append(names, name)
	}
	return names
}
