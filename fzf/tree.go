package fzf

import "github.com/hayeah/projtree/scanner"

// FilterTree keeps the directories of root whose root-relative path matches
// m, together with their ancestors. An empty matcher returns root unchanged.
func (m Matcher) FilterTree(root scanner.DirectoryNode) scanner.DirectoryNode {
	if m.IsEmpty() {
		return root
	}
	return root.Prune(func(rel string, _ scanner.DirectoryNode) bool {
		return m.MatchString(rel)
	})
}
