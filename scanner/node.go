package scanner

// DirectoryNode is one directory in a scanned tree.
type DirectoryNode struct {
	Name     string          `json:"name" yaml:"name"`
	Path     string          `json:"path" yaml:"path"`
	Children []DirectoryNode `json:"children" yaml:"children"`
}

// Walk calls fn for n and every descendant in depth-first order. rel is the
// slash-separated path of the node relative to n ("." for n itself).
func (n DirectoryNode) Walk(fn func(rel string, node DirectoryNode, depth int)) {
	n.walk(".", 0, fn)
}

func (n DirectoryNode) walk(rel string, depth int, fn func(string, DirectoryNode, int)) {
	fn(rel, n, depth)
	for _, child := range n.Children {
		childRel := child.Name
		if rel != "." {
			childRel = rel + "/" + child.Name
		}
		child.walk(childRel, depth+1, fn)
	}
}

// Count returns the number of descendants of n (n itself is not counted).
func (n DirectoryNode) Count() int {
	count := -1
	n.Walk(func(string, DirectoryNode, int) { count++ })
	return count
}

// Depth returns the number of levels below n.
func (n DirectoryNode) Depth() int {
	deepest := 0
	n.Walk(func(_ string, _ DirectoryNode, depth int) {
		if depth > deepest {
			deepest = depth
		}
	})
	return deepest
}

// Prune returns a copy of n that keeps only the descendants for which keep
// reports true, plus all of their ancestors. The root is always kept.
func (n DirectoryNode) Prune(keep func(rel string, node DirectoryNode) bool) DirectoryNode {
	out, _ := n.prune(".", keep)
	return out
}

func (n DirectoryNode) prune(rel string, keep func(string, DirectoryNode) bool) (DirectoryNode, bool) {
	out := DirectoryNode{Name: n.Name, Path: n.Path, Children: make([]DirectoryNode, 0)}
	for _, child := range n.Children {
		childRel := child.Name
		if rel != "." {
			childRel = rel + "/" + child.Name
		}
		if pruned, ok := child.prune(childRel, keep); ok {
			out.Children = append(out.Children, pruned)
		}
	}
	matched := rel != "." && keep(rel, n)
	return out, matched || len(out.Children) > 0
}
