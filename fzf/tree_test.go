package fzf

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hayeah/projtree/scanner"
)

func dirNode(name, path string, children ...scanner.DirectoryNode) scanner.DirectoryNode {
	if children == nil {
		children = []scanner.DirectoryNode{}
	}
	return scanner.DirectoryNode{Name: name, Path: path, Children: children}
}

func TestMatcher_FilterTree(t *testing.T) {
	assert := assert.New(t)

	root := dirNode("proj", "/proj",
		dirNode("cmd", "/proj/cmd",
			dirNode("server", "/proj/cmd/server"),
			dirNode("migrate", "/proj/cmd/migrate"),
		),
		dirNode("internal", "/proj/internal",
			dirNode("server", "/proj/internal/server",
				dirNode("middleware", "/proj/internal/server/middleware"),
			),
		),
		dirNode("docs", "/proj/docs"),
	)

	m, err := NewMatcher("server$")
	assert.NoError(err)

	filtered := m.FilterTree(root)

	var rels []string
	filtered.Walk(func(rel string, _ scanner.DirectoryNode, _ int) { rels = append(rels, rel) })
	assert.Equal([]string{".", "cmd", "cmd/server", "internal", "internal/server"}, rels)

	empty, err := NewMatcher("")
	assert.NoError(err)
	assert.Equal(root, empty.FilterTree(root))
}
