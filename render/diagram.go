package render

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/hayeah/projtree/scanner"
)

// DiagramOptions controls Diagram output.
type DiagramOptions struct {
	// Color renders directory names in bold blue.
	Color bool
	// Summary appends a "N directories" line.
	Summary bool
}

// Diagram writes root as a tree diagram, headed by the absolute root path:
//
//	/home/me/proj
//	├── cmd/
//	│   └── server/
//	└── docs/
func Diagram(w io.Writer, root scanner.DirectoryNode, opts DiagramOptions) error {
	dirColor := color.New(color.FgBlue, color.Bold)
	if opts.Color {
		dirColor.EnableColor()
	} else {
		dirColor.DisableColor()
	}

	absPath, err := filepath.Abs(root.Path)
	if err != nil || root.Path == "" {
		absPath = root.Path
	}
	if _, err := fmt.Fprintln(w, absPath); err != nil {
		return err
	}

	var writeChildren func(node scanner.DirectoryNode, prefix string) error
	writeChildren = func(node scanner.DirectoryNode, prefix string) error {
		for i, child := range node.Children {
			isLast := i == len(node.Children)-1

			connector := "├── "
			childPrefix := prefix + "│   "
			if isLast {
				connector = "└── "
				childPrefix = prefix + "    "
			}

			if _, err := fmt.Fprintln(w, prefix+connector+dirColor.Sprint(child.Name)+"/"); err != nil {
				return err
			}
			if err := writeChildren(child, childPrefix); err != nil {
				return err
			}
		}
		return nil
	}

	if err := writeChildren(root, ""); err != nil {
		return err
	}

	if opts.Summary {
		noun := "directories"
		if root.Count() == 1 {
			noun = "directory"
		}
		if _, err := fmt.Fprintf(w, "\n%d %s\n", root.Count(), noun); err != nil {
			return err
		}
	}
	return nil
}
