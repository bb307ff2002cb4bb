package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/hayeah/projtree/scanner"
)

// BrowseCmd defines the command-line arguments for the browse subcommand
type BrowseCmd struct {
	Root string `arg:"positional,required" help:"Directory to browse"`
}

// BrowseRunner runs the interactive browser and prints the chosen path.
type BrowseRunner struct {
	Args BrowseCmd
	App  *App
}

// NewBrowseRunner creates and initializes a new BrowseRunner
func NewBrowseRunner(cmd BrowseCmd, app *App) *BrowseRunner {
	return &BrowseRunner{
		Args: cmd,
		App:  app,
	}
}

// Run executes the browse subcommand
func (r *BrowseRunner) Run() error {
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stderr.Fd()) {
		return errors.New("browse needs an interactive terminal, use 'tree' or 'scan' instead")
	}

	node := r.App.Scanner.Scan(r.Args.Root)
	r.App.remember(r.Args.Root, node)

	selected, err := browseInteractively(browseItems(node))
	if err != nil {
		return err
	}
	if selected == "" {
		return nil
	}
	_, err = fmt.Fprintln(r.App.Out, selected)
	return err
}

// browseItem is one directory in the browser list.
type browseItem struct {
	Rel   string // path relative to the root, "." for the root
	Path  string // DirectoryNode.Path
	Depth int
}

// browseItems flattens node in display order.
func browseItems(node scanner.DirectoryNode) []browseItem {
	var items []browseItem
	node.Walk(func(rel string, n scanner.DirectoryNode, depth int) {
		items = append(items, browseItem{Rel: rel, Path: n.Path, Depth: depth})
	})
	return items
}
