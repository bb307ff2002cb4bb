package main

import (
	"fmt"

	"github.com/hayeah/projtree/render"
)

// ScanCmd defines the command-line arguments for the scan subcommand
type ScanCmd struct {
	Root   string `arg:"positional,required" help:"Directory to scan"`
	Format string `arg:"-f,--format" default:"json" help:"Output format: json or yaml"`
}

// ScanRunner prints the scanned tree of one root.
type ScanRunner struct {
	Args   ScanCmd
	App    *App
	format render.Format
}

// NewScanRunner creates and initializes a new ScanRunner
func NewScanRunner(cmd ScanCmd, app *App) (*ScanRunner, error) {
	format, err := render.ParseFormat(cmd.Format)
	if err != nil {
		return nil, err
	}
	if format == render.FormatTree {
		return nil, fmt.Errorf("scan prints json or yaml, use the tree subcommand for diagrams")
	}
	return &ScanRunner{
		Args:   cmd,
		App:    app,
		format: format,
	}, nil
}

// Run scans the root. A missing or unreadable root still prints a node
// with no children.
func (r *ScanRunner) Run() error {
	node := r.App.Scanner.Scan(r.Args.Root)
	r.App.remember(r.Args.Root, node)
	return render.Write(r.App.Out, node, r.format, render.DiagramOptions{})
}
