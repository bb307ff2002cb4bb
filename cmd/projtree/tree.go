package main

import (
	"fmt"

	"github.com/hayeah/projtree/fzf"
	"github.com/hayeah/projtree/ignore"
	"github.com/hayeah/projtree/render"
	"github.com/hayeah/projtree/scanner"
)

// TreeCmd defines the command-line arguments for the tree subcommand
type TreeCmd struct {
	Root      string `arg:"positional,required" help:"Directory to scan"`
	Filter    string `arg:"-f,--filter" help:"Keep directories whose path matches this fzf-style pattern"`
	Gitignore bool   `arg:"-g,--gitignore" help:"Also drop directories ignored by .gitignore"`
	NoSummary bool   `arg:"--no-summary" help:"Omit the directory count"`
	Chart     bool   `arg:"-c,--chart" help:"Print a bar chart of where the directories are instead of the diagram"`
}

// TreeRunner prints the scanned tree as a diagram.
type TreeRunner struct {
	Args    TreeCmd
	App     *App
	matcher fzf.Matcher
}

// NewTreeRunner creates and initializes a new TreeRunner
func NewTreeRunner(cmd TreeCmd, app *App) (*TreeRunner, error) {
	matcher, err := fzf.NewMatcher(cmd.Filter)
	if err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}
	return &TreeRunner{
		Args:    cmd,
		App:     app,
		matcher: matcher,
	}, nil
}

// Run executes the tree subcommand
func (r *TreeRunner) Run() error {
	s := r.App.Scanner
	if r.Args.Gitignore {
		ig := ignore.NewIgnore(r.Args.Root)
		s = scanner.New(scanner.WithLogger(r.App.Logger), scanner.WithIgnore(ig))
		defer func() {
			r.App.Logger.Debug("applied gitignore patterns", "root", r.Args.Root, "patterns", ig.Patterns())
		}()
	}

	node := s.Scan(r.Args.Root)
	r.App.remember(r.Args.Root, node)

	if !r.matcher.IsEmpty() {
		node = r.matcher.FilterTree(node)
	}

	if r.Args.Chart {
		return render.Chart(r.App.Out, node, render.DefaultChartOptions(r.App.termWidth))
	}
	return render.Diagram(r.App.Out, node, render.DiagramOptions{
		Color:   r.App.useColor(),
		Summary: !r.Args.NoSummary,
	})
}
