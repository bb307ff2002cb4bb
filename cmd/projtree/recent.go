package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"text/tabwriter"
)

// RecentCmd defines the command-line arguments for the recent subcommand
type RecentCmd struct {
	Limit  int    `arg:"-n,--limit" help:"Number of roots to list (default: recentLimit from the config)"`
	Forget string `arg:"--forget" placeholder:"ROOT" help:"Remove a root from the list instead of listing"`
}

// RecentRunner lists recently scanned roots.
type RecentRunner struct {
	Args RecentCmd
	App  *App
}

// NewRecentRunner creates and initializes a new RecentRunner
func NewRecentRunner(cmd RecentCmd, app *App) *RecentRunner {
	return &RecentRunner{
		Args: cmd,
		App:  app,
	}
}

// Run executes the recent subcommand
func (r *RecentRunner) Run() error {
	if r.App.Recent == nil {
		return errors.New("recent roots are unavailable, see the warning above")
	}

	if r.Args.Forget != "" {
		return r.forget(r.Args.Forget)
	}

	limit := r.Args.Limit
	if limit <= 0 {
		limit = r.App.Config.RecentLimit
	}

	entries, err := r.App.Recent.List(limit)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(r.App.Out, 0, 4, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%d dirs\t%s\n",
			e.ScannedAt.Local().Format("2006-01-02 15:04"), e.Name, e.Dirs, e.Root)
	}
	return tw.Flush()
}

func (r *RecentRunner) forget(root string) error {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	known, err := r.App.Recent.Forget(abs)
	if err != nil {
		return err
	}
	if !known {
		_, err = fmt.Fprintf(r.App.Out, "%s is not in the recent list\n", abs)
		return err
	}
	_, err = fmt.Fprintf(r.App.Out, "forgot %s\n", abs)
	return err
}
