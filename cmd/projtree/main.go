package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alexflint/go-arg"
)

// Args defines the command-line arguments with subcommands
type Args struct {
	Config   string `arg:"--config" help:"Path to the config file (default: $PROJTREE_CONFIG or ~/.config/projtree/config.jsonc)"`
	LogLevel string `arg:"--log-level" help:"Override the configured log level (debug, info, warn, error)"`

	Scan   *ScanCmd   `arg:"subcommand:scan" help:"Scan a directory and print the tree as JSON or YAML"`
	Tree   *TreeCmd   `arg:"subcommand:tree" help:"Print the scanned tree as a diagram"`
	Browse *BrowseCmd `arg:"subcommand:browse" help:"Browse the scanned tree interactively"`
	Recent *RecentCmd `arg:"subcommand:recent" help:"List recently scanned roots"`
	Pin    *PinCmd    `arg:"subcommand:pin" help:"Pin a project root in the config file"`
	Pinned *PinnedCmd `arg:"subcommand:pinned" help:"List pinned project roots"`
	Git    *GitCmd    `arg:"subcommand:git" help:"Show or change the git state of a project"`
}

func (a Args) hasSubcommand() bool {
	return a.Scan != nil || a.Tree != nil || a.Browse != nil || a.Recent != nil ||
		a.Pin != nil || a.Pinned != nil || a.Git != nil
}

// Runner encapsulates the state and behavior for the CLI
type Runner struct {
	Args Args
	App  *App
}

// NewRunner creates and initializes a new Runner
func NewRunner(args Args, app *App) *Runner {
	return &Runner{
		Args: args,
		App:  app,
	}
}

// Run dispatches to the appropriate subcommand
func (r *Runner) Run() error {
	switch {
	case r.Args.Scan != nil:
		scanRunner, err := NewScanRunner(*r.Args.Scan, r.App)
		if err != nil {
			return err
		}
		return scanRunner.Run()
	case r.Args.Tree != nil:
		treeRunner, err := NewTreeRunner(*r.Args.Tree, r.App)
		if err != nil {
			return err
		}
		return treeRunner.Run()
	case r.Args.Browse != nil:
		return NewBrowseRunner(*r.Args.Browse, r.App).Run()
	case r.Args.Recent != nil:
		return NewRecentRunner(*r.Args.Recent, r.App).Run()
	case r.Args.Pin != nil:
		return NewPinRunner(*r.Args.Pin, r.App).Run()
	case r.Args.Pinned != nil:
		return NewPinnedRunner(r.App).Run()
	case r.Args.Git != nil:
		gitRunner, err := NewGitRunner(*r.Args.Git, r.App)
		if err != nil {
			return err
		}
		return gitRunner.Run()
	default:
		return fmt.Errorf("no subcommand specified, use 'scan', 'tree', 'browse', 'recent', 'pin', 'pinned' or 'git'")
	}
}

// main is our entrypoint: parse args and run the application
func main() {
	var args Args
	parser := arg.MustParse(&args)

	// If no subcommand is specified, show help
	if !args.hasSubcommand() {
		parser.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	app, cleanup, err := InitApp(args)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	app.Logger.Debug("starting", "command", parser.SubcommandNames())

	if err := NewRunner(args, app).Run(); err != nil {
		cleanup()
		log.Fatal(err)
	}
}
