package main

import (
	"fmt"
	"path/filepath"

	"github.com/hayeah/projtree/internal/config"
)

// PinCmd defines the command-line arguments for the pin subcommand
type PinCmd struct {
	Root string `arg:"positional,required" help:"Project root to pin"`
}

// PinRunner adds a root to the config file's pinned list.
type PinRunner struct {
	Args PinCmd
	App  *App
}

// NewPinRunner creates and initializes a new PinRunner
func NewPinRunner(cmd PinCmd, app *App) *PinRunner {
	return &PinRunner{
		Args: cmd,
		App:  app,
	}
}

// Run executes the pin subcommand
func (r *PinRunner) Run() error {
	root, err := filepath.Abs(r.Args.Root)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", r.Args.Root, err)
	}

	added, err := config.Pin(r.App.Config.Path(), root)
	if err != nil {
		return err
	}
	if !added {
		_, err = fmt.Fprintf(r.App.Out, "%s is already pinned\n", root)
		return err
	}

	r.App.Config.Pinned = append(r.App.Config.Pinned, root)
	r.App.Logger.Info("pinned root", "root", root, "config", r.App.Config.Path())
	_, err = fmt.Fprintf(r.App.Out, "pinned %s\n", root)
	return err
}

// PinnedCmd defines the command-line arguments for the pinned subcommand
type PinnedCmd struct{}

// PinnedRunner lists the pinned roots.
type PinnedRunner struct {
	App *App
}

// NewPinnedRunner creates and initializes a new PinnedRunner
func NewPinnedRunner(app *App) *PinnedRunner {
	return &PinnedRunner{App: app}
}

// Run executes the pinned subcommand
func (r *PinnedRunner) Run() error {
	for _, root := range r.App.Config.Pinned {
		if _, err := fmt.Fprintln(r.App.Out, root); err != nil {
			return err
		}
	}
	return nil
}
