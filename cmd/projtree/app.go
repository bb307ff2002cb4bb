package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"

	"github.com/hayeah/projtree/internal/config"
	"github.com/hayeah/projtree/internal/recent"
	"github.com/hayeah/projtree/scanner"
)

// App holds the services shared by all subcommands.
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Scanner *scanner.Scanner
	// Recent is nil when the recents database could not be opened.
	Recent *recent.Store
	Out    io.Writer
}

// remember records a scanned root in the recents store. Failures are logged
// and never fail the command.
func (a *App) remember(root string, node scanner.DirectoryNode) {
	if a.Recent == nil {
		return
	}
	if fi, err := os.Stat(root); err != nil || !fi.IsDir() {
		a.Logger.Debug("not recording missing root", "root", root)
		return
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	if err := a.Recent.Record(abs, node.Name, node.Count()); err != nil {
		a.Logger.Warn("failed to record recent root", "root", abs, "error", err)
	}
}

// useColor reports whether diagrams written to Out should be coloured.
func (a *App) useColor() bool {
	switch a.Config.Color {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := a.Out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// termWidth returns the column count of Out, or 80 when Out is not a
// terminal.
func (a *App) termWidth() int {
	if f, ok := a.Out.(*os.File); ok {
		if w, _, err := term.GetSize(f.Fd()); err == nil && w > 0 {
			return w
		}
	}
	return 80
}
