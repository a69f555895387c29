package app

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenatx/nart/internal/config"
	"github.com/thenatx/nart/internal/ptyx"
	"github.com/thenatx/nart/internal/system"
	"github.com/thenatx/nart/internal/term"
	"github.com/thenatx/nart/internal/ui"
)

// Start opens a shell session and runs the TUI host until the shell
// exits or the user quits. The shell comes from settings.json when set,
// otherwise from $SHELL; having neither is a fatal startup error.
func Start() error {
	settings, err := config.Load()
	if err != nil {
		system.Logger.Warn("loading settings failed, using defaults", "err", err)
	}

	shell := settings.Shell
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	sess, err := ptyx.Open(shell)
	if err != nil {
		return err
	}
	defer sess.Close()

	// Sized properly on the first WindowSizeMsg.
	grid := term.NewGrid(24, 80)
	if settings.Foreground != "" {
		if fg, err := term.ParseHex(settings.Foreground); err == nil {
			grid.SetStyle(term.Style{Foreground: fg})
		} else {
			system.Logger.Warn("ignoring invalid foreground setting", "err", err)
		}
	}

	if _, err := tea.NewProgram(ui.NewModel(sess, grid), tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return nil
}
