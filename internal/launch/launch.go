// Package launch starts the application chosen in the launcher.
package launch

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"applaunch/internal/apps"
)

// ErrNoCommand is returned for applications without a usable Exec line
var ErrNoCommand = errors.New("no command to run")

// Command builds the process for app. Terminal applications run inside terminal via "-e".
func Command(app apps.Application, terminal string) (*exec.Cmd, error) {
	cmdline := strings.TrimSpace(app.CommandLine())
	if cmdline == "" {
		return nil, fmt.Errorf("%s: %w", app.Name, ErrNoCommand)
	}

	if !app.Terminal {
		return exec.Command("sh", "-c", cmdline), nil //nolint:gosec // Exec line from desktop entry
	}

	term := strings.Fields(terminal)
	if len(term) == 0 {
		return nil, fmt.Errorf("%s: terminal application but no terminal configured", app.Name)
	}
	args := append(term[1:], "-e", "sh", "-c", cmdline)
	return exec.Command(term[0], args...), nil //nolint:gosec // terminal from user config
}

// Start launches app without waiting for it to exit
func Start(app apps.Application, terminal string) error {
	cmd, err := Command(app, terminal)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", app.Name, err)
	}
	// The child outlives us, release its resources
	return cmd.Process.Release()
}
