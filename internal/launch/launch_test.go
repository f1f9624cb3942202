package launch

import (
	"errors"
	"testing"

	"applaunch/internal/apps"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		name     string
		app      apps.Application
		terminal string
		wantArgs []string
	}{
		{
			name:     "graphical app strips field codes",
			app:      apps.Application{Name: "Firefox", Exec: "firefox %u"},
			terminal: "xterm",
			wantArgs: []string{"sh", "-c", "firefox"},
		},
		{
			name:     "terminal app",
			app:      apps.Application{Name: "htop", Exec: "htop", Terminal: true},
			terminal: "xterm",
			wantArgs: []string{"xterm", "-e", "sh", "-c", "htop"},
		},
		{
			name:     "terminal with arguments",
			app:      apps.Application{Name: "vim", Exec: "vim %F", Terminal: true},
			terminal: "kitty --single-instance",
			wantArgs: []string{"kitty", "--single-instance", "-e", "sh", "-c", "vim"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := Command(tt.app, tt.terminal)
			require.NoError(t, err)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	_, err := Command(apps.Application{Name: "Empty", Exec: "%u"}, "xterm")
	assert.True(t, errors.Is(err, ErrNoCommand))

	_, err = Command(apps.Application{Name: "htop", Exec: "htop", Terminal: true}, "  ")
	assert.Error(t, err)
}
