package main

import (
	"errors"
	"fmt"
	"os"

	"applaunch/internal/apps"
	"applaunch/internal/config"
	"applaunch/internal/launch"
	"applaunch/internal/logging"
	"applaunch/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type options struct {
	verbose    int
	configPath string
	logFile    string
	dirs       []string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "applaunch",
		Short:         "Fuzzy-find and launch desktop applications from the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(opts, cmd.Flags().Changed("verbose"))
		},
	}

	cmd.Flags().CountVarP(&opts.verbose, "verbose", "v", "show more detail (-v: exec line, -vv: run count, score and filter log)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (default: first of $APPLAUNCH_CONFIG, ./config.yaml, $XDG_CONFIG_HOME/applaunch/config.yaml, $XDG_CONFIG_DIRS/applaunch/config.yaml)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "log file (default: $XDG_STATE_HOME/applaunch/applaunch.log)")
	cmd.Flags().StringArrayVarP(&opts.dirs, "dir", "d", nil, "extra directory to scan for .desktop files (repeatable)")

	return cmd
}

func run(opts *options, verboseSet bool) error {
	cfg, cfgPath, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	config.SetGlobal(cfg)

	verbose := cfg.Verbose
	if verboseSet {
		verbose = opts.verbose
	}

	if err := initLogging(opts.logFile, verbose >= 2); err != nil {
		return err
	}
	defer logging.Close()

	dirs := append(append(append([]string{}, opts.dirs...), cfg.AppDirs...), apps.DefaultDirs()...)
	items, err := apps.List(dirs)
	if err != nil {
		// Partial inventories are still usable
		logging.Warn("some desktop entries could not be read", "err", err)
	}
	items = apps.WithRunCounts(items, cfg.RunCounts)
	logging.Info("applications loaded", "count", len(items), "dirs", len(dirs))

	var watcher *config.Watcher
	if cfgPath != "" {
		watcher, err = config.NewWatcher(cfgPath)
		if err != nil {
			logging.Warn("config watch disabled", "err", err)
			watcher = nil
		} else {
			watcher.Start()
			logging.Info("watching config", "path", watcher.Path())
			defer func() { _ = watcher.Stop() }()
		}
	}

	tui.ApplyTheme(cfg)
	model := tui.NewModel(tui.ModelOptions{
		Items:   items,
		Verbose: verbose,
		Watcher: watcher,
	})

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		logging.Error("program failed", "err", err)
		return fmt.Errorf("running program: %w", err)
	}

	m, ok := final.(tui.Model)
	if !ok {
		return errors.New("unexpected model type")
	}
	app, chosen := m.Chosen()
	if !chosen {
		return nil
	}

	// Pick up a terminal change made while the launcher was open
	if err := launch.Start(app, config.Global().Terminal); err != nil {
		logging.Error("launch failed", "app", app.Name, "err", err)
		return err
	}
	logging.Info("launched", "app", app.Name, "terminal", app.Terminal)
	return nil
}

// loadConfig loads an explicit path, or searches the default locations.
// The returned path is empty when defaults are in use.
func loadConfig(path string) (*config.Config, string, error) {
	if path == "" {
		return config.LoadFromDefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	if _, statErr := os.Stat(path); statErr != nil {
		return cfg, "", nil
	}
	return cfg, path, nil
}

func initLogging(path string, debug bool) error {
	if path == "" {
		var err error
		path, err = logging.DefaultPath()
		if err != nil {
			return err
		}
	}
	return logging.Init(path, debug)
}
