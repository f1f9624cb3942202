package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Theme != "mocha" {
		t.Errorf("DefaultConfig theme = %q, want mocha", cfg.Theme)
	}
	if cfg.Highlight != "mauve" {
		t.Errorf("DefaultConfig highlight = %q, want mauve", cfg.Highlight)
	}
	if cfg.Verbose != 0 {
		t.Errorf("DefaultConfig verbose = %d, want 0", cfg.Verbose)
	}
	if cfg.Terminal == "" {
		t.Error("DefaultConfig should have a terminal")
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `theme: Latte
highlight: peach
verbose: 2
terminal: "alacritty"
app_dirs:
  - /opt/apps
run_counts:
  Firefox: 12
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Theme != "latte" {
		t.Errorf("Expected theme 'latte', got %q", cfg.Theme)
	}
	if cfg.Highlight != "peach" {
		t.Errorf("Expected highlight 'peach', got %q", cfg.Highlight)
	}
	if cfg.Verbose != 2 {
		t.Errorf("Expected verbose 2, got %d", cfg.Verbose)
	}
	if cfg.Terminal != "alacritty" {
		t.Errorf("Expected terminal 'alacritty', got %q", cfg.Terminal)
	}
	if len(cfg.AppDirs) != 1 || cfg.AppDirs[0] != "/opt/apps" {
		t.Errorf("Unexpected app_dirs %v", cfg.AppDirs)
	}
	if cfg.RunCounts["Firefox"] != 12 {
		t.Errorf("Expected Firefox run count 12, got %d", cfg.RunCounts["Firefox"])
	}
}

func TestLoadNormalizes(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := "theme: \"\"\nverbose: -4\nterminal: \"  \"\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Theme != "mocha" || cfg.Verbose != 0 || cfg.Terminal != "xterm" {
		t.Errorf("Load() did not normalize: %+v", cfg)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("theme: [unterminated"), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("Load() should fail on invalid YAML")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("Load() should not error for missing file, got: %v", err)
	}

	if cfg.Theme != "mocha" {
		t.Error("Should return default config")
	}
}

func TestLoadFromDefaultPathEnv(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(configPath, []byte("theme: frappe\n"), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	t.Setenv("APPLAUNCH_CONFIG", configPath)

	cfg, path, err := LoadFromDefaultPath()
	if err != nil {
		t.Fatalf("LoadFromDefaultPath() error = %v", err)
	}
	if path != configPath {
		t.Errorf("LoadFromDefaultPath() path = %q, want %q", path, configPath)
	}
	if cfg.Theme != "frappe" {
		t.Errorf("Expected theme 'frappe', got %q", cfg.Theme)
	}
}

func TestDefaultPathsFollowXDG(t *testing.T) {
	t.Cleanup(xdg.Reload)
	t.Setenv("APPLAUNCH_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/home/test/.cfg")
	t.Setenv("XDG_CONFIG_DIRS", "/etc/xdg-one:/etc/xdg-two")
	xdg.Reload()

	want := []string{
		"config.yaml",
		filepath.Join("/home/test/.cfg", "applaunch", "config.yaml"),
		filepath.Join("/etc/xdg-one", "applaunch", "config.yaml"),
		filepath.Join("/etc/xdg-two", "applaunch", "config.yaml"),
	}
	got := DefaultPaths()
	if len(got) != len(want) {
		t.Fatalf("DefaultPaths() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DefaultPaths()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSetGlobal(t *testing.T) {
	custom := &Config{Theme: "latte"}

	SetGlobal(custom)
	got := Global()

	if got.Theme != "latte" {
		t.Error("SetGlobal did not set the global config correctly")
	}

	// Reset to nil so other tests use defaults
	SetGlobal(nil)
}

func TestWatcherReloads(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("theme: mocha\n"), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	w, err := NewWatcher(configPath)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if abs, _ := filepath.Abs(configPath); w.Path() != abs {
		t.Errorf("Path() = %q, want %q", w.Path(), abs)
	}
	w.Start()
	defer func() { _ = w.Stop() }()

	// Unrelated files in the same directory are ignored
	other := filepath.Join(filepath.Dir(configPath), "other.yaml")
	if err := os.WriteFile(other, []byte("theme: frappe\n"), 0o644); err != nil {
		t.Fatalf("Failed to write other file: %v", err)
	}
	if err := os.WriteFile(configPath, []byte("theme: latte\n"), 0o644); err != nil {
		t.Fatalf("Failed to rewrite test config: %v", err)
	}

	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-w.Events:
			if cfg.Theme == "latte" {
				return
			}
		case err := <-w.Errors:
			t.Fatalf("watcher error: %v", err)
		case <-timeout:
			t.Fatal("timed out waiting for reload")
		}
	}
}
