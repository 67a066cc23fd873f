package config

import (
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/dshills/tasci/internal/config/loader"
)

func noEnv() loader.Loader {
	return loader.NewEnvLoaderFrom(loader.EnvPrefix, nil)
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Completion.MaxItems != 10 || cfg.Completion.MaxLabel != 63 {
		t.Errorf("completion limits = %d/%d", cfg.Completion.MaxItems, cfg.Completion.MaxLabel)
	}
	if cfg.Editor.StatusTimeout.Duration != 5*time.Second {
		t.Errorf("status timeout = %v", cfg.Editor.StatusTimeout)
	}
}

func TestLoadMissingDefaultFile(t *testing.T) {
	cfg, err := Load(Options{FS: fstest.MapFS{}, Env: noEnv()})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source != "" {
		t.Errorf("Source = %q, want empty", cfg.Source)
	}
	if cfg.Editor.TabWidth != 4 {
		t.Errorf("TabWidth = %d, want default 4", cfg.Editor.TabWidth)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(Options{Path: "missing.toml", FS: fstest.MapFS{}, Env: noEnv()})
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	fsys := fstest.MapFS{
		"config.toml": {Data: []byte(`
[editor]
tabWidth = 8
blinkInterval = "250ms"

[completion]
maxItems = 5

[lsp.servers.golang]
command = "gopls"
args = ["serve"]
`)},
	}

	cfg, err := Load(Options{Path: "config.toml", FS: fsys, Env: noEnv()})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source != "config.toml" {
		t.Errorf("Source = %q", cfg.Source)
	}
	if cfg.Editor.TabWidth != 8 {
		t.Errorf("TabWidth = %d, want 8", cfg.Editor.TabWidth)
	}
	if cfg.Editor.BlinkInterval.Duration != 250*time.Millisecond {
		t.Errorf("BlinkInterval = %v", cfg.Editor.BlinkInterval)
	}
	if !cfg.Editor.LineNumbers {
		t.Error("unset key lost its default")
	}
	if cfg.Completion.MaxItems != 5 || cfg.Completion.MaxLabel != 63 {
		t.Errorf("completion = %+v", cfg.Completion)
	}

	srv, ok := cfg.Server("Golang")
	if !ok || srv.Command != "gopls" || len(srv.Args) != 1 {
		t.Errorf("Server(Golang) = %+v, %v", srv, ok)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	fsys := fstest.MapFS{
		"config.toml": {Data: []byte("[editor]\ntabWidth = 8\n[logging]\nlevel = \"warn\"\n")},
	}
	env := loader.NewEnvLoaderFrom(loader.EnvPrefix, []string{
		"TASCI_EDITOR_TAB_WIDTH=2",
		"TASCI_LOG_LEVEL=debug",
		"TASCI_WATCH_ENABLED=0",
		"TASCI_LSP_SHUTDOWN_TIMEOUT=3s",
		"TASCI_STATE_FILE=123",
	})

	cfg, err := Load(Options{Path: "config.toml", FS: fsys, Env: env})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Editor.TabWidth != 2 {
		t.Errorf("TabWidth = %d, want 2", cfg.Editor.TabWidth)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
	if cfg.Watch.Enabled {
		t.Error("TASCI_WATCH_ENABLED=0 should disable watching")
	}
	if cfg.LSP.ShutdownTimeout.Duration != 3*time.Second {
		t.Errorf("ShutdownTimeout = %v", cfg.LSP.ShutdownTimeout)
	}
	if cfg.State.File != "123" {
		t.Errorf("State.File = %q", cfg.State.File)
	}
}

func TestLoadInvalid(t *testing.T) {
	fsys := fstest.MapFS{
		"config.toml": {Data: []byte("[completion]\nmaxItems = 0\n[logging]\nlevel = \"loud\"\n")},
	}
	_, err := Load(Options{Path: "config.toml", FS: fsys, Env: noEnv()})
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("expected validation failure, got %v", err)
	}
	var errs ValidationErrors
	if !errors.As(err, &errs) || len(errs) != 2 {
		t.Fatalf("expected 2 validation errors, got %v", err)
	}
	if errs[0].Path != "completion.maxItems" || errs[1].Path != "logging.level" {
		t.Errorf("paths = %s, %s", errs[0].Path, errs[1].Path)
	}
}

func TestLoadBadDuration(t *testing.T) {
	fsys := fstest.MapFS{
		"config.toml": {Data: []byte("[editor]\nblinkInterval = \"soon\"\n")},
	}
	if _, err := Load(Options{Path: "config.toml", FS: fsys, Env: noEnv()}); err == nil {
		t.Error("expected error for bad duration")
	}
}

func TestValidateServerCommand(t *testing.T) {
	cfg := Default()
	cfg.LSP.Servers["Rust"] = ServerConfig{}
	cfg.LSP.Servers["Zig"] = ServerConfig{Disabled: true}
	err := cfg.Validate()
	var errs ValidationErrors
	if !errors.As(err, &errs) || len(errs) != 1 || errs[0].Path != "lsp.servers.Rust.command" {
		t.Errorf("Validate() = %v", err)
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	tests := []struct {
		in   string
		want string
	}{
		{"~/state.yaml", "/home/tester/state.yaml"},
		{"~", "/home/tester"},
		{"/abs/file", "/abs/file"},
		{"~other/x", "~other/x"},
	}
	for _, tt := range tests {
		if got := ExpandHome(tt.in); got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPaths(t *testing.T) {
	cfg := Default()
	if cfg.StatePath() == "" || cfg.PluginDir() == "" {
		t.Error("default paths should not be empty")
	}
	cfg.State.File = "/tmp/s.yaml"
	if cfg.StatePath() != "/tmp/s.yaml" {
		t.Errorf("StatePath = %q", cfg.StatePath())
	}
}
