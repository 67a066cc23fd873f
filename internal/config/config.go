package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// AppName names the per-user config, cache and state directories.
const AppName = "tasci"

// Duration is a time.Duration written as a string such as "500ms".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(b)))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText renders the duration as a string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the fully merged configuration.
type Config struct {
	Editor     EditorConfig     `toml:"editor"`
	Completion CompletionConfig `toml:"completion"`
	LSP        LSPConfig        `toml:"lsp"`
	Logging    LoggingConfig    `toml:"logging"`
	State      StateConfig      `toml:"state"`
	Plugins    PluginsConfig    `toml:"plugins"`
	Watch      WatchConfig      `toml:"watch"`

	// Source is the file the configuration was read from, if any.
	Source string `toml:"-"`
}

// EditorConfig holds display and timing settings.
type EditorConfig struct {
	TabWidth      int      `toml:"tabWidth"`
	LineNumbers   bool     `toml:"lineNumbers"`
	StatusBar     bool     `toml:"statusBar"`
	BlinkInterval Duration `toml:"blinkInterval"`
	StatusTimeout Duration `toml:"statusTimeout"`
}

// CompletionConfig bounds the suggestion list.
type CompletionConfig struct {
	Enabled  bool `toml:"enabled"`
	MaxItems int  `toml:"maxItems"`
	MaxLabel int  `toml:"maxLabel"`
}

// LSPConfig controls language server sessions.
type LSPConfig struct {
	Enabled         bool                    `toml:"enabled"`
	ShutdownTimeout Duration                `toml:"shutdownTimeout"`
	Servers         map[string]ServerConfig `toml:"servers"`
}

// ServerConfig overrides the built-in server for one language, keyed by
// language name.
type ServerConfig struct {
	Command    string   `toml:"command"`
	Args       []string `toml:"args"`
	LanguageID string   `toml:"languageId"`
	Disabled   bool     `toml:"disabled"`
}

// LoggingConfig selects the log level and file.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// StateConfig locates the session snapshot.
type StateConfig struct {
	Enabled bool   `toml:"enabled"`
	File    string `toml:"file"`
}

// PluginsConfig locates Lua language definitions.
type PluginsConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// WatchConfig controls reloading of files changed on disk.
type WatchConfig struct {
	Enabled bool `toml:"enabled"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			TabWidth:      4,
			LineNumbers:   true,
			StatusBar:     true,
			BlinkInterval: Duration{500 * time.Millisecond},
			StatusTimeout: Duration{5 * time.Second},
		},
		Completion: CompletionConfig{
			Enabled:  true,
			MaxItems: 10,
			MaxLabel: 63,
		},
		LSP: LSPConfig{
			Enabled:         true,
			ShutdownTimeout: Duration{2 * time.Second},
			Servers:         map[string]ServerConfig{},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		State: StateConfig{
			Enabled: true,
		},
		Plugins: PluginsConfig{
			Enabled: true,
		},
		Watch: WatchConfig{
			Enabled: true,
		},
	}
}

// Dir returns the per-user configuration directory.
func Dir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, AppName)
	}
	return filepath.Join(os.TempDir(), AppName)
}

// DefaultPath returns the default configuration file location.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// StatePath returns the snapshot file, falling back to the default.
func (c *Config) StatePath() string {
	if c.State.File != "" {
		return ExpandHome(c.State.File)
	}
	return filepath.Join(Dir(), "state.yaml")
}

// PluginDir returns the Lua plugin directory, falling back to the default.
func (c *Config) PluginDir() string {
	if c.Plugins.Dir != "" {
		return ExpandHome(c.Plugins.Dir)
	}
	return filepath.Join(Dir(), "languages")
}

// LogPath returns the configured log file, or "" for the default.
func (c *Config) LogPath() string {
	return ExpandHome(c.Logging.File)
}

// Server returns the override for language name, if one is configured.
func (c *Config) Server(name string) (ServerConfig, bool) {
	for k, s := range c.LSP.Servers {
		if strings.EqualFold(k, name) {
			return s, true
		}
	}
	return ServerConfig{}, false
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Validate checks ranges and enumerations. It returns ValidationErrors.
func (c *Config) Validate() error {
	var errs ValidationErrors
	check := func(ok bool, path, msg string, v any) {
		if !ok {
			errs = append(errs, &ValidationError{Path: path, Message: msg, Value: v})
		}
	}

	check(c.Editor.TabWidth >= 1 && c.Editor.TabWidth <= 16, "editor.tabWidth", "must be between 1 and 16", c.Editor.TabWidth)
	check(c.Editor.BlinkInterval.Duration >= 50*time.Millisecond, "editor.blinkInterval", "must be at least 50ms", c.Editor.BlinkInterval)
	check(c.Editor.StatusTimeout.Duration > 0, "editor.statusTimeout", "must be positive", c.Editor.StatusTimeout)
	check(c.Completion.MaxItems >= 1 && c.Completion.MaxItems <= 100, "completion.maxItems", "must be between 1 and 100", c.Completion.MaxItems)
	check(c.Completion.MaxLabel >= 8 && c.Completion.MaxLabel <= 1023, "completion.maxLabel", "must be between 8 and 1023", c.Completion.MaxLabel)
	check(c.LSP.ShutdownTimeout.Duration > 0, "lsp.shutdownTimeout", "must be positive", c.LSP.ShutdownTimeout)

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		check(false, "logging.level", "must be one of debug, info, warn, error", c.Logging.Level)
	}

	names := make([]string, 0, len(c.LSP.Servers))
	for name := range c.LSP.Servers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s := c.LSP.Servers[name]
		check(s.Disabled || s.Command != "", fmt.Sprintf("lsp.servers.%s.command", name), "is required", s.Command)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
