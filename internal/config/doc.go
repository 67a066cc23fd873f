// Package config provides the editor configuration.
//
// Configuration is built from three layers, later layers overriding
// earlier ones:
//
//	┌─────────────────────────────┐
//	│  3. TASCI_* environment     │  ← Highest priority
//	├─────────────────────────────┤
//	│  2. config.toml             │  ← ~/.config/tasci/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in defaults       │
//	└─────────────────────────────┘
//
// The file may pull in other files with a top-level include key. Variable
// names map to dotted paths: TASCI_COMPLETION_MAX_ITEMS sets
// completion.maxItems.
//
// # Example
//
//	[editor]
//	tabWidth = 4
//	blinkInterval = "500ms"
//
//	[lsp.servers.Python]
//	command = "pylsp"
//
// Load returns a validated *Config:
//
//	cfg, err := config.Load(config.Options{})
package config
