package config

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/tasci/internal/config/loader"
)

// Options controls Load.
type Options struct {
	// Path is the config file. Empty means DefaultPath, which may be absent.
	Path string

	// FS replaces the OS file system. Used by tests.
	FS loader.FileSystem

	// Env replaces the environment layer. Used by tests.
	Env loader.Loader
}

// Load merges defaults, the TOML file, and TASCI_* variables, then decodes
// and validates the result.
func Load(opts Options) (*Config, error) {
	path, explicit := opts.Path, opts.Path != ""
	if !explicit {
		path = DefaultPath()
	}
	fsys := opts.FS
	if fsys == nil {
		fsys = loader.OSFS{}
	}
	env := opts.Env
	if env == nil {
		env = loader.NewEnvLoader(loader.EnvPrefix)
	}

	fileLayer, err := loader.NewTOMLLoaderWithFS(fsys, path).Load()
	if err != nil {
		return nil, err
	}
	if fileLayer == nil && explicit {
		return nil, fmt.Errorf("%s: %w", path, ErrFileNotFound)
	}
	envLayer, err := env.Load()
	if err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	merged := loader.DeepMerge(loader.DeepMerge(nil, fileLayer), envLayer)
	cfg, err := decode(merged)
	if err != nil {
		return nil, err
	}
	if fileLayer != nil {
		cfg.Source = path
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode applies a raw layer on top of Default.
func decode(raw map[string]any) (*Config, error) {
	cfg := Default()
	if len(raw) == 0 {
		return cfg, nil
	}
	tmpl, err := toMap(cfg)
	if err != nil {
		return nil, err
	}
	coerce(raw, tmpl)

	data, err := toml.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encoding merged config: %w", err)
	}
	if err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

func toMap(cfg *Config) (map[string]any, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// coerce adjusts loosely typed environment values to the types the
// defaults use, so "1" can set a bool and 8 can set a string.
func coerce(layer, tmpl map[string]any) {
	for k, v := range layer {
		switch t := tmpl[k].(type) {
		case map[string]any:
			if m, ok := v.(map[string]any); ok {
				coerce(m, t)
			}
		case bool:
			if i, ok := v.(int64); ok {
				layer[k] = i != 0
			}
		case string:
			switch v.(type) {
			case int64, float64, bool:
				layer[k] = fmt.Sprint(v)
			}
		case []any:
			if s, ok := v.(string); ok {
				layer[k] = []any{s}
			}
		}
	}
}
