package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Optional hybridlex.toml, discovered by walking up from the working
// directory. It supplies defaults the flags can override.
type toolConfig struct {
	Output outputConfig `toml:"output"`
	Serve  serveConfig  `toml:"serve"`
}

type outputConfig struct {
	Format string `toml:"format"` // table|json
}

type serveConfig struct {
	Addr string `toml:"addr"`
}

func defaultConfig() toolConfig {
	return toolConfig{
		Output: outputConfig{Format: "table"},
		Serve:  serveConfig{Addr: ":8000"},
	}
}

func findConfigFile(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "hybridlex.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig returns the merged configuration: defaults overlaid with
// hybridlex.toml when one is found.
func loadConfig() (toolConfig, error) {
	cfg := defaultConfig()

	path, ok, err := findConfigFile(".")
	if err != nil || !ok {
		return cfg, err
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "table"
	}
	if cfg.Serve.Addr == "" {
		cfg.Serve.Addr = ":8000"
	}
	return cfg, nil
}
