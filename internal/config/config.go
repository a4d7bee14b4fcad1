// Package config loads and merges CLI configuration for the TOON codec's
// command-line wrapper. It has no bearing on the core Encoder/Decoder,
// which take their options as plain structs (spec 4.1, 4.2) and never touch
// the filesystem; this package only resolves what those structs should
// contain before main.go builds them.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the resolved set of options the CLI passes to the facade.
type Config struct {
	Indent       int    `yaml:"indent"`
	Delimiter    string `yaml:"delimiter"`
	LengthMarker bool   `yaml:"length_marker"`
	JSON         bool   `yaml:"json"`
}

// NewConfig returns a Config populated with the codec's defaults: two-space
// indent, comma delimiter, length markers on.
func NewConfig() *Config {
	return &Config{
		Indent:       2,
		Delimiter:    ",",
		LengthMarker: true,
		JSON:         false,
	}
}

// DelimiterByte returns the config's delimiter as a single byte, or an
// error if it is not exactly one character.
func (c *Config) DelimiterByte() (byte, error) {
	if len(c.Delimiter) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	return c.Delimiter[0], nil
}

// LoadConfig reads and parses a YAML config file, starting from defaults so
// unset fields keep their default value.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// configNames are the filenames FindConfigFile looks for, checked in order.
var configNames = []string{".toonrc.yml", ".toonrc.yaml", "toon.yml", "toon.yaml"}

// FindConfigFile searches the working directory and its parents for a
// recognized config filename, returning "" if none is found.
func FindConfigFile() string {
	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range configNames {
			candidate := filepath.Join(currentDir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}

		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			break
		}
		currentDir = parent
	}

	return ""
}

// MergeConfigs layers override onto a copy of base. Delimiter and Indent are
// taken from override only when non-empty and non-zero; LengthMarker and
// JSON are always taken from override.
func MergeConfigs(base, override *Config) *Config {
	merged := *base
	if override.Delimiter != "" {
		merged.Delimiter = override.Delimiter
	}
	if override.Indent != 0 {
		merged.Indent = override.Indent
	}
	merged.LengthMarker = override.LengthMarker
	merged.JSON = override.JSON
	return &merged
}

// CLIOverrides carries the subset of flags the CLI lets the user set
// explicitly, so LoadConfigWithCLI can tell "flag given" from "flag
// defaulted".
type CLIOverrides struct {
	Indent          int
	Delimiter       string
	LengthMarkerSet bool
	LengthMarker    bool
	JSON            bool
}

// LoadConfigWithCLI resolves a Config from, in increasing precedence: the
// codec defaults, an optional config file, then explicit CLI overrides.
func LoadConfigWithCLI(configPath string, cli CLIOverrides) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileCfg, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	if cli.Indent != 0 {
		cfg.Indent = cli.Indent
	}
	if cli.Delimiter != "" {
		cfg.Delimiter = cli.Delimiter
	}
	if cli.LengthMarkerSet {
		cfg.LengthMarker = cli.LengthMarker
	}
	if cli.JSON {
		cfg.JSON = cli.JSON
	}

	return cfg, nil
}
