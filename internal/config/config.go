// Package config loads loxparse settings.
//
// Precedence (highest to lowest): flags > env vars > config file > defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	EnvPrefix = "LOXPARSE_"

	ModeTokens = "tokens"
	ModeAST    = "ast"
	ModeRPN    = "rpn"
	ModeAll    = "all"

	FormatText  = "text"
	FormatTable = "table"

	DefaultMode   = ModeAST
	DefaultFormat = FormatText
	DefaultPrompt = "> "
)

var configFileNames = []string{"loxparse.yaml", "loxparse.yml"}

// Config holds the driver settings.
type Config struct {
	Mode        string `koanf:"mode"`
	Format      string `koanf:"format"`
	Sequence    bool   `koanf:"sequence"`
	Verbose     bool   `koanf:"verbose"`
	Prompt      string `koanf:"prompt"`
	HistoryFile string `koanf:"history_file"`

	// File is the config file the settings were read from, if any.
	File string `koanf:"-"`
}

// Load reads the configuration. cfgFile may be empty, in which case
// loxparse.yaml or loxparse.yml in the working directory is used when present.
// flags may be nil; only flags the user explicitly set are applied.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"mode":         DefaultMode,
		"format":       DefaultFormat,
		"sequence":     false,
		"verbose":      false,
		"prompt":       DefaultPrompt,
		"history_file": "",
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	cfgFile = findConfigFile(cfgFile)
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// LOXPARSE_HISTORY_FILE -> history_file
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = cfgFile

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects unknown modes and formats.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeTokens, ModeAST, ModeRPN, ModeAll:
	default:
		return fmt.Errorf("invalid mode %q: must be one of %s, %s, %s, %s", c.Mode, ModeTokens, ModeAST, ModeRPN, ModeAll)
	}

	switch c.Format {
	case FormatText, FormatTable:
	default:
		return fmt.Errorf("invalid format %q: must be one of %s, %s", c.Format, FormatText, FormatTable)
	}

	return nil
}

func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range configFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}
