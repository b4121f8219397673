// Package config merges defaults, a .env file, an optional YAML config file,
// CONTACTBOOK_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/contactbook/contactbook/internal/logging"
	"github.com/contactbook/contactbook/pkg/store"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "CONTACTBOOK"

// Output formats accepted by the CLI.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// ErrInvalidOutput is returned when the output format is unknown.
var ErrInvalidOutput = errors.New("output must be text, json or yaml")

// Config holds all runtime configuration for one invocation.
type Config struct {
	Store  string
	Output string
	Log    logging.Options
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"store":      "store",
	"output":     "output",
	"log-level":  "log.level",
	"log-format": "log.format",
	"log-file":   "log.file",
}

// Load builds the configuration. Flags that were set on the command line win
// over environment variables, which win over the config file.
// configFile may be empty, in which case ./contactbook.yaml is used if present.
func Load(flags *pflag.FlagSet, configFile string, envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	v.SetDefault("store", store.DefaultPath)
	v.SetDefault("output", OutputText)
	v.SetDefault("log.level", "")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("contactbook")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	cfg := &Config{
		Store:  strings.TrimSpace(v.GetString("store")),
		Output: strings.ToLower(strings.TrimSpace(v.GetString("output"))),
		Log: logging.Options{
			Level:  v.GetString("log.level"),
			File:   v.GetString("log.file"),
			Format: v.GetString("log.format"),
		},
	}
	if cfg.Store == "" {
		cfg.Store = store.DefaultPath
	}

	switch cfg.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidOutput, cfg.Output)
	}

	return cfg, nil
}
