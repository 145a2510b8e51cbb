package main

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/hlop3z/sqlforge/internal/alerr"
	"github.com/hlop3z/sqlforge/internal/dialect"
	"github.com/hlop3z/sqlforge/internal/rules"
	"github.com/hlop3z/sqlforge/internal/store"
)

// DefaultConfigFile is read from the working directory when --config is not given.
const DefaultConfigFile = "sqlforge.yaml"

// Environment overrides.
const (
	envDialect = "SQLFORGE_DIALECT"
	envStore   = "SQLFORGE_STORE"
)

// Global flags
var (
	configFile  string
	dialectFlag string
	storeFlag   string
	verbose     bool
	noColor     bool
)

// Config represents the sqlforge.yaml configuration file.
type Config struct {
	// Dialect overrides the project's dbms when set.
	Dialect    string   `yaml:"dialect"`
	Actions    []string `yaml:"actions"`
	StorePath  string   `yaml:"store_path"`
	Output     string   `yaml:"output"`
	StrictData bool     `yaml:"strict_data"`
}

func defaultConfig() *Config {
	return &Config{
		Actions:   []string{"all"},
		StorePath: store.DefaultPath("."),
	}
}

// loadConfig loads configuration from file, env vars, and CLI flags.
// Precedence: CLI flags > env vars > config file > defaults
//
// A missing config file is only an error when --config was given explicitly.
func loadConfig(flags *pflag.FlagSet) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(configFile)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, alerr.Wrap(alerr.ErrConfigInvalid, err, "failed to parse config file").
				WithPath(configFile)
		}
		cfg.StorePath = expandEnvVars(cfg.StorePath)
		cfg.Output = expandEnvVars(cfg.Output)
	case errors.Is(err, fs.ErrNotExist) && !changed(flags, "config"):
	default:
		return nil, alerr.Wrap(alerr.ErrConfigInvalid, err, "failed to read config file").
			WithPath(configFile)
	}

	if v := os.Getenv(envDialect); v != "" {
		cfg.Dialect = v
	}
	if v := os.Getenv(envStore); v != "" {
		cfg.StorePath = v
	}

	if changed(flags, "dialect") {
		cfg.Dialect = dialectFlag
	}
	if changed(flags, "store") {
		cfg.StorePath = storeFlag
	}

	if cfg.Dialect != "" {
		if _, ok := dialect.Parse(cfg.Dialect); !ok {
			slog.Warn("unknown dialect, falling back", "dialect", cfg.Dialect, "using", dialect.Default)
		}
	}
	if cfg.StorePath == "" {
		cfg.StorePath = store.DefaultPath(".")
	}
	return cfg, nil
}

// ActionSet parses the configured actions. An empty list selects every action.
func (c *Config) ActionSet() (rules.ActionSet, error) {
	if len(c.Actions) == 0 {
		return rules.NewActionSet(rules.AllActions()...), nil
	}
	return rules.ParseActionSet(strings.Join(c.Actions, ","))
}

// changed reports whether the named flag was set on the command line.
func changed(flags *pflag.FlagSet, name string) bool {
	if flags == nil {
		return false
	}
	f := flags.Lookup(name)
	return f != nil && f.Changed
}

// expandEnvVars expands ${VAR} patterns in a string.
func expandEnvVars(s string) string {
	return os.Expand(s, os.Getenv)
}

// newLogger builds the stderr text logger; verbose lowers the level to Debug.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
