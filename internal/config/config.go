// Package config loads startupctl configuration.
//
// Configuration comes from a single file named by the --config flag or the
// STARTUPCTL_CONFIG environment variable. There is no discovery and no
// fallback. The format is chosen by extension: .yaml/.yml or .toml.
// Command-line flags override file values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/startupkit/pkg/types"
)

// EnvVar names the environment variable holding the config path.
const EnvVar = "STARTUPCTL_CONFIG"

// Config is the startupctl configuration.
type Config struct {
	// Host is the target machine. Empty means the local machine.
	Host string `yaml:"host" toml:"host"`

	// Store is "machine" (HKLM) or "user" (HKCU).
	Store string `yaml:"store" toml:"store"`

	// StartService starts the Remote Registry service on remote hosts
	// when it is stopped.
	StartService bool `yaml:"start_service" toml:"start_service"`

	// Skip is the default skip source: none, default, file, default+file.
	Skip string `yaml:"skip" toml:"skip"`

	// SkipFile is the skip list used by the file sources.
	SkipFile string `yaml:"skip_file" toml:"skip_file"`

	// Log configures the file logger.
	Log LogConfig `yaml:"log" toml:"log"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Enabled turns on file logging.
	Enabled bool `yaml:"enabled" toml:"enabled"`

	// Dir is the log directory. Default: ~/.startupctl/logs
	Dir string `yaml:"dir" toml:"dir"`

	// Level is debug, info, warn or error. Default: info
	Level string `yaml:"level" toml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Store: "machine",
		Skip:  "none",
		Log:   LogConfig{Level: "info"},
	}
}

// Path returns flagValue, or the environment variable when the flag is empty.
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvVar)
}

// Load reads the file at path over Default and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// an empty document leaves the defaults in place
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return nil, fmt.Errorf("parse config %s: unknown keys %s", path, strings.Join(keys, ", "))
		}
	default:
		return nil, fmt.Errorf("config %s: unsupported extension %q (want .yaml, .yml or .toml)", path, filepath.Ext(path))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	if _, err := c.StoreValue(); err != nil {
		return err
	}
	skip, err := c.SkipSource()
	if err != nil {
		return err
	}
	if skip.NeedsFile() && c.SkipFile == "" {
		return &types.Error{Kind: types.ErrKindArgument, Msg: fmt.Sprintf("skip %q requires skip_file", c.Skip)}
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// StoreValue parses Store.
func (c *Config) StoreValue() (types.Store, error) {
	return types.ParseStore(c.Store)
}

// SkipSource parses Skip.
func (c *Config) SkipSource() (types.SkipSource, error) {
	return types.ParseSkipSource(c.Skip)
}

// LogLevel parses Log.Level. Empty means info.
func (c *Config) LogLevel() (slog.Level, error) {
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, &types.Error{Kind: types.ErrKindArgument, Msg: fmt.Sprintf("unknown log level %q", c.Log.Level), Err: err}
	}
	return lvl, nil
}
