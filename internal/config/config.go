package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// EnvPath overrides the default config location when set.
const EnvPath = "CHATLOG_CONFIG"

// Config is the persisted config file schema.
type Config struct {
	Color    string          `toml:"color"`
	LogFile  string          `toml:"log_file,omitempty"`
	Mode     string          `toml:"mode"`
	Copy     bool            `toml:"copy"`
	Features map[string]bool `toml:"features,omitempty"`
	Source   string          `toml:"-"`
}

var (
	colorModes  = []string{"auto", "always", "never"}
	renderModes = []string{"auto", "flat", "threaded"}
)

func Default() Config {
	return Config{
		Color: "auto",
		Mode:  "auto",
	}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chatlog", "config.toml")
}

// ResolvePath picks the explicit path, then $CHATLOG_CONFIG, then the default.
func ResolvePath(path string) string {
	if strings.TrimSpace(path) != "" {
		return path
	}
	if env := strings.TrimSpace(os.Getenv(EnvPath)); env != "" {
		return env
	}
	return DefaultPath()
}

// Load reads the config file and applies environment overrides. A missing
// file yields defaults.
func Load(path string) (Config, error) {
	cfg, err := LoadStored(path)
	if err != nil {
		return cfg, err
	}
	return applyEnv(cfg), nil
}

// LoadStored reads the config file exactly as stored, ignoring the environment.
func LoadStored(path string) (Config, error) {
	cfg := Default()
	path = ResolvePath(path)
	if path == "" {
		return cfg, errors.New("config path is empty and $HOME is not set")
	}
	cfg.Source = path

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	if !oneOf(c.Color, colorModes) {
		return fmt.Errorf("color must be one of %s, got %q", strings.Join(colorModes, "|"), c.Color)
	}
	if !oneOf(c.Mode, renderModes) {
		return fmt.Errorf("mode must be one of %s, got %q", strings.Join(renderModes, "|"), c.Mode)
	}
	return nil
}

func applyEnv(cfg Config) Config {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.Color = "never"
	}
	return cfg
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
