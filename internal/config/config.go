package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

// Config represents the triad configuration.
type Config struct {
	Addr                  string        `json:"addr" env:"TRIAD_ADDR, overwrite"`
	MaxCodeLength         int           `json:"maxCodeLength" env:"TRIAD_MAX_CODE_LENGTH, overwrite"`
	BackendTimeoutSeconds int           `json:"backendTimeoutSeconds" env:"TRIAD_BACKEND_TIMEOUT_SECONDS, overwrite"`
	MaxTokens             int           `json:"maxTokens" env:"TRIAD_MAX_TOKENS, overwrite"`
	Format                string        `json:"format" env:"TRIAD_FORMAT, overwrite"`
	FailOn                string        `json:"failOn" env:"TRIAD_FAIL_ON, overwrite"`
	LogLevel              string        `json:"logLevel" env:"TRIAD_LOG_LEVEL, overwrite"`
	LogFormat             string        `json:"logFormat" env:"TRIAD_LOG_FORMAT, overwrite"`
	Privacy               PrivacyConfig `json:"privacy"`
}

// PrivacyConfig controls what leaves the process.
type PrivacyConfig struct {
	RedactSecrets bool `json:"redactSecrets" env:"TRIAD_REDACT_SECRETS, overwrite"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Addr:                  ":8080",
		MaxCodeLength:         50000,
		BackendTimeoutSeconds: 120,
		MaxTokens:             4096,
		Format:                "text",
		FailOn:                "none",
		LogLevel:              "info",
		LogFormat:             "text",
		Privacy: PrivacyConfig{
			RedactSecrets: true,
		},
	}
}

// ConfigDir returns the platform-appropriate config directory for triad.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "triad"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "triad"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "triad"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "triad"), nil
	default:
		return filepath.Join(home, ".config", "triad"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	var cfg Config
	if err := applyFile(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Update sets key to value in the config file. A missing file is created
// from the defaults; keys absent from an existing file take their defaults.
func Update(key, value string) error {
	cfg := Default()
	if err := applyFile(&cfg); err != nil {
		return err
	}
	if err := SetField(&cfg, key, value); err != nil {
		return err
	}
	return Save(cfg)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(ctx context.Context, overrides map[string]string) (Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper(), overrides)
}

// LoadWith is Load with an explicit environment source.
func LoadWith(ctx context.Context, l envconfig.Lookuper, overrides map[string]string) (Config, error) {
	cfg := Default()

	if err := applyFile(&cfg); err != nil {
		return Config{}, err
	}
	if err := mergeEnv(ctx, l, &cfg); err != nil {
		return Config{}, err
	}
	if err := mergeOverrides(&cfg, overrides); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyFile decodes the config file on top of cfg. Keys absent from the file
// keep their current value, so an explicit false in the file is honored.
// An empty string in the file also keeps the current value.
func applyFile(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	prev := *cfg
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	for _, f := range []struct{ cur, old *string }{
		{&cfg.Addr, &prev.Addr},
		{&cfg.Format, &prev.Format},
		{&cfg.FailOn, &prev.FailOn},
		{&cfg.LogLevel, &prev.LogLevel},
		{&cfg.LogFormat, &prev.LogFormat},
	} {
		if *f.cur == "" {
			*f.cur = *f.old
		}
	}
	return nil
}

func mergeEnv(ctx context.Context, l envconfig.Lookuper, cfg *Config) error {
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: l,
	}); err != nil {
		return fmt.Errorf("processing environment: %w", err)
	}
	return nil
}

func mergeOverrides(cfg *Config, overrides map[string]string) error {
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := SetField(cfg, key, value); err != nil {
			return err
		}
	}
	return nil
}

// Key describes one settable config key.
type Key struct {
	Name string
	Help string
}

// Keys lists the keys accepted by SetField, in display order.
var Keys = []Key{
	{"addr", "HTTP listen address"},
	{"maxCodeLength", "largest accepted snippet, in characters"},
	{"backendTimeoutSeconds", "timeout for one backend call"},
	{"maxTokens", "completion token cap per agent"},
	{"format", "analyze output format: text, json or markdown"},
	{"failOn", "analyze exits 1 at or above: none, suggestion, warning, critical"},
	{"logLevel", "debug, info, warn or error"},
	{"logFormat", "text or json"},
	{"redactSecrets", "strip secrets before code leaves the process"},
}

func keyNames() string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return strings.Join(names, ", ")
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "addr":
		cfg.Addr = value
	case "format":
		cfg.Format = value
	case "failOn":
		cfg.FailOn = value
	case "logLevel":
		cfg.LogLevel = value
	case "logFormat":
		cfg.LogFormat = value
	case "maxCodeLength":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxCodeLength must be an integer: %w", err)
		}
		cfg.MaxCodeLength = n
	case "backendTimeoutSeconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("backendTimeoutSeconds must be an integer: %w", err)
		}
		cfg.BackendTimeoutSeconds = n
	case "maxTokens":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxTokens must be an integer: %w", err)
		}
		cfg.MaxTokens = n
	case "redactSecrets":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("redactSecrets must be a boolean: %w", err)
		}
		cfg.Privacy.RedactSecrets = b
	default:
		return fmt.Errorf("unknown config key %q (valid keys: %s)", key, keyNames())
	}
	return nil
}
