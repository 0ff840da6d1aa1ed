// Package config resolves runtime settings from defaults, an optional YAML
// file and ROLEMIX_* environment variables, in that order.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/rolemix/internal/logging"
	"github.com/alexanderramin/rolemix/internal/repository"
)

// Config holds all runtime settings.
type Config struct {
	DBPath     string `yaml:"db_path" env:"ROLEMIX_DB"`
	StorageKey string `yaml:"storage_key" env:"ROLEMIX_STORAGE_KEY"`
	// Seed fixes the random source; 0 means seed from the clock.
	Seed uint64 `yaml:"seed" env:"ROLEMIX_SEED"`
	Log  string `yaml:"log" env:"ROLEMIX_LOG"`
	// Ephemeral keeps profiles in process memory only; nothing touches disk.
	Ephemeral bool `yaml:"ephemeral" env:"ROLEMIX_EPHEMERAL"`
}

const configPathEnv = "ROLEMIX_CONFIG"

// DefaultConfig returns settings rooted at home.
func DefaultConfig(home string) Config {
	return Config{
		DBPath:     filepath.Join(home, ".rolemix", "rolemix.db"),
		StorageKey: repository.DefaultStorageKey,
		Log:        logging.ModeOff,
	}
}

type loadOptions struct {
	configPath string
	env        map[string]string
	readFile   func(string) ([]byte, error)
	homeDir    func() (string, error)
}

type Option func(*loadOptions)

// WithConfigPath reads the YAML file at path instead of the default location.
func WithConfigPath(path string) Option {
	return func(o *loadOptions) { o.configPath = path }
}

// WithEnvironment replaces the process environment with vars.
func WithEnvironment(vars map[string]string) Option {
	return func(o *loadOptions) { o.env = vars }
}

func WithHomeDir(fn func() (string, error)) Option {
	return func(o *loadOptions) { o.homeDir = fn }
}

// Load resolves the configuration and returns it with the YAML path that
// was consulted ("" when none).
func Load(opts ...Option) (Config, string, error) {
	options := loadOptions{
		readFile: os.ReadFile,
		homeDir:  os.UserHomeDir,
	}
	for _, opt := range opts {
		opt(&options)
	}

	home, err := options.homeDir()
	if err != nil {
		return Config{}, "", fmt.Errorf("finding home directory: %w", err)
	}
	cfg := DefaultConfig(home)

	path := strings.TrimSpace(options.configPath)
	if path == "" {
		path = strings.TrimSpace(options.lookup(configPathEnv))
	}
	if path == "" {
		path = filepath.Join(home, ".rolemix", "config.yaml")
	}
	if err := loadFile(options.readFile, path, &cfg); err != nil {
		return Config{}, path, err
	}

	if options.env != nil {
		err = env.ParseWithOptions(&cfg, env.Options{Environment: options.env})
	} else {
		err = env.Parse(&cfg)
	}
	if err != nil {
		return Config{}, path, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, path, err
	}
	return cfg, path, nil
}

func (o loadOptions) lookup(key string) string {
	if o.env != nil {
		return o.env[key]
	}
	return os.Getenv(key)
}

// loadFile overlays the YAML file at path onto cfg. A missing or empty
// file is not an error.
func loadFile(readFile func(string) ([]byte, error), path string, cfg *Config) error {
	data, err := readFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// Validate checks settings that cannot be defaulted.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("db_path must not be empty")
	}
	if strings.TrimSpace(c.StorageKey) == "" {
		return errors.New("storage_key must not be empty")
	}
	switch strings.ToLower(c.Log) {
	case "", logging.ModeOff, logging.ModeDev, logging.ModeProd:
	default:
		return fmt.Errorf("log must be off, dev or prod, got %q", c.Log)
	}
	return nil
}
