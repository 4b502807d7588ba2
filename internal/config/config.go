package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the optional CLI configuration. Every key has a flag
// equivalent; flags win.
type Config struct {
	Theme string   `mapstructure:"theme"`
	Paths []string `mapstructure:"paths"`
}

// File returns the config file location,
// $XDG_CONFIG_HOME/xcursor/config.yaml by default.
func File() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "xcursor", "config.yaml"), nil
}

// Load reads the config file. A missing file yields the zero config;
// a malformed one is an error.
func Load() (*Config, error) {
	path, err := File()
	if err != nil {
		return &Config{}, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}
