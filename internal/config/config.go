package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skillforge-labs/skillforge/internal/branding"
	"github.com/spf13/viper"
)

const fileName = "config.yaml"

// Dir returns the config directory. SKILLFORGE_HOME relocates it together
// with the rest of the workspace; the default is ~/.skillforge.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName)
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// A missing config file is fine; keys just read as unset.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set stores a key-value pair and persists the config file, creating the
// config directory on first use.
func Set(key, value string) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	viper.Set(key, value)
	if err := viper.WriteConfigAs(FilePath()); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
