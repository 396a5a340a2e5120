// Package config wraps Viper access to ~/.skillforge/config.yaml and the
// SKILLFORGE_* environment, backing the "skillforge config" commands.
package config
