// Package config loads linkman settings from file, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	appName   = "linkman"
	fileName  = "config"
	fileType  = "yaml"
	envPrefix = "LINKMAN"
)

// Keys understood in the config file and as LINKMAN_* variables.
const (
	KeyColor      = "color"
	KeyEmoji      = "emoji"
	KeyVerbose    = "verbose"
	KeyDirectory  = "directory"
	KeyRecursive  = "recursive"
	KeyWSLMarkers = "wsl_markers"
	KeyAbsolute   = "absolute"
)

// Config holds resolved settings. Command-line flags are applied on top by the caller.
type Config struct {
	Color      string
	Emoji      bool
	Verbose    bool
	Directory  string
	Recursive  bool
	WSLMarkers bool
	Absolute   bool
}

// Dir returns the config directory. It respects XDG_CONFIG_HOME if set,
// otherwise defaults to ~/.config/linkman.
func Dir() string {
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			xdgConfig = "."
		} else {
			xdgConfig = filepath.Join(homeDir, ".config")
		}
	}
	return filepath.Join(xdgConfig, appName)
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load reads the config file if present, then LINKMAN_* environment
// variables, falling back to defaults. A missing file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyColor, "auto")
	v.SetDefault(KeyEmoji, true)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyDirectory, ".")
	v.SetDefault(KeyRecursive, true)
	v.SetDefault(KeyWSLMarkers, true)
	v.SetDefault(KeyAbsolute, false)

	v.SetConfigFile(FilePath())
	v.SetConfigType(fileType)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config file %s: %w", FilePath(), err)
		}
	}

	cfg := &Config{
		Color:      v.GetString(KeyColor),
		Emoji:      v.GetBool(KeyEmoji),
		Verbose:    v.GetBool(KeyVerbose),
		Directory:  v.GetString(KeyDirectory),
		Recursive:  v.GetBool(KeyRecursive),
		WSLMarkers: v.GetBool(KeyWSLMarkers),
		Absolute:   v.GetBool(KeyAbsolute),
	}
	return cfg, nil
}
