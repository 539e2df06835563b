package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Environment variable / flag constants, undoplay's equivalent of
// dcode's DCODE_* family.
const (
	EnvConfig = "UNDOPLAY_CONFIG" // path to a custom config file
)

// Config holds undoplay's run-time settings, layered env > config file
// > defaults. No command-line flag sets these fields; the only flag,
// --config, picks which config file is read.
type Config struct {
	Limit       int    `mapstructure:"limit"`
	InitialText string `mapstructure:"initial_text"`
	Color       bool   `mapstructure:"color"`
}

// LoadConfig builds a Config from defaults, an optional config file
// (YAML, discovered in ., ~/.config/undoplay, or the path named by
// --config / UNDOPLAY_CONFIG), and UNDOPLAY_-prefixed environment
// variables, in that order of increasing precedence.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("limit", 100)
	v.SetDefault("initial_text", "")
	v.SetDefault("color", true)

	if configFile == "" {
		configFile = os.Getenv(EnvConfig)
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "undoplay"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("undoplay")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("UNDOPLAY")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configFile != "" {
			return nil, fmt.Errorf("undoplay: reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("undoplay: decoding config: %w", err)
	}
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}
	return &cfg, nil
}
