package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type config struct {
	Definitions string   `mapstructure:"definitions"`
	Output      string   `mapstructure:"output"`
	Package     string   `mapstructure:"package"`
	Release     string   `mapstructure:"release"`
	Resources   []string `mapstructure:"resources"`
	Types       []string `mapstructure:"types"`
	Verbose     bool     `mapstructure:"verbose"`
}

// loadConfig merges flags, FHIRGEN_* environment variables and the config
// file, in that order of precedence.
func loadConfig(v *viper.Viper) (*config, error) {
	v.SetEnvPrefix("FHIRGEN")
	v.AutomaticEnv()

	v.SetDefault("release", "R4")
	v.SetDefault("output", ".")

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("generate")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Definitions == "" {
		return nil, errors.New("no definitions archive configured")
	}
	if cfg.Package == "" {
		cfg.Package = strings.ToLower(cfg.Release)
	}
	return cfg, nil
}
