package main

import (
	"caesar/internal/ctxlog"
	"caesar/internal/db"
	"caesar/internal/dict"
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

type Config struct {
	Dictionary dict.Source   `yaml:"dictionary"`
	Rotator    RotatorConfig `yaml:"rotator"`
	Cache      db.Config     `yaml:"cache"`
	Log        ctxlog.Config `yaml:"log"`
	Batch      BatchConfig   `yaml:"batch"`
}

type RotatorConfig struct {
	// Strict rejects characters that are neither letters nor pass-through.
	Strict bool `yaml:"strict"`
}

type BatchConfig struct {
	Jobs int `yaml:"jobs"`
}

func (c *Config) setDefaults() {
	if c.Batch.Jobs == 0 {
		c.Batch.Jobs = 4
	}
}

func DefaultConfig() Config {
	var config Config
	config.setDefaults()
	return config
}

// LoadConfig reads filename and fills in defaults. An empty filename returns the defaults.
func LoadConfig(ctx context.Context, filename string) (Config, error) {
	if filename == "" {
		return DefaultConfig(), nil
	}

	file, err := os.Open(filename)
	if err != nil {
		return Config{}, fmt.Errorf("open %q: %w", filename, err)
	}
	defer ctxlog.Close(ctx, "config file", file)

	dec := yaml.NewDecoder(file, yaml.Strict())

	var config Config
	err = dec.Decode(&config)
	if err != nil {
		return Config{}, fmt.Errorf("yaml: %w", err)
	}

	config.setDefaults()
	return config, nil
}
