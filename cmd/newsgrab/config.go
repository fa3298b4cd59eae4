package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jsimek/newsgrab"
	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML schema of the config file. Durations are
// strings in time.ParseDuration format ("10s", "250ms"). All fields are
// optional; unset fields keep their defaults.
type fileConfig struct {
	Seeds           []string          `yaml:"seeds"`
	AllowedDomains  []string          `yaml:"allowedDomains"`
	ArticlePatterns map[string]string `yaml:"articlePatterns"`
	SkipExtensions  []string          `yaml:"skipExtensions"`
	MaxPages        int               `yaml:"maxPages"`
	BatchSize       int               `yaml:"batchSize"`
	OutputFile      string            `yaml:"outputFile"`
	Workers         int               `yaml:"workers"`
	RequestTimeout  string            `yaml:"requestTimeout"`
	RequestDelay    string            `yaml:"requestDelay"`
	UserAgent       string            `yaml:"userAgent"`
}

// LoadConfig builds the crawl configuration: defaults overlaid with the
// config file at path, when given. Flag overrides are applied by the
// caller. The returned config is validated.
func LoadConfig(path string) (newsgrab.Config, error) {
	cfg := newsgrab.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if len(fc.Seeds) > 0 {
		cfg.Seeds = fc.Seeds
	}
	if len(fc.AllowedDomains) > 0 {
		cfg.AllowedDomains = fc.AllowedDomains
	}
	if len(fc.ArticlePatterns) > 0 {
		cfg.ArticlePatterns = fc.ArticlePatterns
	}
	if len(fc.SkipExtensions) > 0 {
		cfg.SkipExtensions = fc.SkipExtensions
	}
	if fc.MaxPages > 0 {
		cfg.MaxPages = fc.MaxPages
	}
	if fc.BatchSize > 0 {
		cfg.BatchSize = fc.BatchSize
	}
	if fc.OutputFile != "" {
		cfg.OutputFile = fc.OutputFile
	}
	if fc.Workers > 0 {
		cfg.Workers = fc.Workers
	}
	if fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}

	if cfg.RequestTimeout, err = overrideDuration(cfg.RequestTimeout, fc.RequestTimeout, "requestTimeout"); err != nil {
		return cfg, err
	}
	if cfg.RequestDelay, err = overrideDuration(cfg.RequestDelay, fc.RequestDelay, "requestDelay"); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func overrideDuration(current time.Duration, raw, field string) (time.Duration, error) {
	if raw == "" {
		return current, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return current, fmt.Errorf("parsing %s: %w", field, err)
	}
	return d, nil
}
