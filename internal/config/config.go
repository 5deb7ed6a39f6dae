// Package config loads the YAML configuration for the brief CLI.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nbenliogludev/go-page-brief/internal/llm"
	"github.com/nbenliogludev/go-page-brief/internal/summary"
	"github.com/nbenliogludev/go-page-brief/internal/textgen"
)

type Config struct {
	OpenAI  OpenAIConfig  `yaml:"openai"`
	Summary SummaryConfig `yaml:"summary"`
	Inspect InspectConfig `yaml:"inspect"`
	Log     LogConfig     `yaml:"log"`
}

type OpenAIConfig struct {
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
	APIKeyEnv   string  `yaml:"api_key_env"`
	BaseURL     string  `yaml:"base_url"`
}

type SummaryConfig struct {
	// MaxWords bounds the brief length; 0 means unbounded.
	MaxWords       int    `yaml:"max_words"`
	NavbarMode     string `yaml:"navbar_mode"`
	Delimiter      string `yaml:"delimiter"`
	DetectLanguage bool   `yaml:"detect_language"`
}

type InspectConfig struct {
	Headless  bool `yaml:"headless"`
	TimeoutMS int  `yaml:"timeout_ms"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() *Config {
	return &Config{
		OpenAI: OpenAIConfig{
			Model:       "gpt-4o-mini",
			Temperature: 0.7,
			APIKeyEnv:   llm.DefaultAPIKeyEnv,
		},
		Summary: SummaryConfig{
			NavbarMode:     string(textgen.NavbarParse),
			Delimiter:      summary.DefaultDelimiter,
			DetectLanguage: true,
		},
		Inspect: InspectConfig{
			Headless:  true,
			TimeoutMS: 60000,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Summary.MaxWords < 0 {
		errs = append(errs, fmt.Errorf("summary.max_words must not be negative"))
	}
	if _, err := textgen.ParseNavbarMode(c.Summary.NavbarMode); err != nil {
		errs = append(errs, fmt.Errorf("summary.navbar_mode: %w", err))
	}
	if c.Inspect.TimeoutMS < 0 {
		errs = append(errs, fmt.Errorf("inspect.timeout_ms must not be negative"))
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}
