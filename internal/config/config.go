package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config represents runtime configuration for the service. It is read once
// from the process environment at startup and treated as immutable afterwards.
type Config struct {
	Port int `env:"PORT" envDefault:"3000"`

	// LLM provider settings. An empty API key switches the service into mock
	// mode: no outbound calls are made, replies come from the local generator.
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	UploadDir string `env:"UPLOAD_DIR" envDefault:"uploads"`
	PublicDir string `env:"PUBLIC_DIR" envDefault:"public"`

	// Janitor settings for stranded upload files, in minutes.
	UploadSweepInterval int `env:"UPLOAD_SWEEP_INTERVAL" envDefault:"60"`
	UploadMaxAge        int `env:"UPLOAD_MAX_AGE" envDefault:"60"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LLMConfigured reports whether an API credential is present.
func (c *Config) LLMConfigured() bool {
	return c.OpenAIAPIKey != ""
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
