package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"github.com/kastproductions/printify-client/client"
)

// EnvPrefix is prepended to every variable name, e.g. PRINTIFY_API_KEY.
const EnvPrefix = "PRINTIFY"

// Config holds what the command line tools need to build a client.
// Environment variables are parsed from the PRINTIFY_ prefix; a .env file in
// the working directory is loaded first when present.
type Config struct {
	APIKey  string `envconfig:"API_KEY"`
	ShopID  string `envconfig:"SHOP_ID"`
	BaseURL string `envconfig:"BASE_URL" default:"https://api.printify.com/v1"`

	// Zero means no client timeout.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"0s"`

	Debug    bool   `envconfig:"DEBUG" default:"false"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// New loads .env (if any) and parses the environment.
func New() (*Config, error) {
	// Variables already set in the environment win over .env entries.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.ShopID = strings.TrimSpace(cfg.ShopID)
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	log.Debug().
		Str("base_url", cfg.BaseURL).
		Str("shop_id", cfg.ShopID).
		Bool("api_key_present", cfg.APIKey != "").
		Dur("http_timeout", cfg.HTTPTimeout).
		Bool("debug", cfg.Debug).
		Msg("configuration loaded")
	return &cfg, nil
}

// Validate reports settings that make building a client impossible.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%s_API_KEY is required", EnvPrefix)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("%s_HTTP_TIMEOUT must not be negative", EnvPrefix)
	}
	return nil
}

// ClientOptions translates the configuration into client options.
func (c *Config) ClientOptions() []client.Option {
	opts := []client.Option{client.WithShopID(c.ShopID)}
	if c.BaseURL != "" {
		opts = append(opts, client.WithBaseURL(c.BaseURL))
	}
	if c.HTTPTimeout > 0 {
		opts = append(opts, client.WithHTTPTimeout(c.HTTPTimeout))
	}
	if c.Debug {
		opts = append(opts, client.WithDebugLogging(true))
	}
	return opts
}

// NewClient validates the configuration and builds a client from it, with
// extra applied after the configured options.
func (c *Config) NewClient(extra ...client.Option) (*client.Client, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return client.New(c.APIKey, append(c.ClientOptions(), extra...)...)
}
