// Package config loads the web server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every variable read by Load.
const EnvPrefix = "PORTFOLIO_"

var httpURL = regexp.MustCompile(`^https?://[^\s/]+`)

// Config holds the web server configuration.
type Config struct {
	Host string `env:"HOST"`
	Port int    `env:"PORT" envDefault:"8080"`

	// BaseURL is the public origin used for canonical links and the sitemap.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	TemplatesDir string `env:"TEMPLATES_DIR" envDefault:"templates"`
	PublicDir    string `env:"PUBLIC_DIR" envDefault:"public"`
	ContentDir   string `env:"CONTENT_DIR" envDefault:"content"`

	Dev      bool   `env:"DEV"`
	Watch    bool   `env:"WATCH"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	EntryDelay       time.Duration `env:"ENTRY_DELAY" envDefault:"600ms"`
	Transition       time.Duration `env:"TRANSITION" envDefault:"400ms"`
	CacheTTL         time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ContactPerMinute float64       `env:"CONTACT_PER_MINUTE" envDefault:"3"`
	ContactBurst     int           `env:"CONTACT_BURST" envDefault:"3"`
}

// Load reads an optional .env file (or the given files), then the environment.
func Load(dotenv ...string) (*Config, error) {
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load dotenv: %w", err)
	}
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.BaseURL, validation.Required, validation.Match(httpURL)),
		validation.Field(&c.TemplatesDir, validation.Required),
		validation.Field(&c.PublicDir, validation.Required),
		validation.Field(&c.ContentDir, validation.Required),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.EntryDelay, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.Transition, validation.Min(time.Duration(0))),
		validation.Field(&c.ShutdownTimeout, validation.Required),
		validation.Field(&c.ContactPerMinute, validation.Required, validation.Min(0.1)),
		validation.Field(&c.ContactBurst, validation.Required, validation.Min(1)),
	)
}

// Address returns the HTTP listen address.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// WatchContent reports whether content should be reloaded on change.
func (c *Config) WatchContent() bool { return c.Watch || c.Dev }
