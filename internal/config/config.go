// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/riftscout.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// --------------------------------------------------------------------------
// Riot endpoints
// --------------------------------------------------------------------------

// Used when the matching env var is unset.
const (
	DefaultRegionalURL = "https://americas.api.riotgames.com"
	DefaultPlatformURL = "https://na1.api.riotgames.com"
	DefaultDDragonURL  = "https://ddragon.leagueoflegends.com"
)

// Scout knobs may only lower these.
const (
	maxScoutMatchCount          = 10
	maxScoutConcurrentOpponents = 5
)

// --------------------------------------------------------------------------
// Config struct, populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Riot API
	RiotAPIKey            string  `env:"RIOT_API_KEY"`
	RiotRegionalURL       string  `env:"RIOT_REGIONAL_URL"`
	RiotPlatformURL       string  `env:"RIOT_PLATFORM_URL"`
	RiotRequestsPerSecond float64 `env:"RIOT_REQUESTS_PER_SECOND" envDefault:"15"`
	RiotBurst             int     `env:"RIOT_BURST" envDefault:"20"`

	// Static content (Data Dragon)
	DDragonURL             string        `env:"DDRAGON_URL"`
	ContentVersionFallback string        `env:"CONTENT_VERSION_FALLBACK" envDefault:"14.1.1"`
	VersionRefreshInterval time.Duration `env:"VERSION_REFRESH_INTERVAL" envDefault:"1h"`

	// Scout pipeline
	ScoutMatchCount             int           `env:"SCOUT_MATCH_COUNT" envDefault:"10"`
	ScoutMaxConcurrentOpponents int           `env:"SCOUT_MAX_CONCURRENT_OPPONENTS" envDefault:"5"`
	ScoutTimeout                time.Duration `env:"SCOUT_TIMEOUT" envDefault:"45s"`

	// API server
	APIHost     string `env:"API_HOST" envDefault:"0.0.0.0"`
	APIPort     int    `env:"API_PORT"`
	Port        int    `env:"PORT" envDefault:"8000"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Debug       bool   `env:"DEBUG" envDefault:"false"`

	// CORS
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173"`

	// Rate limiting
	RateLimitEnabled  bool          `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RateLimitRequests int           `env:"RATE_LIMIT_REQUESTS" envDefault:"30"`
	RateLimitWindow   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"60s"`

	// Audit database (optional)
	DatabaseURL    string        `env:"DATABASE_URL"`
	DBPoolMinConns int           `env:"DB_POOL_MIN_CONNS" envDefault:"1"`
	DBPoolMaxConns int           `env:"DB_POOL_MAX_CONNS" envDefault:"5"`
	DBPoolMaxLife  time.Duration `env:"DB_POOL_MAX_LIFE" envDefault:"30m"`
	AuditRetention time.Duration `env:"AUDIT_RETENTION" envDefault:"720h"`

	// Discord delivery (optional)
	DiscordWebhookURL string `env:"DISCORD_WEBHOOK_URL"`

	// Tracing
	OTelEndpoint string `env:"OTEL_ENDPOINT"`
	OTelEnabled  bool   `env:"OTEL_ENABLED" envDefault:"true"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg, err := parse()
	if err != nil {
		return nil, err
	}
	if cfg.RiotAPIKey == "" {
		return nil, fmt.Errorf("RIOT_API_KEY must be set")
	}
	return cfg, nil
}

// LoadOptional is Load without the Riot key requirement. Used by commands
// that only touch the database or the static content CDN.
func LoadOptional() (*Config, error) {
	return parse()
}

func parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.APIPort == 0 {
		cfg.APIPort = cfg.Port
	}
	origins := make([]string, 0, len(cfg.CORSAllowOrigins))
	for _, o := range cfg.CORSAllowOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	cfg.CORSAllowOrigins = origins
	if cfg.RiotRegionalURL == "" {
		cfg.RiotRegionalURL = DefaultRegionalURL
	}
	if cfg.RiotPlatformURL == "" {
		cfg.RiotPlatformURL = DefaultPlatformURL
	}
	if cfg.DDragonURL == "" {
		cfg.DDragonURL = DefaultDDragonURL
	}
	if cfg.ScoutMatchCount < 1 || cfg.ScoutMatchCount > maxScoutMatchCount {
		cfg.ScoutMatchCount = maxScoutMatchCount
	}
	if cfg.ScoutMaxConcurrentOpponents < 1 || cfg.ScoutMaxConcurrentOpponents > maxScoutConcurrentOpponents {
		cfg.ScoutMaxConcurrentOpponents = maxScoutConcurrentOpponents
	}
	return cfg, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AuditEnabled reports whether a database is configured for the audit log.
func (c *Config) AuditEnabled() bool {
	return c.DatabaseURL != ""
}
