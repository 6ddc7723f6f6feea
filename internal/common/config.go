package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string          `toml:"environment"` // "development" or "production"
	Server      ServerConfig    `toml:"server"`
	Provider    ProviderConfig  `toml:"provider"`
	Sentiment   SentimentConfig `toml:"sentiment"`
	Cache       CacheConfig     `toml:"cache"`
	Watchlist   WatchlistConfig `toml:"watchlist"`
	Logging     LoggingConfig   `toml:"logging"`
}

type ServerConfig struct {
	Port int    `toml:"port" validate:"gte=0,lte=65535"`
	Host string `toml:"host"`
}

// ProviderConfig configures the market data provider client.
type ProviderConfig struct {
	BaseURL        string        `toml:"base_url" validate:"required,url"`
	APIKey         string        `toml:"api_key"`
	RateLimit      int           `toml:"rate_limit" validate:"gte=1"` // requests per second
	RequestTimeout time.Duration `toml:"request_timeout"`
	// RSSFeedURL is an optional secondary news source. The %s verb is
	// replaced with the ticker symbol. Empty disables the RSS source.
	RSSFeedURL string `toml:"rss_feed_url"`
}

// SentimentConfig holds the engine tunables. Defaults match the
// calibrated values the composite scores were validated against; change
// them and prior outputs are no longer comparable.
type SentimentConfig struct {
	HalfLifeHours    float64 `toml:"half_life_hours" validate:"gt=0"`
	DupWindowHours   float64 `toml:"dup_window_hours" validate:"gt=0"`
	DupPenalty       float64 `toml:"dup_penalty" validate:"gt=0,lte=1"`
	PosThreshold     float64 `toml:"pos_threshold"`
	MinArticles      int     `toml:"min_articles" validate:"gte=1"`
	TargetEffectiveN float64 `toml:"target_effective_n" validate:"gt=0"`
	LookbackDays     []int   `toml:"lookback_days" validate:"min=1,dive,gte=1"`
	DefaultLimit     int     `toml:"default_limit" validate:"gte=1"`
	MultiLimit       int     `toml:"multi_limit" validate:"gte=1"`
}

// CacheConfig configures the raw-news TTL cache.
type CacheConfig struct {
	Enabled bool          `toml:"enabled"`
	TTL     time.Duration `toml:"ttl"`
	// Path enables the badger-backed layer when non-empty; entries expire
	// via badger's native TTL. Empty keeps the cache memory-only.
	Path string `toml:"path"`
}

// WatchlistConfig configures scheduled cache pre-warming.
type WatchlistConfig struct {
	Enabled  bool     `toml:"enabled"`
	Schedule string   `toml:"schedule"` // standard 5-field cron expression
	Tickers  []string `toml:"tickers"`
}

type LoggingConfig struct {
	Level  string   `toml:"level" validate:"oneof=debug info warn error"`
	Output []string `toml:"output"` // "stdout", "file"
}

// NewDefaultConfig creates a configuration with default values
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8080,
			Host: "localhost",
		},
		Provider: ProviderConfig{
			BaseURL:        "https://query1.finance.yahoo.com",
			RateLimit:      10,
			RequestTimeout: 30 * time.Second,
		},
		Sentiment: SentimentConfig{
			HalfLifeHours:    24,
			DupWindowHours:   2,
			DupPenalty:       0.5,
			PosThreshold:     0.05,
			MinArticles:      5,
			TargetEffectiveN: 3.0,
			LookbackDays:     []int{1, 3, 7},
			DefaultLimit:     30,
			MultiLimit:       10,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     10 * time.Minute,
		},
		Watchlist: WatchlistConfig{
			Enabled:  false,
			Schedule: "*/10 * * * *", // every 10 minutes
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout"},
		},
	}
}

// LoadFromFiles loads configuration with priority: defaults -> file1 ->
// file2 -> ... -> env -> CLI flags. Later files override earlier ones.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("TICKERPULSE_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	if port := os.Getenv("TICKERPULSE_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if host := os.Getenv("TICKERPULSE_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	if key := os.Getenv("TICKERPULSE_PROVIDER_API_KEY"); key != "" {
		config.Provider.APIKey = key
	}

	if level := os.Getenv("TICKERPULSE_LOG_LEVEL"); level != "" {
		config.Logging.Level = strings.ToLower(level)
	}
}

// ApplyFlagOverrides applies command-line flag overrides (highest priority)
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// IsProduction returns true when running in production mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}
