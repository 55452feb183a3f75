package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config defines runtime parameters for the HTTP server. Values come
// from an optional YAML file with HDBPLAN_* environment variables
// taking precedence.
type Config struct {
	ListenAddress string        `mapstructure:"listen_address"`
	ReadTimeout   time.Duration `mapstructure:"read_timeout"`
	WriteTimeout  time.Duration `mapstructure:"write_timeout"`
	IdleTimeout   time.Duration `mapstructure:"idle_timeout"`

	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// RateLimitConfig sets the per-client token bucket: Requests tokens
// refilled every Window.
type RateLimitConfig struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// CacheConfig selects the response cache backend.
type CacheConfig struct {
	Backend   string        `mapstructure:"backend"`
	RedisAddr string        `mapstructure:"redis_addr"`
	TTL       time.Duration `mapstructure:"ttl"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputFile string `mapstructure:"output_file"`
}

// LoadConfig loads the server configuration. An empty path returns the
// defaults, overridden only by environment variables.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("listen_address", ":8080")
	v.SetDefault("read_timeout", 15*time.Second)
	v.SetDefault("write_timeout", 15*time.Second)
	v.SetDefault("idle_timeout", 60*time.Second)
	v.SetDefault("rate_limit.requests", 60)
	v.SetDefault("rate_limit.window", time.Minute)
	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.redis_addr", "localhost:6379")
	v.SetDefault("cache.ttl", 5*time.Minute)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetEnvPrefix("HDBPLAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read server config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode server config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() error {
	if c.ListenAddress == "" {
		c.ListenAddress = ":8080"
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = 15 * time.Second
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = 15 * time.Second
	}
	if c.IdleTimeout <= 0 {
		c.IdleTimeout = 60 * time.Second
	}
	if c.RateLimit.Requests <= 0 {
		c.RateLimit.Requests = 60
	}
	if c.RateLimit.Window <= 0 {
		c.RateLimit.Window = time.Minute
	}

	switch c.Cache.Backend {
	case "", "memory":
		c.Cache.Backend = "memory"
	case "redis":
		if c.Cache.RedisAddr == "" {
			return fmt.Errorf("redis cache selected but no redis_addr configured")
		}
	default:
		return fmt.Errorf("unsupported cache backend: %s", c.Cache.Backend)
	}
	return nil
}
