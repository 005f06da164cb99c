package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the complete application configuration.
type Config struct {
	Server    ServerConfig    `toml:"server" yaml:"server"`
	Cache     CacheConfig     `toml:"cache" yaml:"cache"`
	RateLimit RateLimitConfig `toml:"rate_limit" yaml:"rate_limit"`
	Display   DisplayConfig   `toml:"display" yaml:"display"`
	Log       LogConfig       `toml:"log" yaml:"log"`
}

type ServerConfig struct {
	Addr            string   `toml:"addr" yaml:"addr"`
	ReadTimeout     Duration `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout" yaml:"write_timeout"`
	IdleTimeout     Duration `toml:"idle_timeout" yaml:"idle_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// CacheConfig selects where computed schedules are memoized.
type CacheConfig struct {
	Backend   string   `toml:"backend" yaml:"backend"` // "memory" or "redis"
	RedisAddr string   `toml:"redis_addr" yaml:"redis_addr"`
	TTL       Duration `toml:"ttl" yaml:"ttl"`
}

type RateLimitConfig struct {
	Capacity int      `toml:"capacity" yaml:"capacity"`
	Refill   Duration `toml:"refill" yaml:"refill"`
}

type DisplayConfig struct {
	Locale   string `toml:"locale" yaml:"locale"`
	Currency string `toml:"currency" yaml:"currency"`
}

type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// Duration wraps time.Duration so it can be written as "15s" in config
// files.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     Duration{15 * time.Second},
			WriteTimeout:    Duration{15 * time.Second},
			IdleTimeout:     Duration{60 * time.Second},
			ShutdownTimeout: Duration{10 * time.Second},
		},
		Cache: CacheConfig{
			Backend:   "memory",
			RedisAddr: "localhost:6379",
			TTL:       Duration{time.Hour},
		},
		RateLimit: RateLimitConfig{
			Capacity: 5,
			Refill:   Duration{time.Minute},
		},
		Display: DisplayConfig{
			Locale:   "es-PE",
			Currency: "PEN",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration from path (TOML or YAML, by extension) on
// top of the defaults and then applies environment overrides. An empty
// path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read config file")
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".toml":
			if _, err := toml.Decode(string(data), cfg); err != nil {
				return nil, errors.Wrap(err, "failed to parse config file")
			}
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrap(err, "failed to parse config file")
			}
		default:
			return nil, errors.Errorf("unsupported config format %q", filepath.Ext(path))
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("LOANSIM_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("LOANSIM_REDIS_ADDR"); v != "" {
		c.Cache.Backend = "redis"
		c.Cache.RedisAddr = v
	}
	if v := os.Getenv("LOANSIM_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOANSIM_LOCALE"); v != "" {
		c.Display.Locale = v
	}
	if v := os.Getenv("LOANSIM_CURRENCY"); v != "" {
		c.Display.Currency = v
	}
	if v := os.Getenv("LOANSIM_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "LOANSIM_RATE_LIMIT")
		}
		c.RateLimit.Capacity = n
	}
	return nil
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	switch c.Cache.Backend {
	case "memory":
	case "redis":
		if c.Cache.RedisAddr == "" {
			return errors.New("cache.redis_addr is required for the redis backend")
		}
	default:
		return errors.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
	if c.RateLimit.Capacity <= 0 {
		return errors.New("rate_limit.capacity must be positive")
	}
	if c.RateLimit.Refill.Duration <= 0 {
		return errors.New("rate_limit.refill must be positive")
	}
	return nil
}
