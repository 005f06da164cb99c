package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matryer/is"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	is := is.New(t)

	cfg, err := Load("")
	is.NoErr(err)
	is.Equal(cfg.Server.Addr, ":8080")
	is.Equal(cfg.Cache.Backend, "memory")
	is.Equal(cfg.RateLimit.Capacity, 5)
	is.Equal(cfg.RateLimit.Refill.Duration, time.Minute)
	is.Equal(cfg.Display.Locale, "es-PE")
	is.Equal(cfg.Display.Currency, "PEN")
}

func TestLoad_TOML(t *testing.T) {
	is := is.New(t)
	path := writeFile(t, "loansim.toml", `
[server]
addr = ":9090"
read_timeout = "5s"

[cache]
backend = "redis"
redis_addr = "cache:6379"
ttl = "10m"

[display]
locale = "en-US"
currency = "USD"
`)

	cfg, err := Load(path)
	is.NoErr(err)
	is.Equal(cfg.Server.Addr, ":9090")
	is.Equal(cfg.Server.ReadTimeout.Duration, 5*time.Second)
	is.Equal(cfg.Server.WriteTimeout.Duration, 15*time.Second)
	is.Equal(cfg.Cache.Backend, "redis")
	is.Equal(cfg.Cache.RedisAddr, "cache:6379")
	is.Equal(cfg.Cache.TTL.Duration, 10*time.Minute)
	is.Equal(cfg.Display.Currency, "USD")
}

func TestLoad_YAML(t *testing.T) {
	is := is.New(t)
	path := writeFile(t, "loansim.yaml", `
rate_limit:
  capacity: 20
  refill: 30s
log:
  level: debug
`)

	cfg, err := Load(path)
	is.NoErr(err)
	is.Equal(cfg.RateLimit.Capacity, 20)
	is.Equal(cfg.RateLimit.Refill.Duration, 30*time.Second)
	is.Equal(cfg.Log.Level, "debug")
	is.Equal(cfg.Server.Addr, ":8080")
}

func TestLoad_EnvOverrides(t *testing.T) {
	is := is.New(t)
	t.Setenv("LOANSIM_ADDR", ":7000")
	t.Setenv("LOANSIM_REDIS_ADDR", "redis:6379")
	t.Setenv("LOANSIM_RATE_LIMIT", "42")
	t.Setenv("LOANSIM_CURRENCY", "EUR")

	cfg, err := Load("")
	is.NoErr(err)
	is.Equal(cfg.Server.Addr, ":7000")
	is.Equal(cfg.Cache.Backend, "redis")
	is.Equal(cfg.Cache.RedisAddr, "redis:6379")
	is.Equal(cfg.RateLimit.Capacity, 42)
	is.Equal(cfg.Display.Currency, "EUR")
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error")
		}
	})
	t.Run("unsupported extension", func(t *testing.T) {
		if _, err := Load(writeFile(t, "loansim.ini", "x=1")); err == nil {
			t.Error("expected error")
		}
	})
	t.Run("bad duration", func(t *testing.T) {
		if _, err := Load(writeFile(t, "loansim.toml", "[cache]\nttl = \"soon\"\n")); err == nil {
			t.Error("expected error")
		}
	})
	t.Run("unknown backend", func(t *testing.T) {
		if _, err := Load(writeFile(t, "loansim.yaml", "cache:\n  backend: disk\n")); err == nil {
			t.Error("expected error")
		}
	})
	t.Run("bad rate limit env", func(t *testing.T) {
		t.Setenv("LOANSIM_RATE_LIMIT", "many")
		if _, err := Load(""); err == nil {
			t.Error("expected error")
		}
	})
}
