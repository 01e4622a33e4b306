package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type CartLocking string

const (
	CartLockingNone    CartLocking = "none"
	CartLockingPerUser CartLocking = "per_user"
)

type CatalogSeed string

const (
	CatalogSeedSample CatalogSeed = "sample"
	CatalogSeedDemo   CatalogSeed = "demo"
)

type Config struct {
	Port     string
	LogLevel string

	DefaultUserID string
	CartLocking   CartLocking
	CatalogSeed   CatalogSeed

	CORSAllowedOrigins []string
	AuthRateLimit      int

	MetricsEnabled bool
	MetricsToken   string
}

func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads an optional .env file from the working directory and then the
// process environment. Values already present in the environment win.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	e := env{getenv: getenv}

	cfg := Config{
		Port:               e.str("PORT", "5328"),
		LogLevel:           e.str("LOG_LEVEL", "info"),
		DefaultUserID:      e.str("DEFAULT_USER_ID", "default_user"),
		CartLocking:        CartLocking(e.str("CART_LOCKING", string(CartLockingNone))),
		CatalogSeed:        CatalogSeed(e.str("CATALOG_SEED", string(CatalogSeedSample))),
		CORSAllowedOrigins: e.list("CORS_ALLOWED_ORIGINS", []string{"*"}),
		AuthRateLimit:      e.int("AUTH_RATE_LIMIT", 0),
		MetricsEnabled:     e.bool("METRICS_ENABLED", true),
		MetricsToken:       e.str("METRICS_TOKEN", ""),
	}
	if e.err != nil {
		return Config{}, e.err
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if n, err := strconv.Atoi(c.Port); err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("PORT: invalid port %q", c.Port)
	}
	switch c.CartLocking {
	case CartLockingNone, CartLockingPerUser:
	default:
		return fmt.Errorf("CART_LOCKING: unknown policy %q", c.CartLocking)
	}
	switch c.CatalogSeed {
	case CatalogSeedSample, CatalogSeedDemo:
	default:
		return fmt.Errorf("CATALOG_SEED: unknown seed %q", c.CatalogSeed)
	}
	if c.AuthRateLimit < 0 {
		return fmt.Errorf("AUTH_RATE_LIMIT: must be >= 0, got %d", c.AuthRateLimit)
	}
	return nil
}

type env struct {
	getenv func(string) string
	err    error
}

func (e *env) str(key, def string) string {
	if v := strings.TrimSpace(e.getenv(key)); v != "" {
		return v
	}
	return def
}

func (e *env) int(key string, def int) int {
	v := strings.TrimSpace(e.getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.fail(fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func (e *env) bool(key string, def bool) bool {
	v := strings.TrimSpace(e.getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.fail(fmt.Errorf("%s: %w", key, err))
		return def
	}
	return b
}

func (e *env) list(key string, def []string) []string {
	v := strings.TrimSpace(e.getenv(key))
	if v == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func (e *env) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}
