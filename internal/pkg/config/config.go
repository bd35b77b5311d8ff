package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Storage drivers.
const (
	DriverMemory = "memory"
	DriverMongo  = "mongo"
	DriverRedis  = "redis"
)

// devJWTSecret signs tokens outside production when JWT_SECRET is unset.
const devJWTSecret = "rentwise-dev-secret"

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	SessionTTL        time.Duration `env:"SESSION_TTL,         default=24h"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`

	// StoreDriver selects where properties, tenants and payments live.
	StoreDriver string `env:"STORE_DRIVER,   default=memory"`
	// SessionDriver selects where sessions, receipts and notifications live.
	SessionDriver string `env:"SESSION_DRIVER, default=memory"`
	SeedData      bool   `env:"SEED_DATA,      default=true"`

	Payment PaymentConfig
	Mongo   MongoConfig
	Redis   RedisConfig

	OwnersURL     string `env:"OWNERS_URL"`
	NotifyWorkers int    `env:"NOTIFY_WORKERS, default=4"`
}

type PaymentConfig struct {
	Delay   time.Duration `env:"PAYMENT_DELAY,   default=2s"`
	Timeout time.Duration `env:"PAYMENT_TIMEOUT, default=10s"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=rentwise"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// IsProduction reports whether ENV is production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads a .env file when present, then the environment, using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: reading .env: %w", err)
	}
	return process(ctx, envconfig.OsLookuper())
}

func process(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case DriverMemory, DriverMongo:
	default:
		return fmt.Errorf("config: STORE_DRIVER must be %q or %q, got %q", DriverMemory, DriverMongo, c.StoreDriver)
	}
	switch c.SessionDriver {
	case DriverMemory, DriverRedis:
	default:
		return fmt.Errorf("config: SESSION_DRIVER must be %q or %q, got %q", DriverMemory, DriverRedis, c.SessionDriver)
	}
	if c.JWTSecret == "" {
		if c.IsProduction() {
			return errors.New("config: JWT_SECRET is required in production")
		}
		c.JWTSecret = devJWTSecret
	}
	if c.Payment.Timeout <= 0 {
		return errors.New("config: PAYMENT_TIMEOUT must be positive")
	}
	return nil
}
