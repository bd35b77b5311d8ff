// Package redis holds the Redis-backed session, receipt and inbox stores.
package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultDialTimeout = 5 * time.Second
	keyPrefix          = "rentwise"
)

// Config holds the connection settings for the session backend.
type Config struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
}

// Connect opens a client and fails fast when the server does not answer a
// ping within DialTimeout.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = defaultDialTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// key builds a namespaced key, e.g. key("session", id) -> rentwise:session:<id>.
func key(kind string, parts ...string) string {
	return keyPrefix + ":" + kind + ":" + strings.Join(parts, ":")
}
