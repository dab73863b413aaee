// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package redis provides a managed client for volatile data storage.

Artistly keeps two kinds of TTL-bound records here: login sessions and
onboarding wizard drafts. Both are JSON documents under a namespaced key (see
[constants.RedisPrefixSession] and [constants.RedisPrefixDraft]).
*/
package redis

import (
	stdctx "context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	dialTimeout  = 3 * time.Second
	readTimeout  = 2 * time.Second
	writeTimeout = 2 * time.Second
	pingTimeout  = 2 * time.Second
)

// ErrMissing is returned by [GetJSON] when the key does not exist or has expired.
var ErrMissing = errors.New("redis: key missing")

// ParseOptions builds client options from a redis:// URL without dialing.
// poolSize overrides the URL's pool_size when positive.
func ParseOptions(redisURL string, poolSize int) (*redis.Options, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	if poolSize > 0 {
		options.PoolSize = poolSize
	}
	options.MinIdleConns = max(1, options.PoolSize/5)
	options.MaxIdleConns = max(options.MinIdleConns, options.PoolSize/2)

	options.DialTimeout = dialTimeout
	options.ReadTimeout = readTimeout
	options.WriteTimeout = writeTimeout
	return options, nil
}

// NewClient connects to redisURL and pings it once.
func NewClient(context stdctx.Context, redisURL string, poolSize int, logger *slog.Logger) (*redis.Client, error) {
	options, err := ParseOptions(redisURL, poolSize)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(options)
	if err := Ping(context, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis_client_connected",
		slog.String("addr", options.Addr),
		slog.Int("db", options.DB),
		slog.Int("pool_size", options.PoolSize),
	)
	return client, nil
}

// Ping checks the client within a short deadline. It backs the /ready probe.
func Ping(context stdctx.Context, client *redis.Client) error {
	pingCtx, cancel := stdctx.WithTimeout(context, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}

	return nil
}

// SetJSON stores value as a JSON document under key with the given TTL.
func SetJSON(context stdctx.Context, client *redis.Client, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redis: encode %s: %w", key, err)
	}
	if err := client.Set(context, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis: set %s: %w", key, err)
	}
	return nil
}

// GetJSON loads the JSON document under key into target.
//
// A document that no longer decodes is deleted and reported as [ErrMissing],
// so a corrupt entry behaves like an absent one.
func GetJSON(context stdctx.Context, client *redis.Client, key string, target any) error {
	payload, err := client.Get(context, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrMissing
		}
		return fmt.Errorf("redis: get %s: %w", key, err)
	}

	if err := json.Unmarshal(payload, target); err != nil {
		_ = client.Del(context, key).Err()
		return ErrMissing
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func Delete(context stdctx.Context, client *redis.Client, key string) error {
	if err := client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis: delete %s: %w", key, err)
	}
	return nil
}
