// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisstore "github.com/taibuivan/artistly/internal/platform/redis"
)

func TestParseOptions(t *testing.T) {
	options, err := redisstore.ParseOptions("redis://:secret@cache:6380/2", 20)
	require.NoError(t, err)

	assert.Equal(t, "cache:6380", options.Addr)
	assert.Equal(t, "secret", options.Password)
	assert.Equal(t, 2, options.DB)
	assert.Equal(t, 20, options.PoolSize)
	assert.Equal(t, 4, options.MinIdleConns)
	assert.Equal(t, 10, options.MaxIdleConns)
}

func TestParseOptions_KeepsURLPoolSize(t *testing.T) {
	options, err := redisstore.ParseOptions("redis://cache:6379/0?pool_size=5", 0)
	require.NoError(t, err)

	assert.Equal(t, 5, options.PoolSize)
	assert.Equal(t, 1, options.MinIdleConns)
	assert.Equal(t, 2, options.MaxIdleConns)
}

func TestParseOptions_Invalid(t *testing.T) {
	_, err := redisstore.ParseOptions("http://cache:6379", 10)
	assert.Error(t, err)
}
