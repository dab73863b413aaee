// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artistly/internal/platform/postgres"
)

func TestParseConfig(t *testing.T) {
	poolConfig, err := postgres.ParseConfig("postgres://artistly:secret@db:5432/artistly", postgres.Options{
		MaxConns:         8,
		StatementTimeout: 30 * time.Second,
		ApplicationName:  "artistly-api",
	})
	require.NoError(t, err)

	assert.EqualValues(t, 8, poolConfig.MaxConns)
	assert.EqualValues(t, 2, poolConfig.MinConns)
	assert.Equal(t, "db", poolConfig.ConnConfig.Host)
	assert.Equal(t, "artistly", poolConfig.ConnConfig.Database)
	assert.Equal(t, "30000", poolConfig.ConnConfig.RuntimeParams["statement_timeout"])
	assert.Equal(t, "artistly-api", poolConfig.ConnConfig.RuntimeParams["application_name"])
}

func TestParseConfig_Defaults(t *testing.T) {
	poolConfig, err := postgres.ParseConfig("postgres://db/artistly?pool_max_conns=1", postgres.Options{})
	require.NoError(t, err)

	assert.EqualValues(t, 1, poolConfig.MaxConns)
	assert.EqualValues(t, 1, poolConfig.MinConns)
	assert.NotContains(t, poolConfig.ConnConfig.RuntimeParams, "statement_timeout")
}

func TestParseConfig_InvalidDSN(t *testing.T) {
	_, err := postgres.ParseConfig("postgres://db:notaport/artistly", postgres.Options{})
	assert.Error(t, err)
}
