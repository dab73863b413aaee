// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/artistly/internal/platform/migration"
)

func TestMigrateURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@db:5432/artistly", migration.MigrateURL("postgres://u:p@db:5432/artistly"))
	assert.Equal(t, "pgx5://db/artistly", migration.MigrateURL("postgresql://db/artistly"))
	assert.Equal(t, "pgx5://db/artistly", migration.MigrateURL("pgx5://db/artistly"))
	assert.Equal(t, "host=db dbname=artistly", migration.MigrateURL("host=db dbname=artistly"))
}
