// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrateURL(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{"postgres", "postgres://u:p@db:5432/storehub", "pgx5://u:p@db:5432/storehub?x-migrations-table=storehub_schema_migrations"},
		{"postgresql_with_query", "postgresql://u:p@db/storehub?sslmode=disable", "pgx5://u:p@db/storehub?sslmode=disable&x-migrations-table=storehub_schema_migrations"},
		{"already_pgx5", "pgx5://u:p@db/storehub", "pgx5://u:p@db/storehub?x-migrations-table=storehub_schema_migrations"},
		{"explicit_table", "postgres://u:p@db/storehub?x-migrations-table=custom", "pgx5://u:p@db/storehub?x-migrations-table=custom"},
		{"keyword_dsn", "host=db user=u", "host=db user=u"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, migrateURL(tt.dsn))
		})
	}
}
