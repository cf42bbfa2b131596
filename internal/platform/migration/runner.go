// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migration applies the SQL files under data/migrations with
// golang-migrate before the API accepts traffic.
package migration

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// versionTable keeps StoreHub's migration history apart from other tenants of the database.
const versionTable = "storehub_schema_migrations"

/*
RunUp applies every pending migration.

A dirty version (a previous run failed half way) is reported and left for an
operator; nothing is forced.

Parameters:
  - dsn: postgres:// or postgresql:// URL (pgx5:// is accepted as is)
  - migrationsPath: directory holding NNNNNN_name.{up,down}.sql files
  - logger: *slog.Logger

Returns:
  - error: wrapped migrate failure, nil when already current
*/
func RunUp(dsn string, migrationsPath string, logger *slog.Logger) error {
	migrator, err := migrate.New("file://"+migrationsPath, migrateURL(dsn))
	if err != nil {
		return fmt.Errorf("migration_init_failed: %w", err)
	}
	defer func() {
		sourceErr, databaseErr := migrator.Close()
		if closeErr := errors.Join(sourceErr, databaseErr); closeErr != nil {
			logger.Warn("migration_close_failed", slog.Any("error", closeErr))
		}
	}()

	migrator.Log = &migrateLogger{logger: logger}

	from, dirty, err := migrator.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		from = 0
	case err != nil:
		return fmt.Errorf("migration_version_failed: %w", err)
	case dirty:
		return fmt.Errorf("migration_dirty: version %d needs manual repair", from)
	}

	err = migrator.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("migration_up_to_date", slog.Uint64("version", uint64(from)))
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration_up_failed: %w", err)
	}

	to, _, _ := migrator.Version()
	logger.Info("migration_applied",
		slog.Uint64("from_version", uint64(from)),
		slog.Uint64("to_version", uint64(to)),
	)
	return nil
}

// migrateURL rewrites a libpq URL to the pgx5 scheme and pins the version table.
func migrateURL(dsn string) string {
	url := dsn
	for _, prefix := range []string{"postgresql://", "postgres://"} {
		if rest, found := strings.CutPrefix(dsn, prefix); found {
			url = "pgx5://" + rest
			break
		}
	}

	if !strings.HasPrefix(url, "pgx5://") || strings.Contains(url, "x-migrations-table=") {
		return url
	}

	separator := "?"
	if strings.Contains(url, "?") {
		separator = "&"
	}
	return url + separator + "x-migrations-table=" + versionTable
}

// migrateLogger forwards golang-migrate output to slog at debug level.
type migrateLogger struct {
	logger *slog.Logger
}

func (l *migrateLogger) Printf(format string, args ...any) {
	l.logger.Debug("migration_progress", slog.String("detail", strings.TrimSpace(fmt.Sprintf(format, args...))))
}

func (l *migrateLogger) Verbose() bool {
	return false
}
