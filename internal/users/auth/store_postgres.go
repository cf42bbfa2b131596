// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/storehub/internal/platform/database/schema"
	"github.com/taibuivan/storehub/internal/platform/sec"
)

// # Officer Repository

// PostgresOfficerStore implements [OfficerStore] using pgx.
type PostgresOfficerStore struct {
	pool *pgxpool.Pool
}

// NewOfficerStore creates a PostgreSQL implementation of [OfficerStore].
func NewOfficerStore(pool *pgxpool.Pool) *PostgresOfficerStore {
	return &PostgresOfficerStore{pool: pool}
}

/*
FindActiveOfficer retrieves an active officer joined with its active function.

Description: The email comparison is case-insensitive on both sides so rows
written before normalization still match.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *OfficerRecord: Hydrated record
  - error: ErrRecordNotFound or database errors
*/
func (store *PostgresOfficerStore) FindActiveOfficer(context context.Context, email string) (*OfficerRecord, error) {
	officer, function := schema.Officer, schema.Function

	query := fmt.Sprintf(`
		SELECT o.%s, o.%s, o.%s, o.%s, o.%s, f.%s, f.%s, f.%s
		FROM %s o
		JOIN %s f ON f.%s = o.%s
		WHERE lower(o.%s) = $1 AND o.%s = TRUE AND f.%s = TRUE
		LIMIT 1`,
		officer.ID, officer.Name, officer.Email, officer.PasswordHash, officer.IsActive,
		function.Name, function.Role, function.IsActive,
		officer.Table,
		function.Table, function.ID, officer.FunctionID,
		officer.Email, officer.IsActive, function.IsActive,
	)

	record := &OfficerRecord{}
	var role string
	err := store.pool.QueryRow(context, query, email).Scan(
		&record.ID,
		&record.Name,
		&record.Email,
		&record.PasswordHash,
		&record.IsActive,
		&record.FunctionName,
		&role,
		&record.FunctionActive,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("postgres_officer_find_failed: %w", err)
	}

	record.FunctionRole = sec.RoleTag(role)
	return record, nil
}

/*
TouchOfficerLogin stamps last_login_at for the officer.

Parameters:
  - context: context.Context
  - id: int64
  - at: time.Time

Returns:
  - error: Database errors
*/
func (store *PostgresOfficerStore) TouchOfficerLogin(context context.Context, id int64, at time.Time) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.Officer.Table, schema.Officer.LastLoginAt, schema.Officer.ID,
	)

	if _, err := store.pool.Exec(context, query, id, at); err != nil {
		return fmt.Errorf("postgres_officer_touch_failed: %w", err)
	}

	return nil
}

// # User Repository

// PostgresUserStore implements [UserStore] using pgx.
type PostgresUserStore struct {
	pool *pgxpool.Pool
}

// NewUserStore creates a PostgreSQL implementation of [UserStore].
func NewUserStore(pool *pgxpool.Pool) *PostgresUserStore {
	return &PostgresUserStore{pool: pool}
}

/*
FindUser retrieves a customer by email regardless of account state.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *UserRecord: Hydrated record
  - error: ErrRecordNotFound or database errors
*/
func (store *PostgresUserStore) FindUser(context context.Context, email string) (*UserRecord, error) {
	user := schema.User

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE lower(%s) = $1
		LIMIT 1`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Status, user.Verified, user.Role,
		user.Table,
		user.Email,
	)

	record := &UserRecord{}
	err := store.pool.QueryRow(context, query, email).Scan(
		&record.ID,
		&record.Name,
		&record.Email,
		&record.PasswordHash,
		&record.Status,
		&record.Verified,
		&record.Role,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("postgres_user_find_failed: %w", err)
	}

	return record, nil
}

/*
TouchUserLogin stamps last_login_at for the customer.

Parameters:
  - context: context.Context
  - id: int64
  - at: time.Time

Returns:
  - error: Database errors
*/
func (store *PostgresUserStore) TouchUserLogin(context context.Context, id int64, at time.Time) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.User.Table, schema.User.LastLoginAt, schema.User.ID,
	)

	if _, err := store.pool.Exec(context, query, id, at); err != nil {
		return fmt.Errorf("postgres_user_touch_failed: %w", err)
	}

	return nil
}
