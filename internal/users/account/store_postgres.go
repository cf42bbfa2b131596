// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/storehub/internal/platform/database/schema"
	"github.com/taibuivan/storehub/internal/platform/dberr"
	"github.com/taibuivan/storehub/internal/users/auth"
)

// PostgresRepository implements [AccountRepository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a PostgreSQL implementation of [AccountRepository].
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// returningColumns is the column list scanned by [scanAccount].
func returningColumns() string {
	user := schema.User
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s",
		user.ID, user.Name, user.Email, user.Status, user.Verified, user.Role, user.CreatedAt,
	)
}

/*
Create inserts a customer row.

Description: The unique index on lower(email) turns duplicates into a
UniqueViolation, which dberr maps to a 409 Conflict.

Parameters:
  - context: context.Context
  - account: NewAccount

Returns:
  - *Account: Stored row
  - error: apperr.Conflict or wrapped database errors
*/
func (repository *PostgresRepository) Create(context context.Context, account NewAccount) (*Account, error) {
	user := schema.User

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, FALSE, $5)
		RETURNING %s`,
		user.Table, user.Name, user.Email, user.PasswordHash, user.Status, user.Verified, user.Role,
		returningColumns(),
	)

	created := &Account{}
	err := repository.pool.QueryRow(context, query,
		account.Name, account.Email, account.PasswordHash, account.Status, account.Role,
	).Scan(
		&created.ID, &created.Name, &created.Email, &created.Status,
		&created.Verified, &created.Role, &created.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "create_account")
	}

	return created, nil
}

/*
Activate flips the account to verified and active.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *Account: Updated row
  - error: dberr.ErrNotFound or wrapped database errors
*/
func (repository *PostgresRepository) Activate(context context.Context, id int64) (*Account, error) {
	user := schema.User

	query := fmt.Sprintf(`
		UPDATE %s SET %s = TRUE, %s = $2
		WHERE %s = $1
		RETURNING %s`,
		user.Table, user.Verified, user.Status,
		user.ID,
		returningColumns(),
	)

	updated := &Account{}
	err := repository.pool.QueryRow(context, query, id, auth.StatusActive).Scan(
		&updated.ID, &updated.Name, &updated.Email, &updated.Status,
		&updated.Verified, &updated.Role, &updated.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "activate_account")
	}

	return updated, nil
}

/*
FindUnverified looks up an unconfirmed customer by email.

Description: Deactivated rows are excluded so a resent link cannot reopen
them through [PostgresRepository.Activate].

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *Account: Matching row
  - error: dberr.ErrNotFound or wrapped database errors
*/
func (repository *PostgresRepository) FindUnverified(context context.Context, email string) (*Account, error) {
	user := schema.User

	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE lower(%s) = $1 AND %s = FALSE AND %s IN ($2, $3)`,
		returningColumns(), user.Table,
		user.Email, user.Verified, user.Status,
	)

	found := &Account{}
	err := repository.pool.QueryRow(context, query, email, auth.StatusPending, auth.StatusActive).Scan(
		&found.ID, &found.Name, &found.Email, &found.Status,
		&found.Verified, &found.Role, &found.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_unverified_account")
	}

	return found, nil
}
