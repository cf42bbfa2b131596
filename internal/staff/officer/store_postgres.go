// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package officer

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/storehub/internal/platform/database/schema"
	"github.com/taibuivan/storehub/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListFunctions(context context.Context) ([]*Function, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.Function.ID, schema.Function.Name, schema.Function.Role, schema.Function.IsActive,
		schema.Function.Table, schema.Function.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_functions")
	}
	defer rows.Close()

	var functions []*Function
	for rows.Next() {
		f := &Function{}
		if err := rows.Scan(&f.ID, &f.Name, &f.Role, &f.IsActive); err != nil {
			return nil, dberr.Wrap(err, "scan_function")
		}
		functions = append(functions, f)
	}

	return functions, dberr.Wrap(rows.Err(), "iterate_functions")
}

func (repository *PostgresRepository) SetFunctionActive(context context.Context, id int64, active bool) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.Function.Table, schema.Function.IsActive, schema.Function.ID,
	)

	cmd, err := repository.db.Exec(context, query, id, active)
	if err != nil {
		return dberr.Wrap(err, "set_function_active")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) ListOfficers(context context.Context, limit, offset int) ([]*Officer, int, error) {
	o, f := schema.Officer, schema.Function

	query := fmt.Sprintf(`
		SELECT o.%s, o.%s, o.%s, o.%s, f.%s, f.%s, o.%s, o.%s, o.%s
		FROM %s o
		JOIN %s f ON f.%s = o.%s
		ORDER BY o.%s ASC
		LIMIT $1 OFFSET $2
	`,
		o.ID, o.Name, o.Email, o.FunctionID, f.Name, f.Role, o.IsActive, o.LastLoginAt, o.CreatedAt,
		o.Table,
		f.Table, f.ID, o.FunctionID,
		o.ID,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, o.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_officers")
	}

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_officers")
	}
	defer rows.Close()

	var officers []*Officer
	for rows.Next() {
		item := &Officer{}
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Email, &item.FunctionID, &item.FunctionName,
			&item.Role, &item.IsActive, &item.LastLoginAt, &item.CreatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_officer")
		}
		officers = append(officers, item)
	}

	return officers, total, dberr.Wrap(rows.Err(), "iterate_officers")
}

// CreateOfficer inserts the officer and fills in the generated columns and function details.
// A duplicate email maps to Conflict, an unknown function to a validation error.
func (repository *PostgresRepository) CreateOfficer(context context.Context, officer *Officer, passwordHash string) error {
	o, f := schema.Officer, schema.Function

	query := fmt.Sprintf(`
		WITH inserted AS (
			INSERT INTO %s (%s, %s, %s, %s, %s)
			VALUES ($1, $2, $3, $4, TRUE)
			RETURNING %s, %s, %s, %s
		)
		SELECT i.%s, i.%s, i.%s, f.%s, f.%s
		FROM inserted i
		JOIN %s f ON f.%s = i.%s
	`,
		o.Table, o.Name, o.Email, o.PasswordHash, o.FunctionID, o.IsActive,
		o.ID, o.IsActive, o.CreatedAt, o.FunctionID,
		o.ID, o.IsActive, o.CreatedAt, f.Name, f.Role,
		f.Table, f.ID, o.FunctionID,
	)

	err := repository.db.QueryRow(context, query, officer.Name, officer.Email, passwordHash, officer.FunctionID).Scan(
		&officer.ID, &officer.IsActive, &officer.CreatedAt, &officer.FunctionName, &officer.Role,
	)
	return dberr.Wrap(err, "create_officer")
}

func (repository *PostgresRepository) SetOfficerActive(context context.Context, id int64, active bool) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.Officer.Table, schema.Officer.IsActive, schema.Officer.ID,
	)

	cmd, err := repository.db.Exec(context, query, id, active)
	if err != nil {
		return dberr.Wrap(err, "set_officer_active")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
