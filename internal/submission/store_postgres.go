// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package submission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/artistly/internal/catalog"
	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/database/schema"
	"github.com/taibuivan/artistly/internal/platform/dberr"
	"github.com/taibuivan/artistly/internal/platform/postgres"
	"github.com/taibuivan/artistly/pkg/slice"
)

// PostgresRepository implements [Repository] using a pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository returns a fully wired postgres implementation.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var insertQuery = fmt.Sprintf(`
	INSERT INTO %s (%s)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
	schema.IntakeSubmission.Table, schema.List(schema.IntakeSubmission.Columns()),
)

/*
Create inserts a new application.

Returns:
  - error: CONFLICT on a duplicate ID, or execution errors
*/
func (repository *PostgresRepository) Create(context context.Context, sub *Submission) error {
	_, err := repository.pool.Exec(context, insertQuery, insertArgs(sub)...)
	if err != nil {
		return dberr.Wrap(err, "create_submission")
	}
	return nil
}

/*
List retrieves applications, newest first.

Parameters:
  - context: context.Context
  - filter: Filter (zero value lists everything)

Returns:
  - []Submission: Matching rows
  - error: Database execution or scanning errors
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter) ([]Submission, error) {
	table := schema.IntakeSubmission
	query := fmt.Sprintf(`SELECT %s FROM %s`, schema.List(table.Columns()), table.Table)

	var args []any
	if filter.Status != "" {
		query += fmt.Sprintf(` WHERE %s = $1`, table.Status)
		args = append(args, string(filter.Status))
	}
	query += fmt.Sprintf(` ORDER BY %s DESC, %s ASC`, table.SubmittedAt, table.ID)

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_submissions")
	}
	defer rows.Close()

	submissions := make([]Submission, 0)
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_submission")
		}
		submissions = append(submissions, *sub)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_submissions")
	}

	return submissions, nil
}

// Get fetches one application by identifier.
func (repository *PostgresRepository) Get(context context.Context, id string) (*Submission, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.List(schema.IntakeSubmission.Columns()),
		schema.IntakeSubmission.Table,
		schema.IntakeSubmission.ID,
	)

	sub, err := scanSubmission(repository.pool.QueryRow(context, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("Submission")
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_submission")
	}
	return sub, nil
}

/*
Review resolves a pending application inside a transaction.

Description: The row is locked with SELECT ... FOR UPDATE so two concurrent
reviews cannot both see it pending; the second one gets a CONFLICT.

Returns:
  - *Submission: The updated row
  - error: NOT_FOUND, CONFLICT (already resolved), VALIDATION_ERROR (bad decision)
*/
func (repository *PostgresRepository) Review(context context.Context, id string, decision Decision, at time.Time) (*Submission, error) {
	table := schema.IntakeSubmission
	selectQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 FOR UPDATE`,
		schema.List(table.Columns()), table.Table, table.ID,
	)
	updateQuery := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3 WHERE %s = $1`,
		table.Table, table.Status, table.ReviewedAt, table.ID,
	)

	var reviewed *Submission
	err := postgres.InTx(context, repository.pool, func(tx pgx.Tx) error {
		sub, err := scanSubmission(tx.QueryRow(context, selectQuery, id))
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("Submission")
		}
		if err != nil {
			return dberr.Wrap(err, "lock_submission")
		}

		if err := sub.Resolve(decision, at); err != nil {
			return err
		}

		if _, err := tx.Exec(context, updateQuery, sub.ID, string(sub.Status), sub.ReviewedAt); err != nil {
			return dberr.Wrap(err, "review_submission")
		}
		reviewed = sub
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reviewed, nil
}

/*
Seed inserts demo applications that are not stored yet.

Description: Like the catalog seed, existing rows are never overwritten.
*/
func (repository *PostgresRepository) Seed(context context.Context, submissions []Submission) error {
	query := insertQuery + fmt.Sprintf(` ON CONFLICT (%s) DO NOTHING`, schema.IntakeSubmission.ID)

	return postgres.InTx(context, repository.pool, func(tx pgx.Tx) error {
		for i := range submissions {
			if _, err := tx.Exec(context, query, insertArgs(&submissions[i])...); err != nil {
				return dberr.Wrap(err, "seed_submission")
			}
		}
		return nil
	})
}

// # Scanning

func insertArgs(sub *Submission) []any {
	return []any{
		sub.ID,
		sub.Name,
		sub.Email,
		sub.Phone,
		catalog.CategoryStrings(sub.Categories),
		string(sub.Location),
		string(sub.PriceRange),
		catalog.LanguageStrings(sub.Languages),
		sub.Bio,
		sub.ImageURL,
		string(sub.Experience),
		sub.Portfolio,
		sub.Rating,
		sub.ReviewCount,
		sub.Verified,
		string(sub.Status),
		sub.SubmittedAt,
		sub.ReviewedAt,
	}
}

func scanSubmission(row pgx.Row) (*Submission, error) {
	var (
		sub        Submission
		categories []string
		languages  []string
		location   string
		priceRange string
		experience string
		status     string
	)

	err := row.Scan(
		&sub.ID,
		&sub.Name,
		&sub.Email,
		&sub.Phone,
		&categories,
		&location,
		&priceRange,
		&languages,
		&sub.Bio,
		&sub.ImageURL,
		&experience,
		&sub.Portfolio,
		&sub.Rating,
		&sub.ReviewCount,
		&sub.Verified,
		&status,
		&sub.SubmittedAt,
		&sub.ReviewedAt,
	)
	if err != nil {
		return nil, err
	}

	sub.Categories = slice.Map(categories, func(c string) catalog.Category { return catalog.Category(c) })
	sub.Languages = slice.Map(languages, func(l string) catalog.Language { return catalog.Language(l) })
	sub.Location = catalog.Location(location)
	sub.PriceRange = catalog.PriceBracket(priceRange)
	sub.Experience = catalog.Experience(experience)
	sub.Status = Status(status)
	return &sub, nil
}
