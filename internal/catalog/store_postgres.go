// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

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

/*
ListArtists retrieves the whole catalog in catalog order.

Returns:
  - []Artist: Every stored artist, ordered by position
  - error: Database execution or scanning errors
*/
func (repository *PostgresRepository) ListArtists(context context.Context) ([]Artist, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		schema.List(schema.CatalogArtist.Columns()),
		schema.CatalogArtist.Table,
		schema.CatalogArtist.Position,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_artists")
	}
	defer rows.Close()

	artists := make([]Artist, 0)
	for rows.Next() {
		artist, err := scanArtist(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_artist")
		}
		artists = append(artists, *artist)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_artists")
	}

	return artists, nil
}

/*
GetArtist fetches a single artist by identifier.

Returns:
  - *Artist: The hydrated record
  - error: NOT_FOUND or execution errors
*/
func (repository *PostgresRepository) GetArtist(context context.Context, id string) (*Artist, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.List(schema.CatalogArtist.Columns()),
		schema.CatalogArtist.Table,
		schema.CatalogArtist.ID,
	)

	artist, err := scanArtist(repository.pool.QueryRow(context, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("Artist")
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_artist")
	}
	return artist, nil
}

/*
Seed inserts artists that are not stored yet, in one transaction.

Description: Existing rows are left untouched (ON CONFLICT DO NOTHING) so a
restart never overwrites edits made directly in the database. The slice index
becomes the catalog position.

Parameters:
  - context: context.Context
  - artists: []Artist in catalog order

Returns:
  - error: Transaction or constraint failures
*/
func (repository *PostgresRepository) Seed(context context.Context, artists []Artist) error {
	table := schema.CatalogArtist
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (%s) DO NOTHING`,
		table.Table, table.Position, schema.List(table.Columns()), table.ID,
	)

	return postgres.InTx(context, repository.pool, func(tx pgx.Tx) error {
		for position, artist := range artists {
			_, err := tx.Exec(context, query,
				position,
				artist.ID,
				artist.Name,
				CategoryStrings(artist.Categories),
				string(artist.Location),
				string(artist.PriceRange),
				LanguageStrings(artist.Languages),
				artist.Bio,
				artist.ImageURL,
				artist.Rating,
				artist.ReviewCount,
				artist.Verified,
			)
			if err != nil {
				return dberr.Wrap(err, "seed_artist")
			}
		}
		return nil
	})
}

// # Scanning

func scanArtist(row pgx.Row) (*Artist, error) {
	var (
		artist     Artist
		categories []string
		languages  []string
		location   string
		priceRange string
	)

	err := row.Scan(
		&artist.ID,
		&artist.Name,
		&categories,
		&location,
		&priceRange,
		&languages,
		&artist.Bio,
		&artist.ImageURL,
		&artist.Rating,
		&artist.ReviewCount,
		&artist.Verified,
	)
	if err != nil {
		return nil, err
	}

	artist.Categories = slice.Map(categories, func(c string) Category { return Category(c) })
	artist.Languages = slice.Map(languages, func(l string) Language { return Language(l) })
	artist.Location = Location(location)
	artist.PriceRange = PriceBracket(priceRange)
	return &artist, nil
}

// CategoryStrings converts categories for a TEXT[] column. A nil input yields
// an empty, non-nil slice because the array columns are NOT NULL.
func CategoryStrings(categories []Category) []string {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		out = append(out, string(c))
	}
	return out
}

// LanguageStrings converts languages for a TEXT[] column, like [CategoryStrings].
func LanguageStrings(languages []Language) []string {
	out := make([]string, 0, len(languages))
	for _, l := range languages {
		out = append(out, string(l))
	}
	return out
}
