// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/locallibrary/internal/platform/database/schema"
	"github.com/taibuivan/locallibrary/internal/platform/dberr"
)

// insertOrFetchAttempts bounds the retries of [PostgresRepository.CreateOrGetGenre].
const insertOrFetchAttempts = 3

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed genre store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListGenres(context context.Context) ([]*Genre, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.Genre.ID, schema.Genre.Name, schema.Genre.Table, schema.Genre.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_genres")
	}
	defer rows.Close()

	genres := []*Genre{}
	for rows.Next() {
		g := &Genre{}
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_genre")
		}
		genres = append(genres, g)
	}

	return genres, dberr.Wrap(rows.Err(), "list_genres")
}

func (repository *PostgresRepository) GetGenre(context context.Context, id string) (*Genre, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`,
		schema.Genre.ID, schema.Genre.Name, schema.Genre.Table, schema.Genre.ID,
	)

	g := &Genre{}
	err := repository.db.QueryRow(context, query, id).Scan(&g.ID, &g.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrGenreNotFound
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_genre")
	}
	return g, nil
}

func (repository *PostgresRepository) ListBooksByGenre(context context.Context, genreID string) ([]*BookSummary, error) {
	query := fmt.Sprintf(`
		SELECT b.%s, b.%s, b.%s
		FROM %s b
		JOIN %s bg ON bg.%s = b.%s
		WHERE bg.%s = $1
		ORDER BY b.%s ASC
	`,
		schema.Book.ID, schema.Book.Title, schema.Book.Summary,
		schema.Book.Table,
		schema.BookGenre.Table, schema.BookGenre.BookID, schema.Book.ID,
		schema.BookGenre.GenreID,
		schema.Book.Title,
	)

	rows, err := repository.db.Query(context, query, genreID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_books_by_genre")
	}
	defer rows.Close()

	books := []*BookSummary{}
	for rows.Next() {
		b := &BookSummary{}
		if err := rows.Scan(&b.ID, &b.Title, &b.Summary); err != nil {
			return nil, dberr.Wrap(err, "scan_book_summary")
		}
		books = append(books, b)
	}

	return books, dberr.Wrap(rows.Err(), "list_books_by_genre")
}

/*
CreateOrGetGenre inserts a genre or returns the one that already has its name.

Description: A single statement attempts the insert and, when the unique index
on name rejects it, selects the existing row. A concurrent insert that commits
while this statement waits is invisible to the statement's snapshot, so an
empty result is retried with a fresh statement.

Parameters:
  - context: context.Context
  - g: *Genre (ID and Name set; overwritten with the stored row)

Returns:
  - bool: true when a new row was inserted
  - error: Database execution errors
*/
func (repository *PostgresRepository) CreateOrGetGenre(context context.Context, g *Genre) (bool, error) {
	query := fmt.Sprintf(`
		WITH inserted AS (
			INSERT INTO %[1]s (%[2]s, %[3]s) VALUES ($1, $2)
			ON CONFLICT (%[3]s) DO NOTHING
			RETURNING %[2]s, %[3]s
		)
		SELECT %[2]s, %[3]s, TRUE FROM inserted
		UNION ALL
		SELECT %[2]s, %[3]s, FALSE FROM %[1]s WHERE %[3]s = $2
		LIMIT 1
	`, schema.Genre.Table, schema.Genre.ID, schema.Genre.Name)

	for range insertOrFetchAttempts {
		var created bool
		err := repository.db.QueryRow(context, query, g.ID, g.Name).Scan(&g.ID, &g.Name, &created)
		if errors.Is(err, pgx.ErrNoRows) {
			continue
		}
		if err != nil {
			return false, dberr.Wrap(err, "create_genre")
		}
		return created, nil
	}

	return false, dberr.Wrap(fmt.Errorf("genre %q neither inserted nor found", g.Name), "create_genre")
}

func (repository *PostgresRepository) UpdateGenre(context context.Context, g *Genre) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		schema.Genre.Table, schema.Genre.Name, schema.Genre.UpdatedAt, schema.Genre.ID,
	)

	cmd, err := repository.db.Exec(context, query, g.ID, g.Name)
	if err != nil {
		return dberr.Wrap(err, "update_genre")
	}

	if cmd.RowsAffected() == 0 {
		return ErrGenreNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteGenre(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Genre.Table, schema.Genre.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_genre")
	}

	if cmd.RowsAffected() == 0 {
		return ErrGenreNotFound
	}
	return nil
}
