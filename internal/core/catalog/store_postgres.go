// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/locallibrary/internal/core/bookinstance"
	"github.com/taibuivan/locallibrary/internal/platform/database/schema"
	"github.com/taibuivan/locallibrary/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed counter.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) count(context context.Context, action, query string, args ...any) (int, error) {
	var n int
	if err := repository.db.QueryRow(context, query, args...).Scan(&n); err != nil {
		return 0, dberr.Wrap(err, action)
	}
	return n, nil
}

func (repository *PostgresRepository) CountBooks(context context.Context) (int, error) {
	return repository.count(context, "count_books", fmt.Sprintf("SELECT COUNT(*) FROM %s", schema.Book.Table))
}

func (repository *PostgresRepository) CountCopies(context context.Context) (int, error) {
	return repository.count(context, "count_copies", fmt.Sprintf("SELECT COUNT(*) FROM %s", schema.BookInstance.Table))
}

func (repository *PostgresRepository) CountAvailableCopies(context context.Context) (int, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = $1", schema.BookInstance.Table, schema.BookInstance.Status)
	return repository.count(context, "count_available_copies", query, bookinstance.StatusAvailable)
}

func (repository *PostgresRepository) CountAuthors(context context.Context) (int, error) {
	return repository.count(context, "count_authors", fmt.Sprintf("SELECT COUNT(*) FROM %s", schema.Author.Table))
}

func (repository *PostgresRepository) CountGenres(context context.Context) (int, error) {
	return repository.count(context, "count_genres", fmt.Sprintf("SELECT COUNT(*) FROM %s", schema.Genre.Table))
}
