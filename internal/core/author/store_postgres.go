// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/locallibrary/internal/platform/database/schema"
	"github.com/taibuivan/locallibrary/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed author store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var authorColumns = fmt.Sprintf("%s, %s, %s, %s, %s",
	schema.Author.ID, schema.Author.FirstName, schema.Author.FamilyName,
	schema.Author.DateOfBirth, schema.Author.DateOfDeath,
)

func scanAuthor(row pgx.Row) (*Author, error) {
	a := &Author{}
	if err := row.Scan(&a.ID, &a.FirstName, &a.FamilyName, &a.DateOfBirth, &a.DateOfDeath); err != nil {
		return nil, err
	}
	return a, nil
}

func (repository *PostgresRepository) ListAuthors(context context.Context) ([]*Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC, %s ASC`,
		authorColumns, schema.Author.Table, schema.Author.FamilyName, schema.Author.FirstName,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_authors")
	}
	defer rows.Close()

	authors := []*Author{}
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_author")
		}
		authors = append(authors, a)
	}

	return authors, dberr.Wrap(rows.Err(), "list_authors")
}

func (repository *PostgresRepository) GetAuthor(context context.Context, id string) (*Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		authorColumns, schema.Author.Table, schema.Author.ID,
	)

	a, err := scanAuthor(repository.db.QueryRow(context, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAuthorNotFound
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_author")
	}
	return a, nil
}

func (repository *PostgresRepository) ListBooksByAuthor(context context.Context, authorID string) ([]*BookSummary, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.Book.ID, schema.Book.Title, schema.Book.Summary,
		schema.Book.Table, schema.Book.AuthorID, schema.Book.Title,
	)

	rows, err := repository.db.Query(context, query, authorID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_books_by_author")
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

	return books, dberr.Wrap(rows.Err(), "list_books_by_author")
}

func (repository *PostgresRepository) CreateAuthor(context context.Context, a *Author) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5)`,
		schema.Author.Table, authorColumns,
	)

	_, err := repository.db.Exec(context, query, a.ID, a.FirstName, a.FamilyName, a.DateOfBirth, a.DateOfDeath)
	return dberr.Wrap(err, "create_author")
}

func (repository *PostgresRepository) UpdateAuthor(context context.Context, a *Author) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
	`,
		schema.Author.Table,
		schema.Author.FirstName, schema.Author.FamilyName, schema.Author.DateOfBirth,
		schema.Author.DateOfDeath, schema.Author.UpdatedAt,
		schema.Author.ID,
	)

	cmd, err := repository.db.Exec(context, query, a.ID, a.FirstName, a.FamilyName, a.DateOfBirth, a.DateOfDeath)
	if err != nil {
		return dberr.Wrap(err, "update_author")
	}

	if cmd.RowsAffected() == 0 {
		return ErrAuthorNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteAuthor(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Author.Table, schema.Author.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_author")
	}

	if cmd.RowsAffected() == 0 {
		return ErrAuthorNotFound
	}
	return nil
}
