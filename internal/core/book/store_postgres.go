// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/locallibrary/internal/core/author"
	"github.com/taibuivan/locallibrary/internal/core/genre"
	"github.com/taibuivan/locallibrary/internal/platform/database/schema"
	"github.com/taibuivan/locallibrary/internal/platform/dberr"
	"github.com/taibuivan/locallibrary/internal/platform/postgres"
	"github.com/taibuivan/locallibrary/pkg/slice"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed book store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// genreRow is one element of the aggregated genre array.
type genreRow struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// bookSelect reads a book joined with its author; the genre array is aggregated
// in a correlated sub-query to avoid N+1 lookups.
var bookSelect = fmt.Sprintf(`
	SELECT
		b.%[1]s, b.%[2]s, b.%[3]s, b.%[4]s, b.%[5]s,
		a.%[6]s, a.%[7]s, a.%[8]s, a.%[9]s,
		COALESCE((
			SELECT json_agg(json_build_object('id', g.%[10]s, 'name', g.%[11]s) ORDER BY g.%[11]s)
			FROM %[12]s bg
			JOIN %[13]s g ON g.%[10]s = bg.%[14]s
			WHERE bg.%[15]s = b.%[1]s
		), '[]')
	FROM %[16]s b
	JOIN %[17]s a ON a.%[18]s = b.%[5]s
`,
	schema.Book.ID, schema.Book.Title, schema.Book.Summary, schema.Book.ISBN, schema.Book.AuthorID,
	schema.Author.FirstName, schema.Author.FamilyName, schema.Author.DateOfBirth, schema.Author.DateOfDeath,
	schema.Genre.ID, schema.Genre.Name,
	schema.BookGenre.Table, schema.Genre.Table, schema.BookGenre.GenreID, schema.BookGenre.BookID,
	schema.Book.Table, schema.Author.Table, schema.Author.ID,
)

func scanBook(row pgx.Row) (*Book, error) {
	b := &Book{Author: &author.Author{}}
	var genresJSON []byte

	err := row.Scan(
		&b.ID, &b.Title, &b.Summary, &b.ISBN, &b.AuthorID,
		&b.Author.FirstName, &b.Author.FamilyName, &b.Author.DateOfBirth, &b.Author.DateOfDeath,
		&genresJSON,
	)
	if err != nil {
		return nil, err
	}
	b.Author.ID = b.AuthorID

	var rows []genreRow
	if err := json.Unmarshal(genresJSON, &rows); err != nil {
		return nil, fmt.Errorf("decode genres: %w", err)
	}

	b.Genres = slice.Map(rows, func(row genreRow) *genre.Genre { return &genre.Genre{ID: row.ID, Name: row.Name} })
	b.GenreIDs = slice.Map(rows, func(row genreRow) string { return row.ID })

	return b, nil
}

func (repository *PostgresRepository) ListBooks(context context.Context) ([]*Book, error) {
	query := bookSelect + fmt.Sprintf(" ORDER BY b.%s ASC", schema.Book.Title)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_books")
	}
	defer rows.Close()

	books := []*Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_book")
		}
		books = append(books, b)
	}

	return books, dberr.Wrap(rows.Err(), "list_books")
}

func (repository *PostgresRepository) GetBook(context context.Context, id string) (*Book, error) {
	query := bookSelect + fmt.Sprintf(" WHERE b.%s = $1", schema.Book.ID)

	b, err := scanBook(repository.pool.QueryRow(context, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_book")
	}
	return b, nil
}

func (repository *PostgresRepository) ListCopies(context context.Context, bookID string) ([]*Copy, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.BookInstance.ID, schema.BookInstance.Imprint, schema.BookInstance.Status, schema.BookInstance.DueBack,
		schema.BookInstance.Table, schema.BookInstance.BookID, schema.BookInstance.DueBack,
	)

	rows, err := repository.pool.Query(context, query, bookID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_copies")
	}
	defer rows.Close()

	copies := []*Copy{}
	for rows.Next() {
		c := &Copy{}
		if err := rows.Scan(&c.ID, &c.Imprint, &c.Status, &c.DueBack); err != nil {
			return nil, dberr.Wrap(err, "scan_copy")
		}
		copies = append(copies, c)
	}

	return copies, dberr.Wrap(rows.Err(), "list_copies")
}

/*
CreateBook persists a new book and its genre links.

Description: Executes the insertion within a single transaction so that a
rejected genre link (unknown genre) leaves no book row behind.

Parameters:
  - context: context.Context
  - b: *Book (ID, fields, AuthorID and GenreIDs set)

Returns:
  - error: dberr.ErrReferenced when the author or a genre does not exist
*/
func (repository *PostgresRepository) CreateBook(context context.Context, b *Book) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5)`,
		schema.Book.Table,
		schema.Book.ID, schema.Book.Title, schema.Book.Summary, schema.Book.ISBN, schema.Book.AuthorID,
	)

	err := postgres.InTx(context, repository.pool, func(transaction pgx.Tx) error {
		if _, err := transaction.Exec(context, query, b.ID, b.Title, b.Summary, b.ISBN, b.AuthorID); err != nil {
			return err
		}
		return replaceGenres(context, transaction, b.ID, b.GenreIDs)
	})

	return dberr.Wrap(err, "create_book")
}

// UpdateBook replaces every field and the full genre set of an existing book.
func (repository *PostgresRepository) UpdateBook(context context.Context, b *Book) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
	`,
		schema.Book.Table,
		schema.Book.Title, schema.Book.Summary, schema.Book.ISBN, schema.Book.AuthorID, schema.Book.UpdatedAt,
		schema.Book.ID,
	)

	err := postgres.InTx(context, repository.pool, func(transaction pgx.Tx) error {
		cmd, err := transaction.Exec(context, query, b.ID, b.Title, b.Summary, b.ISBN, b.AuthorID)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return ErrBookNotFound
		}
		return replaceGenres(context, transaction, b.ID, b.GenreIDs)
	})

	if errors.Is(err, ErrBookNotFound) {
		return err
	}
	return dberr.Wrap(err, "update_book")
}

func (repository *PostgresRepository) DeleteBook(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Book.Table, schema.Book.ID)

	cmd, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_book")
	}

	if cmd.RowsAffected() == 0 {
		return ErrBookNotFound
	}
	return nil
}

// replaceGenres clears the book's genre links and inserts the given set in one batch.
func replaceGenres(context context.Context, transaction pgx.Tx, bookID string, genreIDs []string) error {
	deleteQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.BookGenre.Table, schema.BookGenre.BookID)
	if _, err := transaction.Exec(context, deleteQuery, bookID); err != nil {
		return err
	}

	if len(genreIDs) == 0 {
		return nil
	}

	insertQuery := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		schema.BookGenre.Table, schema.BookGenre.BookID, schema.BookGenre.GenreID,
	)
	batch := &pgx.Batch{}
	for _, genreID := range genreIDs {
		batch.Queue(insertQuery, bookID, genreID)
	}

	return transaction.SendBatch(context, batch).Close()
}
