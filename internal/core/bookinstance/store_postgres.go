// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bookinstance

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

// NewPostgresRepository constructs a PostgreSQL backed copy store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var instanceSelect = fmt.Sprintf(`
	SELECT i.%s, i.%s, i.%s, i.%s, i.%s, b.%s
	FROM %s i
	JOIN %s b ON b.%s = i.%s
`,
	schema.BookInstance.ID, schema.BookInstance.BookID, schema.BookInstance.Imprint,
	schema.BookInstance.Status, schema.BookInstance.DueBack, schema.Book.Title,
	schema.BookInstance.Table, schema.Book.Table, schema.Book.ID, schema.BookInstance.BookID,
)

func scanInstance(row pgx.Row) (*BookInstance, error) {
	i := &BookInstance{}
	if err := row.Scan(&i.ID, &i.BookID, &i.Imprint, &i.Status, &i.DueBack, &i.BookTitle); err != nil {
		return nil, err
	}
	return i, nil
}

func (repository *PostgresRepository) ListInstances(context context.Context) ([]*BookInstance, error) {
	query := instanceSelect + fmt.Sprintf(" ORDER BY b.%s ASC, i.%s ASC", schema.Book.Title, schema.BookInstance.DueBack)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_instances")
	}
	defer rows.Close()

	instances := []*BookInstance{}
	for rows.Next() {
		i, err := scanInstance(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_instance")
		}
		instances = append(instances, i)
	}

	return instances, dberr.Wrap(rows.Err(), "list_instances")
}

func (repository *PostgresRepository) GetInstance(context context.Context, id string) (*BookInstance, error) {
	query := instanceSelect + fmt.Sprintf(" WHERE i.%s = $1", schema.BookInstance.ID)

	i, err := scanInstance(repository.db.QueryRow(context, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrInstanceNotFound
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_instance")
	}
	return i, nil
}

func (repository *PostgresRepository) CreateInstance(context context.Context, i *BookInstance) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5)`,
		schema.BookInstance.Table,
		schema.BookInstance.ID, schema.BookInstance.BookID, schema.BookInstance.Imprint,
		schema.BookInstance.Status, schema.BookInstance.DueBack,
	)

	_, err := repository.db.Exec(context, query, i.ID, i.BookID, i.Imprint, i.Status, i.DueBack)
	return dberr.Wrap(err, "create_instance")
}

func (repository *PostgresRepository) UpdateInstance(context context.Context, i *BookInstance) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
	`,
		schema.BookInstance.Table,
		schema.BookInstance.BookID, schema.BookInstance.Imprint, schema.BookInstance.Status,
		schema.BookInstance.DueBack, schema.BookInstance.UpdatedAt,
		schema.BookInstance.ID,
	)

	cmd, err := repository.db.Exec(context, query, i.ID, i.BookID, i.Imprint, i.Status, i.DueBack)
	if err != nil {
		return dberr.Wrap(err, "update_instance")
	}

	if cmd.RowsAffected() == 0 {
		return ErrInstanceNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteInstance(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.BookInstance.Table, schema.BookInstance.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_instance")
	}

	if cmd.RowsAffected() == 0 {
		return ErrInstanceNotFound
	}
	return nil
}
