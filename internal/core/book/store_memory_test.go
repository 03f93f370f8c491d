// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/locallibrary/internal/core/author"
	"github.com/taibuivan/locallibrary/internal/core/genre"
	"github.com/taibuivan/locallibrary/internal/platform/dberr"
)

// memoryRepository is an in-memory [Repository] that enforces the book's
// foreign keys the way the PostgreSQL schema does.
type memoryRepository struct {
	mu      sync.Mutex
	books   map[string]Book
	copies  map[string][]*Copy
	authors map[string]*author.Author
	genres  map[string]*genre.Genre
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		books:   make(map[string]Book),
		copies:  make(map[string][]*Copy),
		authors: make(map[string]*author.Author),
		genres:  make(map[string]*genre.Genre),
	}
}

func (repository *memoryRepository) addCopy(bookID string, item *Copy) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	repository.copies[bookID] = append(repository.copies[bookID], item)
}

// ListAuthors and ListGenres let the repository stand in for the form choices.
func (repository *memoryRepository) ListAuthors(context.Context) ([]*author.Author, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	authors := make([]*author.Author, 0, len(repository.authors))
	for _, a := range repository.authors {
		authors = append(authors, a)
	}
	slices.SortFunc(authors, func(a, b *author.Author) int { return strings.Compare(a.FamilyName, b.FamilyName) })
	return authors, nil
}

func (repository *memoryRepository) ListGenres(context.Context) ([]*genre.Genre, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	genres := make([]*genre.Genre, 0, len(repository.genres))
	for _, g := range repository.genres {
		genres = append(genres, g)
	}
	slices.SortFunc(genres, func(a, b *genre.Genre) int { return strings.Compare(a.Name, b.Name) })
	return genres, nil
}

func (repository *memoryRepository) hydrate(b Book) *Book {
	b.Author = repository.authors[b.AuthorID]
	b.Genres = nil
	for _, id := range b.GenreIDs {
		b.Genres = append(b.Genres, repository.genres[id])
	}
	return &b
}

func (repository *memoryRepository) ListBooks(context.Context) ([]*Book, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	books := make([]*Book, 0, len(repository.books))
	for _, b := range repository.books {
		books = append(books, repository.hydrate(b))
	}
	slices.SortFunc(books, func(a, b *Book) int { return strings.Compare(a.Title, b.Title) })
	return books, nil
}

func (repository *memoryRepository) GetBook(_ context.Context, id string) (*Book, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	b, ok := repository.books[id]
	if !ok {
		return nil, ErrBookNotFound
	}
	return repository.hydrate(b), nil
}

func (repository *memoryRepository) ListCopies(_ context.Context, bookID string) ([]*Copy, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return slices.Clone(repository.copies[bookID]), nil
}

func (repository *memoryRepository) checkReferences(b *Book) error {
	if _, ok := repository.authors[b.AuthorID]; !ok {
		return foreignKey("book_author_id_fkey")
	}
	for _, id := range b.GenreIDs {
		if _, ok := repository.genres[id]; !ok {
			return foreignKey("book_genre_genre_id_fkey")
		}
	}
	return nil
}

func (repository *memoryRepository) CreateBook(_ context.Context, b *Book) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if err := repository.checkReferences(b); err != nil {
		return err
	}
	repository.books[b.ID] = *b
	return nil
}

func (repository *memoryRepository) UpdateBook(_ context.Context, b *Book) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.books[b.ID]; !ok {
		return ErrBookNotFound
	}
	if err := repository.checkReferences(b); err != nil {
		return err
	}
	repository.books[b.ID] = *b
	return nil
}

func (repository *memoryRepository) DeleteBook(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.books[id]; !ok {
		return ErrBookNotFound
	}
	if len(repository.copies[id]) > 0 {
		return dberr.ErrReferenced
	}
	delete(repository.books, id)
	return nil
}

func foreignKey(constraint string) error {
	return dberr.Wrap(fmt.Errorf("insert: %w", &pgconn.PgError{
		Code:           pgerrcode.ForeignKeyViolation,
		ConstraintName: constraint,
	}), "write_book")
}
