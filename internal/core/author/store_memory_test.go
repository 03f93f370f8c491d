// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/taibuivan/locallibrary/internal/platform/dberr"
)

// memoryRepository is an in-memory [Repository] that mimics the PostgreSQL constraints.
type memoryRepository struct {
	mu      sync.Mutex
	authors map[string]Author
	books   map[string][]*BookSummary
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		authors: make(map[string]Author),
		books:   make(map[string][]*BookSummary),
	}
}

func (repository *memoryRepository) addBook(authorID string, book *BookSummary) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	repository.books[authorID] = append(repository.books[authorID], book)
}

func (repository *memoryRepository) ListAuthors(context.Context) ([]*Author, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	authors := make([]*Author, 0, len(repository.authors))
	for _, a := range repository.authors {
		authors = append(authors, &a)
	}
	slices.SortFunc(authors, func(a, b *Author) int {
		if c := strings.Compare(a.FamilyName, b.FamilyName); c != 0 {
			return c
		}
		return strings.Compare(a.FirstName, b.FirstName)
	})
	return authors, nil
}

func (repository *memoryRepository) GetAuthor(_ context.Context, id string) (*Author, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	a, ok := repository.authors[id]
	if !ok {
		return nil, ErrAuthorNotFound
	}
	return &a, nil
}

func (repository *memoryRepository) ListBooksByAuthor(_ context.Context, authorID string) ([]*BookSummary, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return slices.Clone(repository.books[authorID]), nil
}

func (repository *memoryRepository) CreateAuthor(_ context.Context, a *Author) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	repository.authors[a.ID] = *a
	return nil
}

func (repository *memoryRepository) UpdateAuthor(_ context.Context, a *Author) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.authors[a.ID]; !ok {
		return ErrAuthorNotFound
	}
	repository.authors[a.ID] = *a
	return nil
}

func (repository *memoryRepository) DeleteAuthor(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.authors[id]; !ok {
		return ErrAuthorNotFound
	}
	if len(repository.books[id]) > 0 {
		return dberr.ErrReferenced
	}
	delete(repository.authors, id)
	return nil
}
