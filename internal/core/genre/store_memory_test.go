// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/taibuivan/locallibrary/internal/platform/dberr"
)

// memoryRepository is an in-memory [Repository] with the unique-name and
// foreign-key behaviour of the PostgreSQL schema.
type memoryRepository struct {
	mu     sync.Mutex
	genres map[string]Genre
	books  map[string][]*BookSummary
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		genres: make(map[string]Genre),
		books:  make(map[string][]*BookSummary),
	}
}

func (repository *memoryRepository) fileBook(genreID string, book *BookSummary) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	repository.books[genreID] = append(repository.books[genreID], book)
}

func (repository *memoryRepository) byName(name string) (Genre, bool) {
	for _, g := range repository.genres {
		if g.Name == name {
			return g, true
		}
	}
	return Genre{}, false
}

func (repository *memoryRepository) ListGenres(context.Context) ([]*Genre, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	genres := make([]*Genre, 0, len(repository.genres))
	for _, g := range repository.genres {
		genres = append(genres, &g)
	}
	slices.SortFunc(genres, func(a, b *Genre) int { return strings.Compare(a.Name, b.Name) })
	return genres, nil
}

func (repository *memoryRepository) GetGenre(_ context.Context, id string) (*Genre, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	g, ok := repository.genres[id]
	if !ok {
		return nil, ErrGenreNotFound
	}
	return &g, nil
}

func (repository *memoryRepository) ListBooksByGenre(_ context.Context, genreID string) ([]*BookSummary, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return slices.Clone(repository.books[genreID]), nil
}

func (repository *memoryRepository) CreateOrGetGenre(_ context.Context, g *Genre) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if existing, ok := repository.byName(g.Name); ok {
		*g = existing
		return false, nil
	}
	repository.genres[g.ID] = *g
	return true, nil
}

func (repository *memoryRepository) UpdateGenre(_ context.Context, g *Genre) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.genres[g.ID]; !ok {
		return ErrGenreNotFound
	}
	if existing, ok := repository.byName(g.Name); ok && existing.ID != g.ID {
		return dberr.ErrDuplicate
	}
	repository.genres[g.ID] = *g
	return nil
}

func (repository *memoryRepository) DeleteGenre(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.genres[id]; !ok {
		return ErrGenreNotFound
	}
	if len(repository.books[id]) > 0 {
		return dberr.ErrReferenced
	}
	delete(repository.genres, id)
	return nil
}
