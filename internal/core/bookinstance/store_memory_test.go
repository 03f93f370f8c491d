// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bookinstance

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/taibuivan/locallibrary/internal/core/book"
	"github.com/taibuivan/locallibrary/internal/platform/dberr"
)

// memoryRepository is an in-memory [Repository] that checks the book
// reference and doubles as the [BookLister].
type memoryRepository struct {
	mu        sync.Mutex
	instances map[string]BookInstance
	books     map[string]*book.Book
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		instances: make(map[string]BookInstance),
		books:     make(map[string]*book.Book),
	}
}

func (repository *memoryRepository) ListBooks(context.Context) ([]*book.Book, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	books := make([]*book.Book, 0, len(repository.books))
	for _, b := range repository.books {
		books = append(books, b)
	}
	slices.SortFunc(books, func(a, b *book.Book) int { return strings.Compare(a.Title, b.Title) })
	return books, nil
}

func (repository *memoryRepository) withTitle(i BookInstance) *BookInstance {
	i.BookTitle = repository.books[i.BookID].Title
	return &i
}

func (repository *memoryRepository) ListInstances(context.Context) ([]*BookInstance, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	instances := make([]*BookInstance, 0, len(repository.instances))
	for _, i := range repository.instances {
		instances = append(instances, repository.withTitle(i))
	}
	slices.SortFunc(instances, func(a, b *BookInstance) int {
		if c := strings.Compare(a.BookTitle, b.BookTitle); c != 0 {
			return c
		}
		return a.DueBack.Compare(b.DueBack)
	})
	return instances, nil
}

func (repository *memoryRepository) GetInstance(_ context.Context, id string) (*BookInstance, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	i, ok := repository.instances[id]
	if !ok {
		return nil, ErrInstanceNotFound
	}
	return repository.withTitle(i), nil
}

func (repository *memoryRepository) CreateInstance(_ context.Context, i *BookInstance) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.books[i.BookID]; !ok {
		return dberr.ErrReferenced
	}
	repository.instances[i.ID] = *i
	return nil
}

func (repository *memoryRepository) UpdateInstance(_ context.Context, i *BookInstance) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.instances[i.ID]; !ok {
		return ErrInstanceNotFound
	}
	if _, ok := repository.books[i.BookID]; !ok {
		return dberr.ErrReferenced
	}
	repository.instances[i.ID] = *i
	return nil
}

func (repository *memoryRepository) DeleteInstance(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.instances[id]; !ok {
		return ErrInstanceNotFound
	}
	delete(repository.instances, id)
	return nil
}
