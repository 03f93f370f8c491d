// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

import "context"

// Repository persists genres.
type Repository interface {
	// ListGenres returns every genre ordered by name.
	ListGenres(context context.Context) ([]*Genre, error)
	GetGenre(context context.Context, id string) (*Genre, error)
	// ListBooksByGenre returns the books filed under the genre, ordered by title.
	ListBooksByGenre(context context.Context, genreID string) ([]*BookSummary, error)
	// CreateOrGetGenre inserts genre unless one with the same name exists, in which
	// case genre is overwritten with the stored row and created is false.
	CreateOrGetGenre(context context.Context, genre *Genre) (created bool, err error)
	// UpdateGenre fails with dberr.ErrDuplicate when the new name is taken.
	UpdateGenre(context context.Context, genre *Genre) error
	// DeleteGenre fails with dberr.ErrReferenced while any book is filed under the genre.
	DeleteGenre(context context.Context, id string) error
}
