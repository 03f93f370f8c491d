// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import "context"

// Repository persists authors.
type Repository interface {
	// ListAuthors returns every author ordered by family name, then first name.
	ListAuthors(context context.Context) ([]*Author, error)
	GetAuthor(context context.Context, id string) (*Author, error)
	// ListBooksByAuthor returns the author's books ordered by title.
	ListBooksByAuthor(context context.Context, authorID string) ([]*BookSummary, error)
	CreateAuthor(context context.Context, author *Author) error
	UpdateAuthor(context context.Context, author *Author) error
	// DeleteAuthor fails with dberr.ErrReferenced while any book references the author.
	DeleteAuthor(context context.Context, id string) error
}
