// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import "context"

// Repository persists books and their genre links.
type Repository interface {
	// ListBooks returns every book with its author, ordered by title.
	ListBooks(context context.Context) ([]*Book, error)
	// GetBook returns a book with its author and genres.
	GetBook(context context.Context, id string) (*Book, error)
	// ListCopies returns the book's copies ordered by due date.
	ListCopies(context context.Context, bookID string) ([]*Copy, error)
	// CreateBook stores the book and its genre links atomically.
	CreateBook(context context.Context, book *Book) error
	// UpdateBook replaces the book's fields and genre links atomically.
	UpdateBook(context context.Context, book *Book) error
	// DeleteBook fails with dberr.ErrReferenced while any copy references the book.
	DeleteBook(context context.Context, id string) error
}
