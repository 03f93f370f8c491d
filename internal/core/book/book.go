// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package book manages the catalog's titles.

A book references exactly one author and is filed under zero or more genres.
Physical copies live in the bookinstance package; this package only reads them
for the detail and delete pages.
*/
package book

import (
	"net/http"
	"time"

	"github.com/taibuivan/locallibrary/internal/core/author"
	"github.com/taibuivan/locallibrary/internal/core/genre"
	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	"github.com/taibuivan/locallibrary/internal/platform/constants"
	"github.com/taibuivan/locallibrary/pkg/dates"
)

// Book is a title in the catalog. Free text is stored entity-escaped.
type Book struct {
	ID       string
	Title    string
	Summary  string
	ISBN     string
	AuthorID string
	GenreIDs []string

	// Author and Genres are filled by reads; writes use AuthorID and GenreIDs.
	Author *author.Author
	Genres []*genre.Genre
}

// Copy is the slice of a book instance shown on book pages.
type Copy struct {
	ID      string
	Imprint string
	Status  string
	DueBack time.Time
}

// Global field names for validation
const (
	FieldTitle   = "title"
	FieldSummary = "summary"
	FieldISBN    = "isbn"
	FieldAuthor  = "author"
	FieldGenre   = "genre"
)

var (
	// ErrBookNotFound is returned when no book has the requested id.
	ErrBookNotFound = apperr.NotFound("Book")

	// ErrBookHasCopies is returned when deleting a book that still has copies.
	ErrBookHasCopies = &apperr.AppError{
		Code:       "BOOK_HAS_COPIES",
		Message:    "Delete the book's copies before deleting the book",
		HTTPStatus: http.StatusConflict,
	}
)

// URL is the book's detail page.
func (book *Book) URL() string {
	return constants.CatalogPrefix + "/book/" + book.ID
}

// URL is the copy's detail page.
func (item *Copy) URL() string {
	return constants.CatalogPrefix + "/bookinstance/" + item.ID
}

// DueBackFormatted is the long form of DueBack.
func (item *Copy) DueBackFormatted() string {
	return dates.Long(item.DueBack)
}
