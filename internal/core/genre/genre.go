// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package genre manages the categories that books are filed under.
package genre

import (
	"net/http"

	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	"github.com/taibuivan/locallibrary/internal/platform/constants"
)

// Genre is a named category. Names are unique and stored entity-escaped.
type Genre struct {
	ID   string
	Name string
}

// BookSummary is the slice of a book shown on genre pages.
type BookSummary struct {
	ID      string
	Title   string
	Summary string
}

// Global field names for validation
const (
	FieldName = "name"
)

var (
	// ErrGenreNotFound is returned when no genre has the requested id.
	ErrGenreNotFound = apperr.NotFound("Genre")

	// ErrGenreHasBooks is returned when deleting a genre that books are still filed under.
	ErrGenreHasBooks = &apperr.AppError{
		Code:       "GENRE_HAS_BOOKS",
		Message:    "Remove the genre from its books before deleting it",
		HTTPStatus: http.StatusConflict,
	}
)

// URL is the genre's detail page.
func (genre *Genre) URL() string {
	return constants.CatalogPrefix + "/genre/" + genre.ID
}

// URL is the book's detail page.
func (book *BookSummary) URL() string {
	return constants.CatalogPrefix + "/book/" + book.ID
}
