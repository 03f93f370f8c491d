// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package author manages the people who wrote the catalog's books.
package author

import (
	"net/http"
	"strconv"
	"time"

	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	"github.com/taibuivan/locallibrary/internal/platform/constants"
	"github.com/taibuivan/locallibrary/pkg/dates"
)

// Author is a writer of one or more books.
//
// Names are stored entity-escaped. Dates are calendar dates in UTC.
type Author struct {
	ID          string
	FirstName   string
	FamilyName  string
	DateOfBirth *time.Time
	DateOfDeath *time.Time
}

// BookSummary is the slice of a book shown on author pages.
type BookSummary struct {
	ID      string
	Title   string
	Summary string
}

// Global field names for validation
const (
	FieldFirstName   = "first_name"
	FieldFamilyName  = "family_name"
	FieldDateOfBirth = "date_of_birth"
	FieldDateOfDeath = "date_of_death"
)

// # Errors

var (
	// ErrAuthorNotFound is returned when no author has the requested id.
	ErrAuthorNotFound = apperr.NotFound("Author")

	// ErrAuthorHasBooks is returned when deleting an author that books still reference.
	ErrAuthorHasBooks = &apperr.AppError{
		Code:       "AUTHOR_HAS_BOOKS",
		Message:    "Delete the author's books before deleting the author",
		HTTPStatus: http.StatusConflict,
	}
)

// # Derived Fields

// Name is "FamilyName, FirstName", or empty when either part is missing.
func (author *Author) Name() string {
	if author.FirstName == "" || author.FamilyName == "" {
		return ""
	}
	return author.FamilyName + ", " + author.FirstName
}

// Birthdate is the long form of DateOfBirth, or empty.
func (author *Author) Birthdate() string { return dates.LongPtr(author.DateOfBirth) }

// Deathdate is the long form of DateOfDeath, or empty.
func (author *Author) Deathdate() string { return dates.LongPtr(author.DateOfDeath) }

// BirthdateForm is DateOfBirth in the date-input layout, or empty.
func (author *Author) BirthdateForm() string { return dates.InputPtr(author.DateOfBirth) }

// DeathdateForm is DateOfDeath in the date-input layout, or empty.
func (author *Author) DeathdateForm() string { return dates.InputPtr(author.DateOfDeath) }

// Lifespan returns the whole years between birth and death. ok is false
// unless both dates are known.
func (author *Author) Lifespan() (years int, ok bool) {
	if author.DateOfBirth == nil || author.DateOfDeath == nil {
		return 0, false
	}
	return dates.WholeYears(*author.DateOfBirth, *author.DateOfDeath), true
}

// LifespanLabel is "Lived N years", or empty when the lifespan is unknown.
func (author *Author) LifespanLabel() string {
	years, ok := author.Lifespan()
	if !ok {
		return ""
	}
	return "Lived " + strconv.Itoa(years) + " years"
}

// URL is the author's detail page.
func (author *Author) URL() string {
	return constants.CatalogPrefix + "/author/" + author.ID
}

// URL is the book's detail page.
func (book *BookSummary) URL() string {
	return constants.CatalogPrefix + "/book/" + book.ID
}
