// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package bookinstance manages the physical copies of a book.

Each copy belongs to exactly one book and carries its own imprint, lending
status and due date.
*/
package bookinstance

import (
	"time"

	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	"github.com/taibuivan/locallibrary/internal/platform/constants"
	"github.com/taibuivan/locallibrary/pkg/dates"
)

// Lending status of a copy.
const (
	StatusAvailable   = "Available"
	StatusMaintenance = "Maintenance"
	StatusLoaned      = "Loaned"
	StatusReserved    = "Reserved"
)

// Statuses lists every status in the order the form offers them.
var Statuses = []string{StatusAvailable, StatusMaintenance, StatusLoaned, StatusReserved}

// BookInstance is a physical copy of a book. Imprint is stored entity-escaped.
type BookInstance struct {
	ID      string
	BookID  string
	Imprint string
	Status  string
	DueBack time.Time

	// BookTitle is filled by reads.
	BookTitle string
}

// Global field names for validation
const (
	FieldBook    = "book"
	FieldImprint = "imprint"
	FieldStatus  = "status"
	FieldDueBack = "due_back"
)

// ErrInstanceNotFound is returned when no copy has the requested id.
var ErrInstanceNotFound = apperr.NotFound("Book copy")

// URL is the copy's detail page.
func (instance *BookInstance) URL() string {
	return constants.CatalogPrefix + "/bookinstance/" + instance.ID
}

// BookURL is the detail page of the copy's book.
func (instance *BookInstance) BookURL() string {
	return constants.CatalogPrefix + "/book/" + instance.BookID
}

// DueBackFormatted is the long form of DueBack.
func (instance *BookInstance) DueBackFormatted() string {
	return dates.Long(instance.DueBack)
}

// DueBackForm is DueBack as a date input value.
func (instance *BookInstance) DueBackForm() string {
	if instance.DueBack.IsZero() {
		return ""
	}
	return dates.Input(instance.DueBack)
}

// IsAvailable reports whether the copy can be borrowed.
func (instance *BookInstance) IsAvailable() bool {
	return instance.Status == StatusAvailable
}
