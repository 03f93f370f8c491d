// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/taibuivan/locallibrary/internal/platform/validate"
)

// formChains sanitizes and validates the book create/update form.
func formChains() []*validate.Chain {
	return []*validate.Chain{
		validate.Body(FieldTitle).
			Trim().
			Normalize().
			Rules(validation.Required.Error("Title must not be empty.")).
			Escape(),
		validate.Body(FieldAuthor).
			Trim().
			Rules(
				validation.Required.Error("Author must not be empty."),
				is.UUID.Error("Author not found"),
			),
		validate.Body(FieldSummary).
			Trim().
			Normalize().
			Rules(validation.Required.Error("Summary must not be empty.")).
			Escape(),
		validate.Body(FieldISBN).
			Trim().
			Rules(validation.Required.Error("ISBN must not be empty")).
			Escape(),
		validate.Body(FieldGenre).
			Multi().
			Trim().
			Rules(is.UUID.Error("Genre not found")),
	}
}

func fromSubmission(submission *validate.Submission) *Book {
	genreIDs := submission.All(FieldGenre)
	if genreIDs == nil {
		genreIDs = []string{}
	}

	return &Book{
		Title:    submission.Get(FieldTitle),
		Summary:  submission.Get(FieldSummary),
		ISBN:     submission.Get(FieldISBN),
		AuthorID: submission.Get(FieldAuthor),
		GenreIDs: genreIDs,
	}
}
