// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/taibuivan/locallibrary/internal/platform/validate"
	"github.com/taibuivan/locallibrary/pkg/dates"
)

const maxNameLength = 100

// formChains sanitizes and validates the author create/update form.
func formChains() []*validate.Chain {
	return []*validate.Chain{
		validate.Body(FieldFirstName).
			Trim().
			Normalize().
			Rules(
				validation.Required.Error("First name must be specified."),
				validation.Length(1, maxNameLength).Error("First name must be at most 100 characters."),
				is.Alphanumeric.Error("First name has non-alphanumeric characters."),
			).
			Escape(),
		validate.Body(FieldFamilyName).
			Trim().
			Normalize().
			Rules(
				validation.Required.Error("Family name must be specified."),
				validation.Length(1, maxNameLength).Error("Family name must be at most 100 characters."),
				is.Alphanumeric.Error("Family name has non-alphanumeric characters."),
			).
			Escape(),
		validate.Body(FieldDateOfBirth).
			Trim().
			Rules(validation.Date(dates.InputLayout).Error("Invalid date of birth")),
		validate.Body(FieldDateOfDeath).
			Trim().
			Rules(validation.Date(dates.InputLayout).Error("Invalid date of death")),
	}
}

// fromSubmission builds an author from the sanitized form. Dates that failed
// validation are left empty; the submission already carries their errors.
func fromSubmission(submission *validate.Submission) *Author {
	author := &Author{
		FirstName:  submission.Get(FieldFirstName),
		FamilyName: submission.Get(FieldFamilyName),
	}
	author.DateOfBirth, _ = dates.ParseOptional(submission.Get(FieldDateOfBirth))
	author.DateOfDeath, _ = dates.ParseOptional(submission.Get(FieldDateOfDeath))
	return author
}
