// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bookinstance

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/taibuivan/locallibrary/internal/platform/validate"
	"github.com/taibuivan/locallibrary/pkg/dates"
	"github.com/taibuivan/locallibrary/pkg/slice"
)

// formChains sanitizes and validates the copy create/update form.
func formChains() []*validate.Chain {
	return []*validate.Chain{
		validate.Body(FieldBook).
			Trim().
			Rules(
				validation.Required.Error("Book must be specified"),
				is.UUID.Error("Book not found"),
			),
		validate.Body(FieldImprint).
			Trim().
			Normalize().
			Rules(validation.Required.Error("Imprint must be specified")).
			Escape(),
		validate.Body(FieldStatus).
			Trim().
			Rules(validation.In(slice.Any(Statuses)...).Error("Invalid status")),
		validate.Body(FieldDueBack).
			Trim().
			Rules(validation.Date(dates.InputLayout).Error("Invalid date")),
	}
}

// fromSubmission builds a copy from the sanitized form. A blank or invalid due
// date is left zero; the service fills in today.
func fromSubmission(submission *validate.Submission) *BookInstance {
	instance := &BookInstance{
		BookID:  submission.Get(FieldBook),
		Imprint: submission.Get(FieldImprint),
		Status:  submission.Get(FieldStatus),
	}
	if dueBack, err := dates.ParseOptional(submission.Get(FieldDueBack)); err == nil && dueBack != nil {
		instance.DueBack = *dueBack
	}
	return instance
}
