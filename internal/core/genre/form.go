// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/taibuivan/locallibrary/internal/platform/validate"
)

// The limit applies to the name as typed, before escaping.
const maxNameLength = 100

func formChains() []*validate.Chain {
	return []*validate.Chain{
		validate.Body(FieldName).
			Trim().
			Normalize().
			Rules(
				validation.Required.Error("Genre name required"),
				validation.Length(1, maxNameLength).Error("Genre name must be at most 100 characters."),
			).
			Escape(),
	}
}
