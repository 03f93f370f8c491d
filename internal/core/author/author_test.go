// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

/*
TestAuthor_DerivedFields covers every display value computed from stored fields.
*/
func TestAuthor_DerivedFields(t *testing.T) {
	a := &Author{
		ID:          "0190a6e4-8c3b-7b1e-9f00-2d4c5e6f7a8b",
		FirstName:   "Isaac",
		FamilyName:  "Asimov",
		DateOfBirth: date(1920, time.January, 2),
		DateOfDeath: date(1992, time.April, 6),
	}

	assert.Equal(t, "Asimov, Isaac", a.Name())
	assert.Equal(t, "January 2nd, 1920", a.Birthdate())
	assert.Equal(t, "April 6th, 1992", a.Deathdate())
	assert.Equal(t, "1920-01-02", a.BirthdateForm())
	assert.Equal(t, "1992-04-06", a.DeathdateForm())
	assert.Equal(t, "Lived 72 years", a.LifespanLabel())
	assert.Equal(t, "/catalog/author/0190a6e4-8c3b-7b1e-9f00-2d4c5e6f7a8b", a.URL())
}

/*
TestAuthor_Lifespan counts whole years, so a death before the birthday does not
round up.
*/
func TestAuthor_Lifespan(t *testing.T) {
	tests := []struct {
		name  string
		birth *time.Time
		death *time.Time
		years int
		ok    bool
	}{
		{"died_before_birthday", date(1920, time.December, 31), date(1992, time.January, 1), 71, true},
		{"died_on_birthday", date(1775, time.December, 16), date(1817, time.December, 16), 42, true},
		{"living", date(1947, time.September, 21), nil, 0, false},
		{"unknown_birth", nil, date(1616, time.April, 23), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Author{DateOfBirth: tt.birth, DateOfDeath: tt.death}
			years, ok := a.Lifespan()

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.years, years)
			if !ok {
				assert.Empty(t, a.LifespanLabel())
			}
		})
	}
}

func TestAuthor_EmptyValues(t *testing.T) {
	a := &Author{FirstName: "Isaac"}

	assert.Empty(t, a.Name())
	assert.Empty(t, a.Birthdate())
	assert.Empty(t, a.DeathdateForm())
}
