// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package dates formats and parses the calendar dates shown on catalog pages.

Dates are stored as PostgreSQL DATE columns and carried as UTC midnight
[time.Time] values, so no time-of-day or zone ever leaks into a page.
*/
package dates

import (
	"strconv"
	"strings"
	"time"
)

// InputLayout is the layout of <input type="date"> values.
const InputLayout = "2006-01-02"

// Long renders t as "January 2nd, 2006".
func Long(t time.Time) string {
	day := t.Day()
	return t.Format("January ") + strconv.Itoa(day) + ordinal(day) + t.Format(", 2006")
}

// LongPtr is [Long] for optional dates. Nil yields "".
func LongPtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return Long(*t)
}

// Input renders t in the form-input layout.
func Input(t time.Time) string {
	return t.Format(InputLayout)
}

// InputPtr is [Input] for optional dates. Nil yields "".
func InputPtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return Input(*t)
}

// ParseOptional parses a form-input date. Blank input yields nil.
func ParseOptional(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(InputLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Today returns the current UTC date at midnight.
func Today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WholeYears counts the full years between from and to, honouring month and day.
// A span that ends before it starts yields a negative count.
func WholeYears(from, to time.Time) int {
	if to.Before(from) {
		return -WholeYears(to, from)
	}

	years := to.Year() - from.Year()
	if to.Month() < from.Month() || (to.Month() == from.Month() && to.Day() < from.Day()) {
		years--
	}
	return years
}

func ordinal(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
