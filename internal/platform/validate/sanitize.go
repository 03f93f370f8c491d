// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Sanitizer rewrites a submitted value. Sanitizers never fail.
type Sanitizer func(string) string

// escaper covers the characters that can open markup or break out of an attribute.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// Trim removes leading and trailing whitespace.
func Trim(value string) string {
	return strings.TrimSpace(value)
}

// NormalizeNFC folds canonically equivalent Unicode sequences into one form so
// that "é" typed two different ways is stored, compared, and indexed identically.
func NormalizeNFC(value string) string {
	return norm.NFC.String(value)
}

// Escape replaces markup characters with HTML entities.
func Escape(value string) string {
	return escaper.Replace(value)
}
