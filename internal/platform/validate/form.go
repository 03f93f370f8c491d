// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate

import (
	"context"
	"net/http"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	"github.com/taibuivan/locallibrary/internal/platform/ctxkey"
	"github.com/taibuivan/locallibrary/internal/platform/respond"
)

// maxFormBytes bounds the urlencoded body accepted by [Form].
const maxFormBytes = 1 << 20

// # Field Chains

// step is one entry of a chain: either a rule or a sanitizer.
type step struct {
	rule     validation.Rule
	sanitize Sanitizer
}

// Chain is the ordered list of sanitizers and rules applied to one form field.
//
// Steps run in declaration order. The first failing rule records the field's
// error; the remaining rules are skipped but later sanitizers still run, so a
// re-rendered form shows the sanitized value.
type Chain struct {
	field string
	multi bool
	steps []step
}

// Body starts a chain for the named form field.
//
// # Example
//
//	validate.Body("first_name").
//	    Trim().
//	    Rules(validation.Required.Error("First name must be specified.")).
//	    Escape()
func Body(field string) *Chain {
	return &Chain{field: field}
}

// Multi keeps every submitted value of the field (checkbox groups). Each value
// runs through the chain independently.
func (c *Chain) Multi() *Chain {
	c.multi = true
	return c
}

// Sanitize appends custom sanitizers.
func (c *Chain) Sanitize(sanitizers ...Sanitizer) *Chain {
	for _, s := range sanitizers {
		c.steps = append(c.steps, step{sanitize: s})
	}
	return c
}

// Rules appends ozzo-validation rules. Each rule carries its own message.
func (c *Chain) Rules(rules ...validation.Rule) *Chain {
	for _, r := range rules {
		c.steps = append(c.steps, step{rule: r})
	}
	return c
}

// Trim appends the [Trim] sanitizer.
func (c *Chain) Trim() *Chain { return c.Sanitize(Trim) }

// Normalize appends the [NormalizeNFC] sanitizer.
func (c *Chain) Normalize() *Chain { return c.Sanitize(NormalizeNFC) }

// Escape appends the [Escape] sanitizer.
func (c *Chain) Escape() *Chain { return c.Sanitize(Escape) }

// run applies the chain to a single value.
func (c *Chain) run(value string) (string, string) {
	var message string
	for _, s := range c.steps {
		if s.sanitize != nil {
			value = s.sanitize(value)
			continue
		}
		if message != "" {
			continue
		}
		if err := validation.Validate(value, s.rule); err != nil {
			message = err.Error()
		}
	}
	return value, message
}

// # Submission

// Submission is the sanitized result of running chains over a form body.
type Submission struct {
	values map[string]string
	multi  map[string][]string
	errs   []apperr.FieldError
}

// Apply runs every chain over form and collects the sanitized values and errors.
func Apply(form url.Values, chains ...*Chain) *Submission {
	submission := newSubmission()

	for _, chain := range chains {
		if chain.multi {
			raw := form[chain.field]
			cleaned := make([]string, 0, len(raw))
			for _, value := range raw {
				value, message := chain.run(value)
				if message != "" {
					submission.AddError(chain.field, message)
				}
				cleaned = append(cleaned, value)
			}
			submission.multi[chain.field] = cleaned
			continue
		}

		value, message := chain.run(form.Get(chain.field))
		if message != "" {
			submission.AddError(chain.field, message)
		}
		submission.values[chain.field] = value
	}

	return submission
}

func newSubmission() *Submission {
	return &Submission{
		values: make(map[string]string),
		multi:  make(map[string][]string),
	}
}

// Get returns the sanitized value of a single-valued field.
func (s *Submission) Get(field string) string {
	return s.values[field]
}

// All returns the sanitized values of a multi-valued field.
func (s *Submission) All(field string) []string {
	return s.multi[field]
}

// AddError records a field error found after the chains ran (e.g. an unknown reference).
func (s *Submission) AddError(field, message string) {
	s.errs = append(s.errs, apperr.FieldError{Field: field, Message: message})
}

// Errors returns every recorded field error in submission order.
func (s *Submission) Errors() []apperr.FieldError {
	return s.errs
}

// HasErrors reports whether any field failed.
func (s *Submission) HasErrors() bool {
	return len(s.errs) > 0
}

// Err returns a VALIDATION_ERROR carrying the field errors, or nil.
func (s *Submission) Err() error {
	if len(s.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", s.errs...)
}

// # Middleware

// ErrMalformedForm is rendered when the body cannot be parsed or exceeds the size limit.
var ErrMalformedForm = apperr.ValidationError("Malformed form body")

// Form parses the urlencoded body, runs the chains, and stores the [Submission]
// in the request context for the final handler.
func Form(chains ...*Chain) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			request.Body = http.MaxBytesReader(writer, request.Body, maxFormBytes)
			if err := request.ParseForm(); err != nil {
				respond.Error(writer, request, ErrMalformedForm.WithCause(err))
				return
			}

			submission := Apply(request.PostForm, chains...)
			ctx := context.WithValue(request.Context(), ctxkey.KeySubmission, submission)

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// FromRequest returns the [Submission] stored by [Form]. Requests that did not
// pass through [Form] get an empty submission.
func FromRequest(request *http.Request) *Submission {
	if submission, ok := request.Context().Value(ctxkey.KeySubmission).(*Submission); ok {
		return submission
	}
	return newSubmission()
}
