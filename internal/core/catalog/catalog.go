// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog serves the library home page.

The page shows how many records of each kind the library holds. The counts are
read from PostgreSQL in parallel and kept in Redis for a short while; a cache
that is down or empty only costs the extra queries.
*/
package catalog

import (
	"context"
	"errors"
)

// Counts is the summary shown on the home page.
type Counts struct {
	Books           int `json:"books"`
	Copies          int `json:"copies"`
	AvailableCopies int `json:"available_copies"`
	Authors         int `json:"authors"`
	Genres          int `json:"genres"`
}

// ErrCacheMiss is returned by a [Cache] that holds no counts.
var ErrCacheMiss = errors.New("catalog: counts not cached")

// Repository counts catalog records.
type Repository interface {
	CountBooks(context context.Context) (int, error)
	CountCopies(context context.Context) (int, error)
	CountAvailableCopies(context context.Context) (int, error)
	CountAuthors(context context.Context) (int, error)
	CountGenres(context context.Context) (int, error)
}

// Cache keeps the last computed [Counts].
type Cache interface {
	// GetCounts returns [ErrCacheMiss] when nothing is cached.
	GetCounts(context context.Context) (*Counts, error)
	SetCounts(context context.Context, counts *Counts) error
}
