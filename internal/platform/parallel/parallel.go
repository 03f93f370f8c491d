// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package parallel joins independent lookups that a page needs at the same time.

A detail page needs the primary record and its dependents; a delete page needs
the same pair to decide whether deletion is allowed. Run issues the lookups
concurrently, waits for all of them, and reports the first failure.

Usage:

	var author *Author
	var books []BookSummary
	err := parallel.Run(ctx,
	    func(ctx context.Context) (err error) { author, err = repo.FindByID(ctx, id); return },
	    func(ctx context.Context) (err error) { books, err = repo.ListBooks(ctx, id); return },
	)

Each task must write only to its own result variable.
*/
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Task is one independent lookup.
type Task func(context.Context) error

// Run executes every task concurrently and returns once all have finished.
//
// The first error cancels the context passed to the remaining tasks and is
// the one returned. Run with no tasks returns nil immediately.
func Run(ctx context.Context, tasks ...Task) error {
	if len(tasks) == 0 {
		return nil
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		group.Go(func() error {
			return task(groupCtx)
		})
	}

	return group.Wait()
}
