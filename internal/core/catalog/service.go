// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/locallibrary/internal/platform/parallel"
)

// Service computes the home page counts.
type Service struct {
	repo   Repository
	cache  Cache
	logger *slog.Logger
}

// NewService wires the counts service. A nil cache always reads the database.
func NewService(repo Repository, cache Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// Counts returns the cached counts, or computes and caches them.
func (service *Service) Counts(ctx context.Context) (*Counts, error) {
	if service.cache != nil {
		counts, err := service.cache.GetCounts(ctx)
		if err == nil {
			return counts, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			service.logger.WarnContext(ctx, "catalog_counts_cache_read_failed", slog.String("error", err.Error()))
		}
	}

	counts, err := service.countAll(ctx)
	if err != nil {
		return nil, err
	}

	if service.cache != nil {
		if err := service.cache.SetCounts(ctx, counts); err != nil {
			service.logger.WarnContext(ctx, "catalog_counts_cache_write_failed", slog.String("error", err.Error()))
		}
	}

	return counts, nil
}

// countAll runs the five counts concurrently. The first failure cancels the rest.
func (service *Service) countAll(ctx context.Context) (*Counts, error) {
	counts := &Counts{}

	count := func(target *int, query func(context.Context) (int, error)) parallel.Task {
		return func(ctx context.Context) (err error) {
			*target, err = query(ctx)
			return err
		}
	}

	err := parallel.Run(ctx,
		count(&counts.Books, service.repo.CountBooks),
		count(&counts.Copies, service.repo.CountCopies),
		count(&counts.AvailableCopies, service.repo.CountAvailableCopies),
		count(&counts.Authors, service.repo.CountAuthors),
		count(&counts.Genres, service.repo.CountGenres),
	)
	if err != nil {
		return nil, err
	}

	return counts, nil
}
