// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	"github.com/taibuivan/locallibrary/internal/platform/dberr"
	"github.com/taibuivan/locallibrary/internal/platform/parallel"
	"github.com/taibuivan/locallibrary/internal/platform/validate"
	"github.com/taibuivan/locallibrary/pkg/uuid"
)

// Service holds the genre use cases.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService wires a genre service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListGenres returns every genre ordered by name.
func (service *Service) ListGenres(context context.Context) ([]*Genre, error) {
	return service.repo.ListGenres(context)
}

// GetGenre returns one genre or [ErrGenreNotFound].
func (service *Service) GetGenre(context context.Context, id string) (*Genre, error) {
	return service.repo.GetGenre(context, id)
}

// GetGenreWithBooks loads a genre and its books concurrently.
func (service *Service) GetGenreWithBooks(ctx context.Context, id string) (*Genre, []*BookSummary, error) {
	var (
		genre *Genre
		books []*BookSummary
	)

	err := parallel.Run(ctx,
		func(ctx context.Context) (err error) {
			genre, err = service.repo.GetGenre(ctx, id)
			return err
		},
		func(ctx context.Context) (err error) {
			books, err = service.repo.ListBooksByGenre(ctx, id)
			return err
		},
	)
	if err != nil {
		return nil, nil, err
	}

	return genre, books, nil
}

// CreateGenre stores a new genre, or fills genre with the existing one of the
// same name. created reports which happened.
func (service *Service) CreateGenre(context context.Context, genre *Genre) (created bool, err error) {
	if err := validateGenre(genre); err != nil {
		return false, err
	}

	genre.ID = uuid.New()
	created, err = service.repo.CreateOrGetGenre(context, genre)
	if err != nil {
		return false, err
	}

	if created {
		service.logger.InfoContext(context, "genre_created",
			slog.String("genre_id", genre.ID),
			slog.String("name", genre.Name),
		)
	}
	return created, nil
}

// UpdateGenre renames a genre. A name held by another genre is a field error.
func (service *Service) UpdateGenre(context context.Context, genre *Genre) error {
	if err := validateGenre(genre); err != nil {
		return err
	}

	if err := service.repo.UpdateGenre(context, genre); err != nil {
		if errors.Is(err, dberr.ErrDuplicate) {
			return apperr.ValidationError("Validation failed", apperr.FieldError{
				Field:   FieldName,
				Message: "Genre already exists",
			})
		}
		return err
	}

	service.logger.InfoContext(context, "genre_updated", slog.String("genre_id", genre.ID))
	return nil
}

// DeleteGenre removes a genre that no book is filed under.
func (service *Service) DeleteGenre(context context.Context, id string) error {
	books, err := service.repo.ListBooksByGenre(context, id)
	if err != nil {
		return err
	}
	if len(books) > 0 {
		return ErrGenreHasBooks
	}

	if err := service.repo.DeleteGenre(context, id); err != nil {
		if errors.Is(err, dberr.ErrReferenced) {
			return ErrGenreHasBooks
		}
		return err
	}

	service.logger.WarnContext(context, "genre_deleted", slog.String("genre_id", id))
	return nil
}

func validateGenre(genre *Genre) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, genre.Name)
	return validator.Err()
}
