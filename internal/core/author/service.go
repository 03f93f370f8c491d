// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/locallibrary/internal/platform/dberr"
	"github.com/taibuivan/locallibrary/internal/platform/parallel"
	"github.com/taibuivan/locallibrary/internal/platform/validate"
	"github.com/taibuivan/locallibrary/pkg/uuid"
)

// Service holds the author use cases.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService wires an author service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListAuthors returns every author in display order.
func (service *Service) ListAuthors(context context.Context) ([]*Author, error) {
	return service.repo.ListAuthors(context)
}

// GetAuthor returns one author or [ErrAuthorNotFound].
func (service *Service) GetAuthor(context context.Context, id string) (*Author, error) {
	return service.repo.GetAuthor(context, id)
}

// GetAuthorWithBooks loads an author and the author's books concurrently.
func (service *Service) GetAuthorWithBooks(ctx context.Context, id string) (*Author, []*BookSummary, error) {
	var (
		author *Author
		books  []*BookSummary
	)

	err := parallel.Run(ctx,
		func(ctx context.Context) (err error) {
			author, err = service.repo.GetAuthor(ctx, id)
			return err
		},
		func(ctx context.Context) (err error) {
			books, err = service.repo.ListBooksByAuthor(ctx, id)
			return err
		},
	)
	if err != nil {
		return nil, nil, err
	}

	return author, books, nil
}

// CreateAuthor assigns an id and stores a new author.
func (service *Service) CreateAuthor(context context.Context, author *Author) error {
	if err := validateAuthor(author); err != nil {
		return err
	}

	author.ID = uuid.New()
	if err := service.repo.CreateAuthor(context, author); err != nil {
		return err
	}

	service.logger.InfoContext(context, "author_created",
		slog.String("author_id", author.ID),
		slog.String("name", author.Name()),
	)
	return nil
}

// UpdateAuthor replaces every field of an existing author.
func (service *Service) UpdateAuthor(context context.Context, author *Author) error {
	if err := validateAuthor(author); err != nil {
		return err
	}

	if err := service.repo.UpdateAuthor(context, author); err != nil {
		return err
	}

	service.logger.InfoContext(context, "author_updated", slog.String("author_id", author.ID))
	return nil
}

// DeleteAuthor removes an author that no book references.
//
// The book check gives the usual answer; the foreign key settles a book added
// between the check and the delete.
func (service *Service) DeleteAuthor(context context.Context, id string) error {
	books, err := service.repo.ListBooksByAuthor(context, id)
	if err != nil {
		return err
	}
	if len(books) > 0 {
		return ErrAuthorHasBooks
	}

	if err := service.repo.DeleteAuthor(context, id); err != nil {
		if errors.Is(err, dberr.ErrReferenced) {
			return ErrAuthorHasBooks
		}
		return err
	}

	service.logger.WarnContext(context, "author_deleted", slog.String("author_id", id))
	return nil
}

// validateAuthor checks the rules that span fields or that the form chains
// cannot see.
func validateAuthor(author *Author) error {
	validator := &validate.Validator{}

	validator.
		Required(FieldFirstName, author.FirstName).
		MaxLen(FieldFirstName, author.FirstName, maxNameLength).
		Required(FieldFamilyName, author.FamilyName).
		MaxLen(FieldFamilyName, author.FamilyName, maxNameLength)

	if author.DateOfBirth != nil && author.DateOfDeath != nil {
		validator.Custom(FieldDateOfDeath, author.DateOfDeath.Before(*author.DateOfBirth),
			"Date of death must not be before date of birth")
	}

	return validator.Err()
}
