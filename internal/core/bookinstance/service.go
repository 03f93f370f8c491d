// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bookinstance

import (
	"context"
	"errors"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/taibuivan/locallibrary/internal/core/book"
	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	"github.com/taibuivan/locallibrary/internal/platform/dberr"
	"github.com/taibuivan/locallibrary/internal/platform/parallel"
	"github.com/taibuivan/locallibrary/internal/platform/validate"
	"github.com/taibuivan/locallibrary/pkg/dates"
	"github.com/taibuivan/locallibrary/pkg/slice"
	"github.com/taibuivan/locallibrary/pkg/uuid"
)

// BookLister supplies the book choices of the copy form.
type BookLister interface {
	ListBooks(context context.Context) ([]*book.Book, error)
}

// Service holds the book copy use cases.
type Service struct {
	repo   Repository
	books  BookLister
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires a copy service.
func NewService(repo Repository, books BookLister, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		books:  books,
		logger: logger,
		now:    time.Now,
	}
}

// ListInstances returns every copy with its book title.
func (service *Service) ListInstances(context context.Context) ([]*BookInstance, error) {
	return service.repo.ListInstances(context)
}

// GetInstance returns one copy or [ErrInstanceNotFound].
func (service *Service) GetInstance(context context.Context, id string) (*BookInstance, error) {
	return service.repo.GetInstance(context, id)
}

// ListBooks returns the choices of the copy form.
func (service *Service) ListBooks(context context.Context) ([]*book.Book, error) {
	return service.books.ListBooks(context)
}

// GetInstanceForUpdate loads the copy and the book choices concurrently.
func (service *Service) GetInstanceForUpdate(ctx context.Context, id string) (*BookInstance, []*book.Book, error) {
	var (
		instance *BookInstance
		books    []*book.Book
	)

	err := parallel.Run(ctx,
		func(ctx context.Context) (err error) {
			instance, err = service.repo.GetInstance(ctx, id)
			return err
		},
		func(ctx context.Context) (err error) {
			books, err = service.books.ListBooks(ctx)
			return err
		},
	)
	if err != nil {
		return nil, nil, err
	}

	return instance, books, nil
}

// NewInstance is the blank copy shown by the create form.
func (service *Service) NewInstance() *BookInstance {
	return &BookInstance{Status: StatusMaintenance, DueBack: dates.Today(service.now())}
}

// CreateInstance assigns an id, fills the defaults and stores a new copy.
func (service *Service) CreateInstance(context context.Context, instance *BookInstance) error {
	service.applyDefaults(instance)
	if err := validateInstance(instance); err != nil {
		return err
	}

	instance.ID = uuid.New()
	if err := service.repo.CreateInstance(context, instance); err != nil {
		return referenceError(err)
	}

	service.logger.InfoContext(context, "book_instance_created",
		slog.String("instance_id", instance.ID),
		slog.String("book_id", instance.BookID),
		slog.String("status", instance.Status),
	)
	return nil
}

// UpdateInstance replaces every field of an existing copy.
func (service *Service) UpdateInstance(context context.Context, instance *BookInstance) error {
	service.applyDefaults(instance)
	if err := validateInstance(instance); err != nil {
		return err
	}

	if err := service.repo.UpdateInstance(context, instance); err != nil {
		return referenceError(err)
	}

	service.logger.InfoContext(context, "book_instance_updated",
		slog.String("instance_id", instance.ID),
		slog.String("status", instance.Status),
	)
	return nil
}

// DeleteInstance removes a copy. Nothing references copies, so it is never blocked.
func (service *Service) DeleteInstance(context context.Context, id string) error {
	if err := service.repo.DeleteInstance(context, id); err != nil {
		return err
	}

	service.logger.WarnContext(context, "book_instance_deleted", slog.String("instance_id", id))
	return nil
}

func (service *Service) applyDefaults(instance *BookInstance) {
	if instance.Status == "" {
		instance.Status = StatusMaintenance
	}
	if instance.DueBack.IsZero() {
		instance.DueBack = dates.Today(service.now())
	}
}

// referenceError turns a rejected book reference into a field error.
func referenceError(err error) error {
	if !errors.Is(err, dberr.ErrReferenced) {
		return err
	}
	return apperr.ValidationError("Validation failed", apperr.FieldError{Field: FieldBook, Message: "Book not found"})
}

func validateInstance(instance *BookInstance) error {
	validator := &validate.Validator{}

	validator.
		Required(FieldBook, instance.BookID).
		Required(FieldImprint, instance.Imprint).
		Rules(FieldStatus, instance.Status, validation.Required.Error("Invalid status"), validation.In(slice.Any(Statuses)...).Error("Invalid status"))

	return validator.Err()
}
