// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/locallibrary/internal/core/author"
	"github.com/taibuivan/locallibrary/internal/core/genre"
	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	"github.com/taibuivan/locallibrary/internal/platform/dberr"
	"github.com/taibuivan/locallibrary/internal/platform/parallel"
	"github.com/taibuivan/locallibrary/internal/platform/validate"
	"github.com/taibuivan/locallibrary/pkg/uuid"
)

// AuthorLister supplies the author choices of the book form.
type AuthorLister interface {
	ListAuthors(context context.Context) ([]*author.Author, error)
}

// GenreLister supplies the genre choices of the book form.
type GenreLister interface {
	ListGenres(context context.Context) ([]*genre.Genre, error)
}

// Options are the choices offered by the book form.
type Options struct {
	Authors []*author.Author
	Genres  []*genre.Genre
}

// Service holds the book use cases.
type Service struct {
	repo    Repository
	authors AuthorLister
	genres  GenreLister
	logger  *slog.Logger
}

// NewService wires a book service.
func NewService(repo Repository, authors AuthorLister, genres GenreLister, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		authors: authors,
		genres:  genres,
		logger:  logger,
	}
}

// ListBooks returns every book with its author, ordered by title.
func (service *Service) ListBooks(context context.Context) ([]*Book, error) {
	return service.repo.ListBooks(context)
}

// GetBook returns one book or [ErrBookNotFound].
func (service *Service) GetBook(context context.Context, id string) (*Book, error) {
	return service.repo.GetBook(context, id)
}

// GetBookWithCopies loads a book and its copies concurrently.
func (service *Service) GetBookWithCopies(ctx context.Context, id string) (*Book, []*Copy, error) {
	var (
		book   *Book
		copies []*Copy
	)

	err := parallel.Run(ctx,
		func(ctx context.Context) (err error) {
			book, err = service.repo.GetBook(ctx, id)
			return err
		},
		func(ctx context.Context) (err error) {
			copies, err = service.repo.ListCopies(ctx, id)
			return err
		},
	)
	if err != nil {
		return nil, nil, err
	}

	return book, copies, nil
}

// FormOptions loads the author and genre choices concurrently.
func (service *Service) FormOptions(ctx context.Context) (Options, error) {
	var options Options

	err := parallel.Run(ctx,
		func(ctx context.Context) (err error) {
			options.Authors, err = service.authors.ListAuthors(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			options.Genres, err = service.genres.ListGenres(ctx)
			return err
		},
	)

	return options, err
}

// GetBookForUpdate loads the book together with the form choices, all three concurrently.
func (service *Service) GetBookForUpdate(ctx context.Context, id string) (*Book, Options, error) {
	var (
		book    *Book
		options Options
	)

	err := parallel.Run(ctx,
		func(ctx context.Context) (err error) {
			book, err = service.repo.GetBook(ctx, id)
			return err
		},
		func(ctx context.Context) (err error) {
			options.Authors, err = service.authors.ListAuthors(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			options.Genres, err = service.genres.ListGenres(ctx)
			return err
		},
	)
	if err != nil {
		return nil, Options{}, err
	}

	return book, options, nil
}

// CreateBook assigns an id and stores a new book with its genres.
func (service *Service) CreateBook(context context.Context, book *Book) error {
	if err := validateBook(book); err != nil {
		return err
	}

	book.ID = uuid.New()
	if err := service.repo.CreateBook(context, book); err != nil {
		return referenceError(err)
	}

	service.logger.InfoContext(context, "book_created",
		slog.String("book_id", book.ID),
		slog.String("author_id", book.AuthorID),
		slog.Int("genres", len(book.GenreIDs)),
	)
	return nil
}

// UpdateBook replaces every field and the genre set of an existing book.
func (service *Service) UpdateBook(context context.Context, book *Book) error {
	if err := validateBook(book); err != nil {
		return err
	}

	if err := service.repo.UpdateBook(context, book); err != nil {
		return referenceError(err)
	}

	service.logger.InfoContext(context, "book_updated", slog.String("book_id", book.ID))
	return nil
}

// DeleteBook removes a book that has no copies. Its genre links go with it.
func (service *Service) DeleteBook(context context.Context, id string) error {
	copies, err := service.repo.ListCopies(context, id)
	if err != nil {
		return err
	}
	if len(copies) > 0 {
		return ErrBookHasCopies
	}

	if err := service.repo.DeleteBook(context, id); err != nil {
		if errors.Is(err, dberr.ErrReferenced) {
			return ErrBookHasCopies
		}
		return err
	}

	service.logger.WarnContext(context, "book_deleted", slog.String("book_id", id))
	return nil
}

// Foreign keys whose violation points at a form field.
const (
	authorConstraint = "book_author_id_fkey"
	genreConstraint  = "book_genre_genre_id_fkey"
)

// referenceError turns a rejected author or genre reference into a field error.
// Other foreign key failures are returned unchanged.
func referenceError(err error) error {
	if !errors.Is(err, dberr.ErrReferenced) {
		return err
	}

	var field, message string
	switch dberr.Constraint(err) {
	case authorConstraint:
		field, message = FieldAuthor, "Author not found"
	case genreConstraint:
		field, message = FieldGenre, "Genre not found"
	default:
		return err
	}
	return apperr.ValidationError("Validation failed", apperr.FieldError{Field: field, Message: message})
}

func validateBook(book *Book) error {
	validator := &validate.Validator{}

	validator.
		Required(FieldTitle, book.Title).
		Required(FieldSummary, book.Summary).
		Required(FieldISBN, book.ISBN).
		Required(FieldAuthor, book.AuthorID)

	return validator.Err()
}
