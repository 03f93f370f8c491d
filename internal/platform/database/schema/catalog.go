// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema names the tables and columns of the 'catalog' schema so that
// repositories build their SQL from one definition.
package schema

// AuthorTable represents the 'catalog.author' table
type AuthorTable struct {
	Table       string
	ID          string
	FirstName   string
	FamilyName  string
	DateOfBirth string
	DateOfDeath string
	CreatedAt   string
	UpdatedAt   string
}

// Author is the schema definition for catalog.author
var Author = AuthorTable{
	Table:       "catalog.author",
	ID:          "id",
	FirstName:   "first_name",
	FamilyName:  "family_name",
	DateOfBirth: "date_of_birth",
	DateOfDeath: "date_of_death",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

// GenreTable represents the 'catalog.genre' table
type GenreTable struct {
	Table     string
	ID        string
	Name      string
	CreatedAt string
	UpdatedAt string
}

// Genre is the schema definition for catalog.genre
var Genre = GenreTable{
	Table:     "catalog.genre",
	ID:        "id",
	Name:      "name",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

// BookTable represents the 'catalog.book' table
type BookTable struct {
	Table     string
	ID        string
	Title     string
	Summary   string
	ISBN      string
	AuthorID  string
	CreatedAt string
	UpdatedAt string
}

// Book is the schema definition for catalog.book
var Book = BookTable{
	Table:     "catalog.book",
	ID:        "id",
	Title:     "title",
	Summary:   "summary",
	ISBN:      "isbn",
	AuthorID:  "author_id",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

// BookGenreTable represents the 'catalog.book_genre' junction table
type BookGenreTable struct {
	Table   string
	BookID  string
	GenreID string
}

// BookGenre is the schema definition for catalog.book_genre
var BookGenre = BookGenreTable{
	Table:   "catalog.book_genre",
	BookID:  "book_id",
	GenreID: "genre_id",
}

// BookInstanceTable represents the 'catalog.bookinstance' table
type BookInstanceTable struct {
	Table     string
	ID        string
	BookID    string
	Imprint   string
	Status    string
	DueBack   string
	CreatedAt string
	UpdatedAt string
}

// BookInstance is the schema definition for catalog.bookinstance
var BookInstance = BookInstanceTable{
	Table:     "catalog.bookinstance",
	ID:        "id",
	BookID:    "book_id",
	Imprint:   "imprint",
	Status:    "status",
	DueBack:   "due_back",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}
