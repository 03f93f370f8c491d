// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bookinstance

import "context"

// Repository persists book copies.
type Repository interface {
	// ListInstances returns every copy with its book title, ordered by title then due date.
	ListInstances(context context.Context) ([]*BookInstance, error)
	GetInstance(context context.Context, id string) (*BookInstance, error)
	// CreateInstance fails with dberr.ErrReferenced when the book does not exist.
	CreateInstance(context context.Context, instance *BookInstance) error
	UpdateInstance(context context.Context, instance *BookInstance) error
	DeleteInstance(context context.Context, id string) error
}
