package usecases

import (
	"context"
	"io"
)

// ImageStore persists uploaded ticket images outside the database.
type ImageStore interface {
	Save(originalName string, r io.Reader) (string, error)
	Delete(relPath string) error
}

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
