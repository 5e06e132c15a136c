// Package docstore keeps keyed JSON documents in insertion order.
// Repositories of every domain sit on top of it.
package docstore

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("document not found")

// Document is anything addressable by a stable string id
type Document interface {
	DocumentID() string
}

// Store is a keyed collection that lists documents in insertion order.
// Upsert of an existing id replaces it in place.
type Store[T Document] interface {
	Get(ctx context.Context, id string) (T, error)
	List(ctx context.Context) ([]T, error)
	Upsert(ctx context.Context, doc T) error
	// Seed inserts docs only when the store is empty. Returns the number inserted.
	Seed(ctx context.Context, docs []T) (int, error)
}
