package repository

import (
	"context"

	"github.com/Chinmayee2524/inventory-tracker/internal/model"
)

// ItemParams carries the caller-supplied item fields for create and update.
// The repository trusts its caller: validation happens before this layer.
type ItemParams struct {
	Name     string
	Quantity int
	Price    model.Cents
	Supplier string
}

// ItemRepository owns the authoritative item collection and id allocation.
// Ids start at 1, grow monotonically and are never reused, even after
// deletes. A missing id is reported through the bool result, never as an
// error.
type ItemRepository interface {
	// ListItems returns all items in insertion order. An empty slice is a
	// valid result.
	ListItems(ctx context.Context) ([]model.Item, error)

	// GetItem returns the item with the given id, or false if absent.
	GetItem(ctx context.Context, id int64) (model.Item, bool, error)

	// CreateItem allocates the next id, stores the record and returns it.
	CreateItem(ctx context.Context, params ItemParams) (model.Item, error)

	// UpdateItem replaces all mutable fields of the item with the given id,
	// preserving the id. Returns false if the id is absent.
	UpdateItem(ctx context.Context, id int64, params ItemParams) (model.Item, bool, error)

	// DeleteItem removes the item with the given id. Returns false if the
	// id was absent; the id is never reused afterwards.
	DeleteItem(ctx context.Context, id int64) (bool, error)
}
