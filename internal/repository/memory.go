package repository

import (
	"context"
	"sync"

	"github.com/Chinmayee2524/inventory-tracker/internal/model"
)

var _ ItemRepository = (*MemoryItemRepository)(nil)

// MemoryItemRepository keeps the item collection in process memory. All
// mutations are serialized behind a single lock, so concurrent creates can
// never observe the same id. Items are plain value structs, so every read
// hands out an independent copy.
type MemoryItemRepository struct {
	mu     sync.RWMutex
	items  map[int64]model.Item
	order  []int64
	nextID int64
}

// NewMemoryItemRepository creates an empty in-memory item repository.
func NewMemoryItemRepository() *MemoryItemRepository {
	return &MemoryItemRepository{
		items:  make(map[int64]model.Item),
		nextID: 1,
	}
}

func (r *MemoryItemRepository) ListItems(_ context.Context) ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.Item, 0, len(r.order))
	for _, id := range r.order {
		items = append(items, r.items[id])
	}
	return items, nil
}

func (r *MemoryItemRepository) GetItem(_ context.Context, id int64) (model.Item, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *MemoryItemRepository) CreateItem(_ context.Context, params ItemParams) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item := model.Item{
		ID:       r.nextID,
		Name:     params.Name,
		Quantity: params.Quantity,
		Price:    params.Price,
		Supplier: params.Supplier,
	}
	r.nextID++

	r.items[item.ID] = item
	r.order = append(r.order, item.ID)

	return item, nil
}

func (r *MemoryItemRepository) UpdateItem(_ context.Context, id int64, params ItemParams) (model.Item, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return model.Item{}, false, nil
	}

	item := model.Item{
		ID:       id,
		Name:     params.Name,
		Quantity: params.Quantity,
		Price:    params.Price,
		Supplier: params.Supplier,
	}
	r.items[id] = item

	return item, true, nil
}

func (r *MemoryItemRepository) DeleteItem(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}

	delete(r.items, id)
	for i, orderedID := range r.order {
		if orderedID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return true, nil
}
