package repository_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chinmayee2524/inventory-tracker/internal/model"
	"github.com/Chinmayee2524/inventory-tracker/internal/repository"
)

func widgetParams() repository.ItemParams {
	return repository.ItemParams{
		Name:     "Widget",
		Quantity: 5,
		Price:    250,
		Supplier: "Acme",
	}
}

func TestMemoryItemRepositoryCreateAssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryItemRepository()

	first, err := repo.CreateItem(ctx, widgetParams())
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	second, err := repo.CreateItem(ctx, widgetParams())
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	// Deleting must not free the id for reuse.
	deleted, err := repo.DeleteItem(ctx, second.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	third, err := repo.CreateItem(ctx, widgetParams())
	require.NoError(t, err)
	assert.Equal(t, int64(3), third.ID)
}

func TestMemoryItemRepositoryGetReturnsCreatedItem(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryItemRepository()

	created, err := repo.CreateItem(ctx, widgetParams())
	require.NoError(t, err)

	got, ok, err := repo.GetItem(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, created, got)
}

func TestMemoryItemRepositoryGetAbsent(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryItemRepository()

	_, ok, err := repo.GetItem(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryItemRepositoryUpdateReplacesAllFields(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryItemRepository()

	created, err := repo.CreateItem(ctx, widgetParams())
	require.NoError(t, err)

	updated, ok, err := repo.UpdateItem(ctx, created.ID, repository.ItemParams{
		Name:     "Gadget",
		Quantity: 3,
		Price:    199,
		Supplier: "Globex",
	})
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Gadget", updated.Name)
	assert.Equal(t, 3, updated.Quantity)
	assert.Equal(t, model.Cents(199), updated.Price)
	assert.Equal(t, "Globex", updated.Supplier)

	got, ok, err := repo.GetItem(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, updated, got)
}

func TestMemoryItemRepositoryUpdateAbsent(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryItemRepository()

	_, ok, err := repo.UpdateItem(ctx, 42, widgetParams())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryItemRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryItemRepository()

	created, err := repo.CreateItem(ctx, widgetParams())
	require.NoError(t, err)

	deleted, err := repo.DeleteItem(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, ok, err := repo.GetItem(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	deleted, err = repo.DeleteItem(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMemoryItemRepositoryListTracksCreatesAndDeletes(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryItemRepository()

	items, err := repo.ListItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	var ids []int64
	for range 5 {
		item, err := repo.CreateItem(ctx, widgetParams())
		require.NoError(t, err)
		ids = append(ids, item.ID)
	}

	items, err = repo.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 5)

	// Insertion order.
	for i, item := range items {
		assert.Equal(t, ids[i], item.ID)
	}

	for _, id := range ids[:2] {
		deleted, err := repo.DeleteItem(ctx, id)
		require.NoError(t, err)
		require.True(t, deleted)
	}

	items, err = repo.ListItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestMemoryItemRepositoryConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryItemRepository()

	const n = 100
	var (
		mu  sync.Mutex
		ids = make(map[int64]struct{}, n)
		wg  sync.WaitGroup
	)

	for range n {
		wg.Go(func() {
			item, err := repo.CreateItem(ctx, widgetParams())
			assert.NoError(t, err)

			mu.Lock()
			ids[item.ID] = struct{}{}
			mu.Unlock()
		})
	}
	wg.Wait()

	// Every create got a distinct id.
	assert.Len(t, ids, n)
}
