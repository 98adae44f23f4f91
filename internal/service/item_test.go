package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chinmayee2524/inventory-tracker/internal/repository"
	"github.com/Chinmayee2524/inventory-tracker/internal/service"
	"github.com/Chinmayee2524/inventory-tracker/pkg/zerror"
)

func newItemService() service.ItemService {
	return service.NewItemService(repository.NewMemoryItemRepository())
}

func TestItemServiceLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newItemService()

	created, err := svc.CreateItem(ctx, service.ItemParams{
		Name:     "Widget",
		Quantity: 5,
		Price:    250,
		Supplier: "Acme",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := svc.GetItem(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := svc.UpdateItem(ctx, created.ID, service.ItemParams{
		Name:     "Widget",
		Quantity: 3,
		Price:    250,
		Supplier: "Acme",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 3, updated.Quantity)

	require.NoError(t, svc.DeleteItem(ctx, created.ID))

	_, err = svc.GetItem(ctx, created.ID)
	assertNotFound(t, err)
}

func TestItemServiceAbsentIDsReportNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newItemService()

	_, err := svc.GetItem(ctx, 42)
	assertNotFound(t, err)

	_, err = svc.UpdateItem(ctx, 42, service.ItemParams{Name: "Widget", Supplier: "Acme"})
	assertNotFound(t, err)

	err = svc.DeleteItem(ctx, 42)
	assertNotFound(t, err)
}

func assertNotFound(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)

	var zErr zerror.ZError
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, zerror.StatusNotFound, zErr.Status())
	assert.Equal(t, "ITEM_NOT_FOUND", zErr.Code())
}
