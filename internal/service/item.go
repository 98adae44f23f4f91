package service

import (
	"context"
	"fmt"

	"github.com/Chinmayee2524/inventory-tracker/internal/apperr"
	"github.com/Chinmayee2524/inventory-tracker/internal/model"
	"github.com/Chinmayee2524/inventory-tracker/internal/repository"
)

// ItemParams carries the validated item fields for create and update.
type ItemParams struct {
	Name     string
	Quantity int
	Price    model.Cents
	Supplier string
}

type ItemService interface {
	ListItems(ctx context.Context) ([]model.Item, error)
	GetItem(ctx context.Context, id int64) (model.Item, error)
	CreateItem(ctx context.Context, params ItemParams) (model.Item, error)
	UpdateItem(ctx context.Context, id int64, params ItemParams) (model.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

type itemService struct {
	itemRepo repository.ItemRepository
}

func NewItemService(itemRepo repository.ItemRepository) ItemService {
	return &itemService{
		itemRepo: itemRepo,
	}
}

func (s *itemService) ListItems(ctx context.Context) ([]model.Item, error) {
	items, err := s.itemRepo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("item repository list items: %w", err)
	}

	return items, nil
}

func (s *itemService) GetItem(ctx context.Context, id int64) (model.Item, error) {
	item, ok, err := s.itemRepo.GetItem(ctx, id)
	if err != nil {
		return model.Item{}, fmt.Errorf("item repository get item: %w", err)
	}
	if !ok {
		return model.Item{}, apperr.ErrItemNotFound
	}

	return item, nil
}

func (s *itemService) CreateItem(ctx context.Context, params ItemParams) (model.Item, error) {
	item, err := s.itemRepo.CreateItem(ctx, repository.ItemParams(params))
	if err != nil {
		return model.Item{}, fmt.Errorf("item repository create item: %w", err)
	}

	return item, nil
}

func (s *itemService) UpdateItem(ctx context.Context, id int64, params ItemParams) (model.Item, error) {
	item, ok, err := s.itemRepo.UpdateItem(ctx, id, repository.ItemParams(params))
	if err != nil {
		return model.Item{}, fmt.Errorf("item repository update item: %w", err)
	}
	if !ok {
		return model.Item{}, apperr.ErrItemNotFound
	}

	return item, nil
}

func (s *itemService) DeleteItem(ctx context.Context, id int64) error {
	ok, err := s.itemRepo.DeleteItem(ctx, id)
	if err != nil {
		return fmt.Errorf("item repository delete item: %w", err)
	}
	if !ok {
		return apperr.ErrItemNotFound
	}

	return nil
}
