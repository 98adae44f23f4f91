package event

import "github.com/Chinmayee2524/inventory-tracker/internal/model"

// Item lifecycle topics.
const (
	TopicItemCreated = "inventory.item.created"
	TopicItemUpdated = "inventory.item.updated"
	TopicItemDeleted = "inventory.item.deleted"
)

type ItemCreatedEvent struct {
	ItemID   int64       `json:"item_id"`
	Name     string      `json:"name"`
	Quantity int         `json:"quantity"`
	Price    model.Cents `json:"price"`
	Supplier string      `json:"supplier"`
}

type ItemUpdatedEvent struct {
	ItemID   int64       `json:"item_id"`
	Name     string      `json:"name"`
	Quantity int         `json:"quantity"`
	Price    model.Cents `json:"price"`
	Supplier string      `json:"supplier"`
}

type ItemDeletedEvent struct {
	ItemID int64 `json:"item_id"`
}
