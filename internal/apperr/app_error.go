package apperr

import "github.com/Chinmayee2524/inventory-tracker/pkg/zerror"

var (
	// ErrInvalidItemID is returned when a path id is not a positive integer.
	ErrInvalidItemID = zerror.NewBadRequest("INVALID_ITEM_ID", "Invalid item ID")

	// ErrItemNotFound is returned when a well-formed id matches no item.
	ErrItemNotFound = zerror.NewNotFound("ITEM_NOT_FOUND", "Item not found")

	// ValidationErr wraps request body validation failures.
	ValidationErr = zerror.NewValidationFailed("VALIDATION_FAILED", "Invalid item data")
)
