package event

import (
	"context"
	"log/slog"
)

func (s *Service) handleItemCreatedEvent(ctx context.Context, ev ItemCreatedEvent) error {
	s.logger.InfoContext(ctx, "item created",
		slog.Int64("item_id", ev.ItemID),
		slog.String("name", ev.Name),
		slog.Int("quantity", ev.Quantity),
		slog.String("price", ev.Price.String()),
		slog.String("supplier", ev.Supplier),
	)
	return nil
}

func (s *Service) handleItemUpdatedEvent(ctx context.Context, ev ItemUpdatedEvent) error {
	s.logger.InfoContext(ctx, "item updated",
		slog.Int64("item_id", ev.ItemID),
		slog.String("name", ev.Name),
		slog.Int("quantity", ev.Quantity),
		slog.String("price", ev.Price.String()),
		slog.String("supplier", ev.Supplier),
	)
	return nil
}

func (s *Service) handleItemDeletedEvent(ctx context.Context, ev ItemDeletedEvent) error {
	s.logger.InfoContext(ctx, "item deleted",
		slog.Int64("item_id", ev.ItemID),
	)
	return nil
}
