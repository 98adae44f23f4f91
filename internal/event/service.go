package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Chinmayee2524/inventory-tracker/internal/storage/mq"
)

// Service consumes item lifecycle events from the message queue.
type Service struct {
	logger     *slog.Logger
	mqConsumer mq.Consumer
}

// New creates a new event service.
func New(
	logger *slog.Logger,
	mqConsumer mq.Consumer,
) *Service {
	return &Service{
		logger:     logger.With(slog.String("service", "event")),
		mqConsumer: mqConsumer,
	}
}

type CleanupFunc func()

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	if err := registerHandler(s.mqConsumer, TopicItemCreated, s.handleItemCreatedEvent); err != nil {
		return nil, err
	}
	if err := registerHandler(s.mqConsumer, TopicItemUpdated, s.handleItemUpdatedEvent); err != nil {
		return nil, err
	}
	if err := registerHandler(s.mqConsumer, TopicItemDeleted, s.handleItemDeletedEvent); err != nil {
		return nil, err
	}

	mqCleanup, err := s.mqConsumer.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("run mq consumer: %w", err)
	}

	return CleanupFunc(mqCleanup), nil
}

// registerHandler adapts a typed event handler into a raw message handler.
func registerHandler[T any](consumer mq.Consumer, topic string, handle func(ctx context.Context, ev T) error) error {
	if err := consumer.RegisterHandler(topic, func(ctx context.Context, topic string, payload []byte) error {
		var ev T
		if err := json.Unmarshal(payload, &ev); err != nil {
			return fmt.Errorf("unmarshal %s event: %w", topic, err)
		}

		if err := handle(ctx, ev); err != nil {
			return fmt.Errorf("handle %s event: %w", topic, err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("register %s event handler: %w", topic, err)
	}

	return nil
}
