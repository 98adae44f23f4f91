package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Chinmayee2524/inventory-tracker/internal/storage/db"
)

type CreateOutboxMsgParams struct {
	Topic        string
	Headers      map[string]string
	Payload      json.RawMessage
	PartitionKey *string
}

type ListUnprocessedOutboxMsgsParams struct {
	BatchSize int32
}

type ListUnprocessedOutboxMsgsResult struct {
	ID           uuid.UUID
	Topic        string
	Headers      map[string]string
	Payload      json.RawMessage
	PartitionKey *string
}

type BulkUpdateOutboxMsgsItem struct {
	ID    uuid.UUID
	Error *string
}

type BulkUpdateOutboxMsgsParams struct {
	Items []BulkUpdateOutboxMsgsItem
}

type OutboxMsgRepository interface {
	WithDB(db db.DB) OutboxMsgRepository
	CreateOutboxMsg(ctx context.Context, params CreateOutboxMsgParams) error
	ListUnprocessedOutboxMsgs(ctx context.Context, params ListUnprocessedOutboxMsgsParams) ([]ListUnprocessedOutboxMsgsResult, error)
	BulkUpdateOutboxMsgs(ctx context.Context, params BulkUpdateOutboxMsgsParams) error
}

var _ OutboxMsgRepository = (*outboxMsgRepository)(nil)

type outboxMsgRepository struct {
	db db.DB
}

func NewOutboxMsgRepository(db db.DB) OutboxMsgRepository {
	return &outboxMsgRepository{db: db}
}

func (r outboxMsgRepository) WithDB(db db.DB) OutboxMsgRepository {
	return &outboxMsgRepository{db: db}
}

func (r outboxMsgRepository) CreateOutboxMsg(ctx context.Context, params CreateOutboxMsgParams) error {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate uuid v7: %w", err)
	}

	headers, err := json.Marshal(params.Headers)
	if err != nil {
		return fmt.Errorf("marshal headers: %w", err)
	}

	if _, err := r.db.Exec(ctx,
		`INSERT INTO outbox_msgs (id, topic, headers, payload, partition_key)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, params.Topic, headers, params.Payload, params.PartitionKey,
	); err != nil {
		return fmt.Errorf("insert outbox msg: %w", err)
	}

	return nil
}

func (r outboxMsgRepository) ListUnprocessedOutboxMsgs(ctx context.Context, params ListUnprocessedOutboxMsgsParams) ([]ListUnprocessedOutboxMsgsResult, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, topic, headers, payload, partition_key
		 FROM outbox_msgs
		 WHERE processed_at IS NULL
		 ORDER BY created_at
		 LIMIT $1
		 FOR UPDATE SKIP LOCKED`,
		params.BatchSize,
	)
	if err != nil {
		return nil, fmt.Errorf("query unprocessed outbox msgs: %w", err)
	}
	defer rows.Close()

	var results []ListUnprocessedOutboxMsgsResult
	for rows.Next() {
		var (
			res     ListUnprocessedOutboxMsgsResult
			headers []byte
		)
		if err := rows.Scan(&res.ID, &res.Topic, &headers, &res.Payload, &res.PartitionKey); err != nil {
			return nil, fmt.Errorf("scan outbox msg: %w", err)
		}
		if err := json.Unmarshal(headers, &res.Headers); err != nil {
			return nil, fmt.Errorf("unmarshal headers: %w", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outbox msgs: %w", err)
	}

	return results, nil
}

func (r outboxMsgRepository) BulkUpdateOutboxMsgs(ctx context.Context, params BulkUpdateOutboxMsgsParams) error {
	if len(params.Items) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, item := range params.Items {
		if item.Error != nil {
			batch.Queue(
				`UPDATE outbox_msgs SET error = $2 WHERE id = $1`,
				item.ID, *item.Error,
			)
			continue
		}
		batch.Queue(
			`UPDATE outbox_msgs SET processed_at = now(), error = NULL WHERE id = $1`,
			item.ID,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	var errs []error
	for range params.Items {
		if _, err := results.Exec(); err != nil {
			errs = append(errs, fmt.Errorf("update outbox msg: %w", err))
		}
	}

	return errors.Join(errs...)
}
