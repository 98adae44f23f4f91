package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Chinmayee2524/inventory-tracker/internal/event"
	"github.com/Chinmayee2524/inventory-tracker/internal/model"
	"github.com/Chinmayee2524/inventory-tracker/internal/storage/db"
	"github.com/Chinmayee2524/inventory-tracker/pkg/outbox"
	"github.com/Chinmayee2524/inventory-tracker/pkg/ptr"
)

var _ ItemRepository = (*PostgresItemRepository)(nil)

// PostgresItemRepository stores items in Postgres. Ids come from a
// BIGSERIAL column, so they are monotonic and never reused. Each mutation
// writes an item lifecycle event to the outbox in the same transaction.
type PostgresItemRepository struct {
	db            db.DB
	outboxMsgRepo OutboxMsgRepository
}

func NewPostgresItemRepository(db db.DB, outboxMsgRepo OutboxMsgRepository) *PostgresItemRepository {
	return &PostgresItemRepository{
		db:            db,
		outboxMsgRepo: outboxMsgRepo,
	}
}

func (r *PostgresItemRepository) ListItems(ctx context.Context) ([]model.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, quantity, price, supplier FROM items ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	items := make([]model.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}

	return items, nil
}

func (r *PostgresItemRepository) GetItem(ctx context.Context, id int64) (model.Item, bool, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, quantity, price, supplier FROM items WHERE id = $1`, id,
	)

	item, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Item{}, false, nil
	}
	if err != nil {
		return model.Item{}, false, err
	}

	return item, true, nil
}

func (r *PostgresItemRepository) CreateItem(ctx context.Context, params ItemParams) (model.Item, error) {
	item := model.Item{
		Name:     params.Name,
		Quantity: params.Quantity,
		Price:    params.Price,
		Supplier: params.Supplier,
	}

	if err := r.db.WithTx(ctx, func(tx db.DB) error {
		if err := tx.QueryRow(ctx,
			`INSERT INTO items (name, quantity, price, supplier)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id`,
			params.Name, params.Quantity, centsToNumeric(params.Price), params.Supplier,
		).Scan(&item.ID); err != nil {
			return fmt.Errorf("insert item: %w", err)
		}

		return r.recordEvent(ctx, tx, event.TopicItemCreated, item.ID, event.ItemCreatedEvent{
			ItemID:   item.ID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Supplier: item.Supplier,
		})
	}); err != nil {
		return model.Item{}, fmt.Errorf("db with tx: %w", err)
	}

	return item, nil
}

func (r *PostgresItemRepository) UpdateItem(ctx context.Context, id int64, params ItemParams) (model.Item, bool, error) {
	item := model.Item{
		ID:       id,
		Name:     params.Name,
		Quantity: params.Quantity,
		Price:    params.Price,
		Supplier: params.Supplier,
	}

	found := false
	if err := r.db.WithTx(ctx, func(tx db.DB) error {
		tag, err := tx.Exec(ctx,
			`UPDATE items SET name = $2, quantity = $3, price = $4, supplier = $5
			 WHERE id = $1`,
			id, params.Name, params.Quantity, centsToNumeric(params.Price), params.Supplier,
		)
		if err != nil {
			return fmt.Errorf("update item: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		found = true

		return r.recordEvent(ctx, tx, event.TopicItemUpdated, id, event.ItemUpdatedEvent{
			ItemID:   item.ID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Supplier: item.Supplier,
		})
	}); err != nil {
		return model.Item{}, false, fmt.Errorf("db with tx: %w", err)
	}

	if !found {
		return model.Item{}, false, nil
	}
	return item, true, nil
}

func (r *PostgresItemRepository) DeleteItem(ctx context.Context, id int64) (bool, error) {
	found := false
	if err := r.db.WithTx(ctx, func(tx db.DB) error {
		tag, err := tx.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		found = true

		return r.recordEvent(ctx, tx, event.TopicItemDeleted, id, event.ItemDeletedEvent{
			ItemID: id,
		})
	}); err != nil {
		return false, fmt.Errorf("db with tx: %w", err)
	}

	return found, nil
}

func (r *PostgresItemRepository) recordEvent(ctx context.Context, tx db.DB, topic string, itemID int64, ev any) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := r.outboxMsgRepo.
		WithDB(tx).
		CreateOutboxMsg(ctx, CreateOutboxMsgParams{
			Topic:        topic,
			Headers:      outbox.BuildHeaders(ctx),
			Payload:      payload,
			PartitionKey: ptr.New(strconv.FormatInt(itemID, 10)),
		}); err != nil {
		return fmt.Errorf("create outbox msg: %w", err)
	}

	return nil
}

func scanItem(row pgx.Row) (model.Item, error) {
	var (
		item  model.Item
		price pgtype.Numeric
	)
	if err := row.Scan(&item.ID, &item.Name, &item.Quantity, &price, &item.Supplier); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Item{}, err
		}
		return model.Item{}, fmt.Errorf("scan item: %w", err)
	}

	cents, err := numericToCents(price)
	if err != nil {
		return model.Item{}, err
	}
	item.Price = cents

	return item, nil
}

func centsToNumeric(c model.Cents) pgtype.Numeric {
	return pgtype.Numeric{
		Int:   big.NewInt(int64(c)),
		Exp:   -2,
		Valid: true,
	}
}

func numericToCents(n pgtype.Numeric) (model.Cents, error) {
	f, err := n.Float64Value()
	if err != nil {
		return 0, fmt.Errorf("convert price to float64: %w", err)
	}
	return model.CentsFromFloat(f.Float64), nil
}
