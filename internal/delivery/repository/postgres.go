package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/tiffinstash/delivery-service/internal/delivery"
	"github.com/tiffinstash/delivery-service/internal/model"
)

// PGRepository stores delivery rows in a Postgres table. Every method
// issues a single statement, so each call commits on its own; the
// reconciler relies on that for per-row isolation.
type PGRepository struct {
	DB    *sqlx.DB
	table string

	builder sq.StatementBuilderType
}

func NewPGRepository(db *sqlx.DB, table string) *PGRepository {
	return &PGRepository{
		DB:      db,
		table:   table,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *PGRepository) FindByKey(ctx context.Context, orderID, sku string) (*model.DeliveryRow, error) {
	query, args, err := r.builder.
		Select(model.AllColumns...).
		From(r.table).
		Where(sq.Eq{"order_id": orderID, "sku": sku}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find query: %w", err)
	}

	var row model.DeliveryRow
	if err := r.DB.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find delivery row: %w", err)
	}
	return &row, nil
}

func (r *PGRepository) Insert(ctx context.Context, row *model.DeliveryRow) error {
	fields := row.FieldMap()
	values := make([]interface{}, 0, len(model.AllColumns))
	values = append(values, row.OrderID, row.SKU)
	for _, col := range model.DataColumns {
		values = append(values, fields[col])
	}

	query, args, err := r.builder.
		Insert(r.table).
		Columns(model.AllColumns...).
		Values(values...).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert delivery row: %w", err)
	}
	return nil
}

func (r *PGRepository) Update(ctx context.Context, orderID, sku string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}

	query, args, err := r.builder.
		Update(r.table).
		SetMap(toSetMap(fields)).
		Where(sq.Eq{"order_id": orderID, "sku": sku}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update delivery row: %w", err)
	}
	return nil
}

func (r *PGRepository) ConditionalUpdate(ctx context.Context, orderID, sku string, fingerprint, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}

	where := sq.Eq{"order_id": orderID, "sku": sku}
	for col, val := range fingerprint {
		if col == "order_id" || col == "sku" {
			continue
		}
		where[col] = val
	}

	query, args, err := r.builder.
		Update(r.table).
		SetMap(toSetMap(fields)).
		Where(where).
		ToSql()
	if err != nil {
		return fmt.Errorf("build conditional update query: %w", err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("conditional update: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("conditional update rows affected: %w", err)
	}
	if affected == 0 {
		// Either the row is gone or it changed under the editor; both
		// mean the caller's snapshot is stale.
		return delivery.ErrConflict
	}
	return nil
}

func (r *PGRepository) AppendSkip(ctx context.Context, orderID, sku, date string) (int, error) {
	row, err := r.FindByKey(ctx, orderID, sku)
	if err != nil {
		return 0, err
	}
	if row == nil {
		return 0, delivery.ErrNotFound
	}

	slot := 0
	for i, v := range row.SkipSlots() {
		if model.EmptySlot(v) {
			slot = i + 1
			break
		}
	}
	if slot == 0 {
		return 0, delivery.ErrSkipCapacity
	}

	query, args, err := r.builder.
		Update(r.table).
		Set("skip"+strconv.Itoa(slot), date).
		Where(sq.Eq{"order_id": orderID, "sku": sku}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build skip update query: %w", err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("append skip date: %w", err)
	}
	return slot, nil
}

func (r *PGRepository) List(ctx context.Context, statuses []model.OrderStatus) ([]model.DeliveryRow, error) {
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}

	query, args, err := r.builder.
		Select(model.AllColumns...).
		From(r.table).
		Where(sq.Or{sq.Eq{"status": values}, sq.Eq{"status": nil}}).
		OrderBy("order_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []model.DeliveryRow
	if err := r.DB.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list delivery rows: %w", err)
	}
	return rows, nil
}

func (r *PGRepository) Delete(ctx context.Context, orderID, sku string) error {
	query, args, err := r.builder.
		Delete(r.table).
		Where(sq.Eq{"order_id": orderID, "sku": sku}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete delivery row: %w", err)
	}
	return nil
}

func toSetMap(fields map[string]string) map[string]interface{} {
	m := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		m[k] = v
	}
	return m
}
