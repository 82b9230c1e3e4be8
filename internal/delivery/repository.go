package delivery

import (
	"context"
	"errors"

	"github.com/tiffinstash/delivery-service/internal/model"
)

var (
	// ErrNotFound: no row exists for the composite key.
	ErrNotFound = errors.New("delivery row not found")
	// ErrConflict: a conditional update's fingerprint no longer matches
	// the stored row; the caller must re-fetch and retry.
	ErrConflict = errors.New("row changed since it was read")
	// ErrSkipCapacity: all twenty skip slots are occupied.
	ErrSkipCapacity = errors.New("skip capacity full for this order/sku")
)

// Repository is the durable store for delivery rows, keyed by
// (order_id, sku). An empty SKU is an explicit no-SKU key, distinct
// from every concrete SKU value. Each call commits independently, which
// is what gives the reconciler its per-row isolation.
type Repository interface {
	FindByKey(ctx context.Context, orderID, sku string) (*model.DeliveryRow, error)
	Insert(ctx context.Context, row *model.DeliveryRow) error
	Update(ctx context.Context, orderID, sku string, fields map[string]string) error

	// ConditionalUpdate applies fields only while every fingerprint
	// column still holds its last-observed value; otherwise ErrConflict.
	ConditionalUpdate(ctx context.Context, orderID, sku string, fingerprint, fields map[string]string) error

	// AppendSkip writes date into the first unused skip slot and
	// returns the 1-based slot number, or ErrSkipCapacity.
	AppendSkip(ctx context.Context, orderID, sku, date string) (int, error)

	List(ctx context.Context, statuses []model.OrderStatus) ([]model.DeliveryRow, error)

	// Delete is an administrative action; no pipeline path calls it.
	Delete(ctx context.Context, orderID, sku string) error
}
