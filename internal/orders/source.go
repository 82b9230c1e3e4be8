package orders

import (
	"context"
	"time"

	"github.com/tiffinstash/delivery-service/internal/model"
)

// Source fetches raw order lines from an upstream store system. The
// whole range is materialized before the pipeline touches it; the
// pipeline never streams.
type Source interface {
	FetchOrders(ctx context.Context, from, to time.Time) ([]model.OrderLine, error)
}
