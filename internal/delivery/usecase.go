package delivery

import (
	"context"

	"github.com/tiffinstash/delivery-service/internal/delivery/dto"
	"github.com/tiffinstash/delivery-service/internal/model"
)

type UseCase interface {
	// UploadBatch reconciles transformed rows into the store and
	// reports per-row outcomes; a failing row never aborts the batch.
	UploadBatch(ctx context.Context, rows []model.DeliveryRow) (*dto.UploadResult, error)

	// UpdateRow applies a single-row edit guarded by the caller's
	// last-observed field snapshot.
	UpdateRow(ctx context.Context, input *dto.RowUpdateInput) error

	AppendSkip(ctx context.Context, input *dto.SkipInput) (*dto.SkipResult, error)

	ListDeliveries(ctx context.Context) ([]model.DeliveryRow, error)
}
