package orders

import (
	"context"
	"time"

	"github.com/tiffinstash/delivery-service/internal/delivery/dto"
	"github.com/tiffinstash/delivery-service/internal/model"
)

type UseCase interface {
	// Ingest runs a materialized batch of raw order lines through the
	// transformation pipeline and reconciles the result into the store.
	Ingest(ctx context.Context, lines []model.OrderLine) (*dto.UploadResult, error)

	// IngestFrom pulls a date range from an upstream source and ingests
	// it as one batch.
	IngestFrom(ctx context.Context, src Source, from, to time.Time) (*dto.UploadResult, error)
}
