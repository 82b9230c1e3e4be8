package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tiffinstash/delivery-service/internal/delivery"
	"github.com/tiffinstash/delivery-service/internal/delivery/dto"
	"github.com/tiffinstash/delivery-service/internal/model"
	"github.com/tiffinstash/delivery-service/internal/orders"
	"github.com/tiffinstash/delivery-service/internal/pipeline"
	"github.com/tiffinstash/delivery-service/pkg/logger"
)

type orderUseCase struct {
	pipeline   *pipeline.Pipeline
	deliveries delivery.UseCase
	logger     logger.ZapLogger
}

func NewOrderUseCase(p *pipeline.Pipeline, deliveries delivery.UseCase, log logger.ZapLogger) orders.UseCase {
	return &orderUseCase{
		pipeline:   p,
		deliveries: deliveries,
		logger:     log,
	}
}

func (uc *orderUseCase) Ingest(ctx context.Context, lines []model.OrderLine) (*dto.UploadResult, error) {
	rows := uc.pipeline.Run(lines)
	result, err := uc.deliveries.UploadBatch(ctx, rows)
	if err != nil {
		return nil, fmt.Errorf("reconcile ingested rows: %w", err)
	}
	return result, nil
}

func (uc *orderUseCase) IngestFrom(ctx context.Context, src orders.Source, from, to time.Time) (*dto.UploadResult, error) {
	lines, err := src.FetchOrders(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}

	uc.logger.Info("fetched order lines from source",
		zap.Time("from", from),
		zap.Time("to", to),
		zap.Int("lines", len(lines)),
	)
	return uc.Ingest(ctx, lines)
}
