package usecase

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tiffinstash/delivery-service/internal/delivery"
	"github.com/tiffinstash/delivery-service/internal/delivery/dto"
	"github.com/tiffinstash/delivery-service/internal/metrics"
	"github.com/tiffinstash/delivery-service/internal/model"
	"github.com/tiffinstash/delivery-service/pkg/cache"
	"github.com/tiffinstash/delivery-service/pkg/logger"
)

const (
	listCacheKey     = "deliveries:list:active"
	listCachePattern = "deliveries:list:*"
	listCacheTTL     = 5 * time.Minute
)

type deliveryUseCase struct {
	repo    delivery.Repository
	cache   *cache.RedisClient
	metrics *metrics.Registry
	logger  logger.ZapLogger
}

func NewDeliveryUseCase(repo delivery.Repository, cache *cache.RedisClient, m *metrics.Registry, log logger.ZapLogger) delivery.UseCase {
	return &deliveryUseCase{
		repo:    repo,
		cache:   cache,
		metrics: m,
		logger:  log,
	}
}

// UploadBatch merges transformed rows into the store one at a time.
// Rows already stored with identical field values are skipped, changed
// rows are updated, unknown keys are inserted. A row's failure is
// counted and logged but never stops the rest of the batch.
func (uc *deliveryUseCase) UploadBatch(ctx context.Context, rows []model.DeliveryRow) (*dto.UploadResult, error) {
	started := time.Now()
	result := &dto.UploadResult{BatchID: uuid.New().String()}

	for i := range rows {
		row := rows[i]
		row.OrderID = strings.TrimSpace(row.OrderID)
		if row.OrderID == "" {
			uc.logger.Warn("dropping row without order id", zap.String("batch_id", result.BatchID))
			result.Errors++
			continue
		}
		row.Date = normalizeOrderDate(row.Date, started)

		outcome, err := uc.reconcileRow(ctx, &row)
		if err != nil {
			result.Errors++
			uc.logger.Error("failed to reconcile row",
				zap.String("batch_id", result.BatchID),
				zap.String("order_id", row.OrderID),
				zap.String("sku", row.SKU),
				zap.Error(err),
			)
			continue
		}
		switch outcome {
		case outcomeInserted:
			result.Inserted++
		case outcomeUpdated:
			result.Updated++
		case outcomeSkipped:
			result.Skipped++
		}
	}

	if uc.metrics != nil {
		uc.metrics.RowsInserted.Add(float64(result.Inserted))
		uc.metrics.RowsUpdated.Add(float64(result.Updated))
		uc.metrics.RowsSkipped.Add(float64(result.Skipped))
		uc.metrics.RowsErrored.Add(float64(result.Errors))
		uc.metrics.BatchSeconds.Observe(time.Since(started).Seconds())
	}

	if result.Inserted > 0 || result.Updated > 0 {
		uc.invalidateListCache(ctx)
	}

	uc.logger.Info("batch reconciled",
		zap.String("batch_id", result.BatchID),
		zap.Int("inserted", result.Inserted),
		zap.Int("updated", result.Updated),
		zap.Int("skipped", result.Skipped),
		zap.Int("errors", result.Errors),
	)
	return result, nil
}

type rowOutcome int

const (
	outcomeInserted rowOutcome = iota
	outcomeUpdated
	outcomeSkipped
)

func (uc *deliveryUseCase) reconcileRow(ctx context.Context, row *model.DeliveryRow) (rowOutcome, error) {
	existing, err := uc.repo.FindByKey(ctx, row.OrderID, row.SKU)
	if err != nil {
		return 0, err
	}
	if existing == nil {
		if err := uc.repo.Insert(ctx, row); err != nil {
			return 0, err
		}
		return outcomeInserted, nil
	}
	if model.FieldsEqual(existing, row) {
		return outcomeSkipped, nil
	}
	if err := uc.repo.Update(ctx, row.OrderID, row.SKU, row.FieldMap()); err != nil {
		return 0, err
	}
	return outcomeUpdated, nil
}

// UpdateRow applies a direct user edit, guarded by the full field
// snapshot the editor last saw. A fingerprint mismatch surfaces as
// delivery.ErrConflict so the caller can re-fetch and retry.
func (uc *deliveryUseCase) UpdateRow(ctx context.Context, input *dto.RowUpdateInput) error {
	updates := make(map[string]string, len(input.Updates))
	for k, v := range input.Updates {
		if k == "" || k == "order_id" || k == "sku" {
			continue
		}
		updates[k] = v
	}
	if len(updates) == 0 {
		return nil
	}

	if err := uc.repo.ConditionalUpdate(ctx, input.OrderID, input.SKU, input.Original, updates); err != nil {
		return err
	}

	uc.invalidateListCache(ctx)
	return nil
}

func (uc *deliveryUseCase) AppendSkip(ctx context.Context, input *dto.SkipInput) (*dto.SkipResult, error) {
	slot, err := uc.repo.AppendSkip(ctx, input.OrderID, input.SKU, input.Date)
	if err != nil {
		return nil, err
	}

	uc.invalidateListCache(ctx)
	return &dto.SkipResult{Slot: slot, Column: "SKIP" + strconv.Itoa(slot)}, nil
}

func (uc *deliveryUseCase) ListDeliveries(ctx context.Context) ([]model.DeliveryRow, error) {
	if uc.cache != nil {
		if val, err := uc.cache.Client.Get(ctx, listCacheKey).Result(); err == nil {
			var cached []model.DeliveryRow
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	rows, err := uc.repo.List(ctx, model.AllStatuses())
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(rows); err == nil {
			uc.cache.Client.Set(ctx, listCacheKey, data, listCacheTTL)
		}
	}
	return rows, nil
}

func (uc *deliveryUseCase) invalidateListCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	keys, err := uc.cache.Client.Keys(ctx, listCachePattern).Result()
	if err == nil && len(keys) > 0 {
		uc.cache.Client.Del(ctx, keys...)
	}
}

// normalizeOrderDate rewrites DD-MMM order dates (e.g. "30-Jan") to ISO
// so the store holds one date format. The reference year comes from the
// batch clock.
func normalizeOrderDate(v string, ref time.Time) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return v
	}
	parsed, err := time.Parse("2-Jan", s)
	if err != nil {
		return v
	}
	return time.Date(ref.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}
