package listener

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/tiffinstash/delivery-service/internal/model"
	"github.com/tiffinstash/delivery-service/internal/orders"
	"github.com/tiffinstash/delivery-service/pkg/broker"
	"github.com/tiffinstash/delivery-service/pkg/logger"
)

type OrderListener struct {
	consumer *broker.KafkaConsumer
	uc       orders.UseCase
	logger   logger.ZapLogger
}

func NewOrderListener(consumer *broker.KafkaConsumer, uc orders.UseCase, logger logger.ZapLogger) *OrderListener {
	return &OrderListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
	}
}

func (l *OrderListener) Start(ctx context.Context) {
	l.logger.Info("Starting Order Kafka Listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping Order Kafka Listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				// Don't log context canceled error as error
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				time.Sleep(1 * time.Second)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type OrderCreatedEvent struct {
	EventID   string       `json:"event_id"`
	EventType string       `json:"event_type"`
	Payload   OrderPayload `json:"payload"`
	Timestamp time.Time    `json:"timestamp"`
}

type OrderPayload struct {
	Lines []model.OrderLine `json:"lines"`
}

func (l *OrderListener) processMessage(ctx context.Context, value []byte) {
	var event OrderCreatedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != "OrderCreated" {
		return
	}

	l.logger.Info("Processing OrderCreated event",
		zap.String("event_id", event.EventID),
		zap.Int("lines", len(event.Payload.Lines)),
	)

	result, err := l.uc.Ingest(ctx, event.Payload.Lines)
	if err != nil {
		l.logger.Error("Failed to ingest order lines",
			zap.String("event_id", event.EventID),
			zap.Error(err),
		)
		return
	}

	l.logger.Info("Ingested OrderCreated event",
		zap.String("event_id", event.EventID),
		zap.String("batch_id", result.BatchID),
		zap.Int("inserted", result.Inserted),
		zap.Int("updated", result.Updated),
		zap.Int("skipped", result.Skipped),
		zap.Int("errors", result.Errors),
	)
}
