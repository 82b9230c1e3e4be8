package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tiffinstash/delivery-service/internal/delivery"
	"github.com/tiffinstash/delivery-service/internal/delivery/dto"
	"github.com/tiffinstash/delivery-service/internal/model"
	"github.com/tiffinstash/delivery-service/internal/orders"
	"github.com/tiffinstash/delivery-service/pkg/logger"
)

type DeliveryHandler struct {
	deliveryUC delivery.UseCase
	orderUC    orders.UseCase
	validate   *validator.Validate
	logger     logger.ZapLogger
}

func NewDeliveryHandler(deliveryUC delivery.UseCase, orderUC orders.UseCase, log logger.ZapLogger) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryUC: deliveryUC,
		orderUC:    orderUC,
		validate:   validator.New(),
		logger:     log,
	}
}

func (h *DeliveryHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api/v1/deliveries")
	api.Post("/ingest", h.IngestOrders)
	api.Post("/upload", h.UploadBatch)
	api.Post("/row", h.UpdateRow)
	api.Post("/skip", h.AppendSkip)
	api.Get("/", h.ListDeliveries)
}

// IngestOrders accepts raw order lines, runs them through the
// transformation pipeline and reconciles the result.
func (h *DeliveryHandler) IngestOrders(c *fiber.Ctx) error {
	var lines []model.OrderLine
	if err := c.BodyParser(&lines); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.orderUC.Ingest(c.UserContext(), lines)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// UploadBatch reconciles already-transformed delivery rows, for callers
// that run the pipeline themselves.
func (h *DeliveryHandler) UploadBatch(c *fiber.Ctx) error {
	var rows []model.DeliveryRow
	if err := c.BodyParser(&rows); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.deliveryUC.UploadBatch(c.UserContext(), rows)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *DeliveryHandler) UpdateRow(c *fiber.Ctx) error {
	var input dto.RowUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.deliveryUC.UpdateRow(c.UserContext(), &input); err != nil {
		return h.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *DeliveryHandler) AppendSkip(c *fiber.Ctx) error {
	var input dto.SkipInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	result, err := h.deliveryUC.AppendSkip(c.UserContext(), &input)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *DeliveryHandler) ListDeliveries(c *fiber.Ctx) error {
	rows, err := h.deliveryUC.ListDeliveries(c.UserContext())
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"count":      len(rows),
		"deliveries": rows,
	})
}

func (h *DeliveryHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, delivery.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, delivery.ErrConflict):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, delivery.ErrSkipCapacity):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		h.logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "internal server error")
	}
}
