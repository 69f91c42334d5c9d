package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"pedidos/internal/domain"
	"pedidos/internal/dto"
	apperrors "pedidos/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderUseCase interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	UpdateOrder(ctx context.Context, orderID string, order *domain.Order) (*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID string) (bool, error)
}

type OrderController struct {
	useCase OrderUseCase
	logger  *zap.Logger
}

func NewOrderController(useCase OrderUseCase, logger *zap.Logger) *OrderController {
	return &OrderController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	order, ok := c.decodeOrder(w, r, logger)
	if !ok {
		return
	}

	created, err := c.useCase.CreateOrder(r.Context(), order)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, MapOrderToResponse(*created))
}

func (c *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID := chi.URLParam(r, "orderId")

	order, err := c.useCase.GetOrder(r.Context(), orderID)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, MapOrderToResponse(*order))
}

func (c *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orders, err := c.useCase.ListOrders(r.Context())
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, MapOrderToResponse(order))
	}

	c.writeJSON(w, http.StatusOK, response)
}

func (c *OrderController) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID := chi.URLParam(r, "orderId")

	order, ok := c.decodeOrder(w, r, logger)
	if !ok {
		return
	}

	updated, err := c.useCase.UpdateOrder(r.Context(), orderID, order)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, MapOrderToResponse(*updated))
}

func (c *OrderController) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID := chi.URLParam(r, "orderId")

	deleted, err := c.useCase.DeleteOrder(r.Context(), orderID)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}
	if !deleted {
		c.writeJSON(w, http.StatusNotFound, errorResponse{
			Error:   "NOT_FOUND",
			Message: "order with id " + orderID + " not found",
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeOrder decodes and validates the request body. On failure it
// writes the 400 response itself and reports ok=false.
func (c *OrderController) decodeOrder(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (*domain.Order, bool) {
	var req dto.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return nil, false
	}

	order, err := MapRequestToOrder(req)
	if err != nil {
		ve, _ := apperrors.IsValidationError(err)
		logger.Warn("invalid order payload", zap.String("message", ve.Message))
		c.writeValidationError(w, ve.Message, ve.Details...)
		return nil, false
	}

	return order, true
}

func (c *OrderController) handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, errorResponse{
			Error:   "NOT_FOUND",
			Message: nfe.Message,
		})
		return
	}

	// Persistence detail stays in the logs, never in the response.
	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, errorResponse{
		Error:   "INTERNAL_ERROR",
		Message: "an unexpected error occurred",
	})
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *OrderController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
