package controller

import (
	"math"
	"strconv"
	"strings"
	"time"

	"pedidos/internal/domain"
	"pedidos/internal/dto"
	apperrors "pedidos/internal/errors"
)

// Accepted dataCriacao layouts. Date-only values parse as midnight UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// MapRequestToOrder validates the raw payload and coerces it into a
// canonical domain.Order. Pure transform: all failures are collected
// into a single ValidationError with field-level details.
func MapRequestToOrder(req dto.OrderRequest) (*domain.Order, error) {
	var details []apperrors.ValidationDetail

	if req.NumeroPedido == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "numeroPedido",
			Message: "numeroPedido is required",
		})
	}

	var value float64
	if req.ValorTotal == nil {
		details = append(details, apperrors.ValidationDetail{
			Field:   "valorTotal",
			Message: "valorTotal is required and must be a number",
		})
	} else if math.IsNaN(*req.ValorTotal) {
		details = append(details, apperrors.ValidationDetail{
			Field:   "valorTotal",
			Message: "valorTotal must be a number",
		})
	} else {
		value = *req.ValorTotal
	}

	var creationDate time.Time
	if req.DataCriacao == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "dataCriacao",
			Message: "dataCriacao is required",
		})
	} else {
		parsed, err := parseDate(req.DataCriacao)
		if err != nil {
			details = append(details, apperrors.ValidationDetail{
				Field:   "dataCriacao",
				Message: "dataCriacao must be a valid date",
			})
		} else {
			creationDate = parsed
		}
	}

	var items []domain.Item
	if req.Items == nil {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must be an array",
		})
	} else {
		items = make([]domain.Item, 0, len(*req.Items))
		for idx, item := range *req.Items {
			mapped, itemDetails := mapItem(idx, item)
			if len(itemDetails) > 0 {
				details = append(details, itemDetails...)
				continue
			}
			items = append(items, mapped)
		}
	}

	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid payload", details...)
	}

	return &domain.Order{
		OrderID:      req.NumeroPedido,
		Value:        value,
		CreationDate: creationDate,
		Items:        items,
	}, nil
}

func mapItem(idx int, item dto.ItemRequest) (domain.Item, []apperrors.ValidationDetail) {
	var details []apperrors.ValidationDetail
	field := func(name string) string {
		return "items[" + strconv.Itoa(idx) + "]." + name
	}

	productID, ok := parseProductID(item.IDItem)
	if !ok {
		details = append(details, apperrors.ValidationDetail{
			Field:   field("idItem"),
			Message: "idItem is required and must be numeric",
		})
	}

	if item.QuantidadeItem == nil || math.IsNaN(*item.QuantidadeItem) {
		details = append(details, apperrors.ValidationDetail{
			Field:   field("quantidadeItem"),
			Message: "quantidadeItem is required and must be a number",
		})
	}

	if item.ValorItem == nil || math.IsNaN(*item.ValorItem) {
		details = append(details, apperrors.ValidationDetail{
			Field:   field("valorItem"),
			Message: "valorItem is required and must be a number",
		})
	}

	if len(details) > 0 {
		return domain.Item{}, details
	}

	return domain.Item{
		ProductID: productID,
		Quantity:  *item.QuantidadeItem,
		Price:     *item.ValorItem,
	}, nil
}

// parseProductID accepts idItem as a JSON string or number. Numbers
// are truncated toward zero, keeping the original parseInt coercion.
func parseProductID(raw any) (int, bool) {
	switch v := raw.(type) {
	case string:
		id, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return id, true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}

func parseDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, raw, time.UTC)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// MapOrderToResponse shapes an order for the wire: dates as ISO-8601
// UTC with millisecond precision, items never null.
func MapOrderToResponse(order domain.Order) dto.OrderResponse {
	items := make([]dto.ItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.ItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return dto.OrderResponse{
		OrderID:      order.OrderID,
		Value:        order.Value,
		CreationDate: order.CreationDate.UTC().Format("2006-01-02T15:04:05.000Z"),
		Items:        items,
	}
}
