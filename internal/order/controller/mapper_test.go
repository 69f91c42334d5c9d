package controller

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pedidos/internal/domain"
	"pedidos/internal/dto"
	apperrors "pedidos/internal/errors"
)

func decodeRequest(t *testing.T, payload string) dto.OrderRequest {
	var req dto.OrderRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	return req
}

func TestMapRequestToOrder_Success(t *testing.T) {
	req := decodeRequest(t, `{
		"numeroPedido": "O1",
		"valorTotal": 100.5,
		"dataCriacao": "2024-01-01",
		"items": [{"idItem": "7", "quantidadeItem": 2, "valorItem": 50.25}]
	}`)

	order, err := MapRequestToOrder(req)
	require.NoError(t, err)

	assert.Equal(t, "O1", order.OrderID)
	assert.Equal(t, 100.5, order.Value)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), order.CreationDate)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 7, order.Items[0].ProductID)
	assert.Equal(t, 2.0, order.Items[0].Quantity)
	assert.Equal(t, 50.25, order.Items[0].Price)
}

func TestMapRequestToOrder_NumericIDItem(t *testing.T) {
	req := decodeRequest(t, `{
		"numeroPedido": "O1",
		"valorTotal": 10,
		"dataCriacao": "2024-01-01",
		"items": [{"idItem": 7, "quantidadeItem": 1, "valorItem": 10}]
	}`)

	order, err := MapRequestToOrder(req)
	require.NoError(t, err)
	assert.Equal(t, 7, order.Items[0].ProductID)
}

func TestMapRequestToOrder_RFC3339Date(t *testing.T) {
	req := decodeRequest(t, `{
		"numeroPedido": "O1",
		"valorTotal": 10,
		"dataCriacao": "2024-06-15T12:30:45.123Z",
		"items": []
	}`)

	order, err := MapRequestToOrder(req)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 15, 12, 30, 45, 123000000, time.UTC), order.CreationDate.UTC())
}

func TestMapRequestToOrder_EmptyItems(t *testing.T) {
	req := decodeRequest(t, `{
		"numeroPedido": "O1",
		"valorTotal": 10,
		"dataCriacao": "2024-01-01",
		"items": []
	}`)

	order, err := MapRequestToOrder(req)
	require.NoError(t, err)
	assert.NotNil(t, order.Items)
	assert.Empty(t, order.Items)
}

func TestMapRequestToOrder_MissingNumeroPedido(t *testing.T) {
	req := decodeRequest(t, `{
		"valorTotal": 10,
		"dataCriacao": "2024-01-01",
		"items": []
	}`)

	order, err := MapRequestToOrder(req)
	assert.Nil(t, order)

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Details, 1)
	assert.Equal(t, "numeroPedido", ve.Details[0].Field)
}

func TestMapRequestToOrder_NullValorTotal(t *testing.T) {
	req := decodeRequest(t, `{
		"numeroPedido": "O1",
		"valorTotal": null,
		"dataCriacao": "2024-01-01",
		"items": []
	}`)

	_, err := MapRequestToOrder(req)
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Details, 1)
	assert.Equal(t, "valorTotal", ve.Details[0].Field)
}

func TestMapRequestToOrder_InvalidDate(t *testing.T) {
	req := decodeRequest(t, `{
		"numeroPedido": "O1",
		"valorTotal": 10,
		"dataCriacao": "not-a-date",
		"items": []
	}`)

	_, err := MapRequestToOrder(req)
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Details, 1)
	assert.Equal(t, "dataCriacao", ve.Details[0].Field)
}

func TestMapRequestToOrder_MissingItems(t *testing.T) {
	req := decodeRequest(t, `{
		"numeroPedido": "O1",
		"valorTotal": 10,
		"dataCriacao": "2024-01-01"
	}`)

	_, err := MapRequestToOrder(req)
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Details, 1)
	assert.Equal(t, "items", ve.Details[0].Field)
}

func TestMapRequestToOrder_InvalidIDItem(t *testing.T) {
	req := decodeRequest(t, `{
		"numeroPedido": "O1",
		"valorTotal": 10,
		"dataCriacao": "2024-01-01",
		"items": [{"idItem": "abc", "quantidadeItem": 1, "valorItem": 10}]
	}`)

	_, err := MapRequestToOrder(req)
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Details, 1)
	assert.Equal(t, "items[0].idItem", ve.Details[0].Field)
}

func TestMapRequestToOrder_MissingItemFields(t *testing.T) {
	req := decodeRequest(t, `{
		"numeroPedido": "O1",
		"valorTotal": 10,
		"dataCriacao": "2024-01-01",
		"items": [{"idItem": "7"}]
	}`)

	_, err := MapRequestToOrder(req)
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Details, 2)
	assert.Equal(t, "items[0].quantidadeItem", ve.Details[0].Field)
	assert.Equal(t, "items[0].valorItem", ve.Details[1].Field)
}

func TestMapRequestToOrder_CollectsAllDetails(t *testing.T) {
	req := decodeRequest(t, `{}`)

	_, err := MapRequestToOrder(req)
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Len(t, ve.Details, 4)
}

func TestMapOrderToResponse_FormatsDateWithMilliseconds(t *testing.T) {
	order := domain.Order{
		OrderID:      "O1",
		Value:        100.5,
		CreationDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Items: []domain.Item{
			{ProductID: 7, Quantity: 2, Price: 50.25},
		},
	}

	resp := MapOrderToResponse(order)

	assert.Equal(t, "O1", resp.OrderID)
	assert.Equal(t, 100.5, resp.Value)
	assert.Equal(t, "2024-01-01T00:00:00.000Z", resp.CreationDate)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 7, resp.Items[0].ProductID)
	assert.Equal(t, 2.0, resp.Items[0].Quantity)
	assert.Equal(t, 50.25, resp.Items[0].Price)
}

func TestMapOrderToResponse_NilItemsBecomesEmptyArray(t *testing.T) {
	order := domain.Order{
		OrderID:      "O2",
		Value:        1,
		CreationDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	resp := MapOrderToResponse(order)
	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)

	encoded, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"items":[]`)
}
