package dto

// OrderRequest is the externally-facing payload. Field names are fixed
// by the public contract and must not be renamed.
//
// Pointer and any-typed fields distinguish "absent or null" from a
// zero value so validation can report missing fields precisely. IDItem
// arrives as either a JSON string or a JSON number.
type OrderRequest struct {
	NumeroPedido string         `json:"numeroPedido"`
	ValorTotal   *float64       `json:"valorTotal"`
	DataCriacao  string         `json:"dataCriacao"`
	Items        *[]ItemRequest `json:"items"`
}

type ItemRequest struct {
	IDItem         any      `json:"idItem"`
	QuantidadeItem *float64 `json:"quantidadeItem"`
	ValorItem      *float64 `json:"valorItem"`
}

type OrderResponse struct {
	OrderID      string         `json:"orderId"`
	Value        float64        `json:"value"`
	CreationDate string         `json:"creationDate"`
	Items        []ItemResponse `json:"items"`
}

type ItemResponse struct {
	ProductID int     `json:"productId"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
}
