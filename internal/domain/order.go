package domain

import "time"

// Order is the aggregate root: it owns its items exclusively and the
// whole aggregate is written, replaced and deleted atomically.
type Order struct {
	OrderID      string
	Value        float64
	CreationDate time.Time
	Items        []Item
}

// Item is a line entry of exactly one Order. ProductID is an opaque
// reference; no product entity is modeled behind it. Items carry no
// identity of their own, so duplicate rows are accepted.
type Item struct {
	ProductID int
	Quantity  float64
	Price     float64
}
