package repository

import (
	"context"
	"database/sql"
	"fmt"

	"pedidos/internal/domain"
	"pedidos/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

// Create persists the order and its items in a single transaction.
// Items are inserted sequentially in input order; any failure rolls
// the whole aggregate back.
func (r *MySQLOrderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	// Rollback is a no-op once the transaction has been committed.
	defer tx.Rollback()

	insertOrder := "INSERT INTO `Order` (orderId, value, creationDate) VALUES (?, ?, ?)"
	if _, err := tx.ExecContext(ctx, insertOrder, order.OrderID, order.Value, order.CreationDate); err != nil {
		return nil, fmt.Errorf("inserting order: %w", err)
	}

	if err := insertItems(ctx, tx, order.OrderID, order.Items); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	return order, nil
}

// FindByID reads the order and its items in one left-joined query, so
// an order with zero items still comes back (with an empty slice).
func (r *MySQLOrderRepository) FindByID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `
		SELECT o.orderId, o.value, o.creationDate,
		       i.productId, i.quantity, i.price
		FROM ` + "`Order`" + ` o
		LEFT JOIN Items i ON o.orderId = i.orderId
		WHERE o.orderId = ?
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}
	defer rows.Close()

	var order *domain.Order
	for rows.Next() {
		var (
			o         domain.Order
			productID sql.NullInt64
			quantity  sql.NullFloat64
			price     sql.NullFloat64
		)
		if err := rows.Scan(&o.OrderID, &o.Value, &o.CreationDate, &productID, &quantity, &price); err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}

		if order == nil {
			o.Items = []domain.Item{}
			order = &o
		}

		// NULL item columns mean the order has no items at all.
		if productID.Valid {
			order.Items = append(order.Items, domain.Item{
				ProductID: int(productID.Int64),
				Quantity:  quantity.Float64,
				Price:     price.Float64,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	if order == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %s not found", orderID))
	}

	return order, nil
}

// FindAll reads every order with its items, newest first, ties broken
// by orderId ascending. Flat rows are grouped by orderId; result order
// follows first appearance in the sorted row stream.
func (r *MySQLOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	query := `
		SELECT o.orderId, o.value, o.creationDate,
		       i.productId, i.quantity, i.price
		FROM ` + "`Order`" + ` o
		LEFT JOIN Items i ON o.orderId = i.orderId
		ORDER BY o.creationDate DESC, o.orderId ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var ordered []*domain.Order
	byID := make(map[string]*domain.Order)

	for rows.Next() {
		var (
			o         domain.Order
			productID sql.NullInt64
			quantity  sql.NullFloat64
			price     sql.NullFloat64
		)
		if err := rows.Scan(&o.OrderID, &o.Value, &o.CreationDate, &productID, &quantity, &price); err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}

		current, ok := byID[o.OrderID]
		if !ok {
			o.Items = []domain.Item{}
			current = &o
			byID[o.OrderID] = current
			ordered = append(ordered, current)
		}

		if productID.Valid {
			current.Items = append(current.Items, domain.Item{
				ProductID: int(productID.Int64),
				Quantity:  quantity.Float64,
				Price:     price.Float64,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	orders := make([]domain.Order, 0, len(ordered))
	for _, o := range ordered {
		orders = append(orders, *o)
	}

	return orders, nil
}

// Update rewrites the order row and replaces its item set wholesale:
// items are never diffed, the previous set is deleted and the new one
// inserted inside the same transaction.
func (r *MySQLOrderRepository) Update(ctx context.Context, orderID string, order *domain.Order) (*domain.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	updateOrder := "UPDATE `Order` SET value = ?, creationDate = ? WHERE orderId = ?"
	result, err := tx.ExecContext(ctx, updateOrder, order.Value, order.CreationDate, orderID)
	if err != nil {
		return nil, fmt.Errorf("updating order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %s not found", orderID))
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM Items WHERE orderId = ?", orderID); err != nil {
		return nil, fmt.Errorf("deleting order items: %w", err)
	}

	if err := insertItems(ctx, tx, orderID, order.Items); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	updated := *order
	updated.OrderID = orderID
	return &updated, nil
}

// Delete removes the order's items and then the order row itself; the
// cascade is enforced here, not by the schema. Returns whether an
// order row actually existed.
func (r *MySQLOrderRepository) Delete(ctx context.Context, orderID string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM Items WHERE orderId = ?", orderID); err != nil {
		return false, fmt.Errorf("deleting order items: %w", err)
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM `Order` WHERE orderId = ?", orderID)
	if err != nil {
		return false, fmt.Errorf("deleting order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("getting rows affected: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing transaction: %w", err)
	}

	return rowsAffected > 0, nil
}

func insertItems(ctx context.Context, tx *sql.Tx, orderID string, items []domain.Item) error {
	query := "INSERT INTO Items (orderId, productId, quantity, price) VALUES (?, ?, ?, ?)"
	for _, item := range items {
		if _, err := tx.ExecContext(ctx, query, orderID, item.ProductID, item.Quantity, item.Price); err != nil {
			return fmt.Errorf("inserting order item: %w", err)
		}
	}
	return nil
}
