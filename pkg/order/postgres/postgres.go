// Package postgres implements the order repository on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"glowcart/pkg/order"
)

// Repository persists orders in PostgreSQL.
type Repository struct {
	db *sql.DB
}

// New creates a PostgreSQL repository.
func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const orderCols = "id,user_id,order_number,status,subtotal,shipping_cost,tax,total,shipping_address,billing_address,tracking_number,carrier,shipped_at,delivered_at,notes,created_at,updated_at"

// Create writes the header and all items in a single transaction, so a
// failed line insert can never leave an itemless header behind.
func (r *Repository) Create(ctx context.Context, o order.Order, items []order.Item) error {
	shipAddr, err := json.Marshal(o.ShippingAddress)
	if err != nil {
		return fmt.Errorf("encode shipping address: %w", err)
	}
	billAddr, err := json.Marshal(o.BillingAddress)
	if err != nil {
		return fmt.Errorf("encode billing address: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO orders ("+orderCols+") VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)",
		o.ID, o.UserID, o.OrderNumber, string(o.Status), o.Subtotal, o.ShippingCost, o.Tax, o.Total,
		shipAddr, billAddr, o.TrackingNumber, o.Carrier, o.ShippedAt, o.DeliveredAt, o.Notes,
		o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, it := range items {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, total_price) VALUES ($1,$2,$3,$4,$5,$6)",
			it.ID, it.OrderID, it.ProductID, it.Quantity, it.UnitPrice, it.TotalPrice)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	return tx.Commit()
}

// Get retrieves an order by ID.
func (r *Repository) Get(ctx context.Context, id string) (order.Order, error) {
	return r.getWhere(ctx, "id=$1", id)
}

// GetByNumber retrieves an order by order number.
func (r *Repository) GetByNumber(ctx context.Context, orderNumber string) (order.Order, error) {
	return r.getWhere(ctx, "order_number=$1", orderNumber)
}

func (r *Repository) getWhere(ctx context.Context, where string, arg any) (order.Order, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+orderCols+" FROM orders WHERE "+where, arg)
	o, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return order.Order{}, order.ErrNotFound
	}
	return o, err
}

// List fetches all orders, newest first.
func (r *Repository) List(ctx context.Context) ([]order.Order, error) {
	return r.listWhere(ctx, "SELECT "+orderCols+" FROM orders ORDER BY created_at DESC")
}

// ListByUser fetches a user's orders, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]order.Order, error) {
	return r.listWhere(ctx, "SELECT "+orderCols+" FROM orders WHERE user_id=$1 ORDER BY created_at DESC", userID)
}

func (r *Repository) listWhere(ctx context.Context, query string, args ...any) ([]order.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var orders []order.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// Items fetches the lines for an order.
func (r *Repository) Items(ctx context.Context, orderID string) ([]order.Item, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, order_id, product_id, quantity, unit_price, total_price FROM order_items WHERE order_id=$1",
		orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []order.Item
	for rows.Next() {
		var it order.Item
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// UpdateStatus updates the header's status fields.
func (r *Repository) UpdateStatus(ctx context.Context, o order.Order) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status=$2, tracking_number=$3, carrier=$4, shipped_at=$5,
			delivered_at=$6, notes=$7, updated_at=$8
		WHERE id=$1`,
		o.ID, string(o.Status), o.TrackingNumber, o.Carrier, o.ShippedAt, o.DeliveredAt,
		o.Notes, o.UpdatedAt)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return order.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (order.Order, error) {
	var o order.Order
	var status string
	var shipAddr, billAddr []byte
	var tracking, carrier, notes sql.NullString
	var shippedAt, deliveredAt sql.NullTime
	err := row.Scan(&o.ID, &o.UserID, &o.OrderNumber, &status, &o.Subtotal, &o.ShippingCost,
		&o.Tax, &o.Total, &shipAddr, &billAddr, &tracking, &carrier, &shippedAt, &deliveredAt,
		&notes, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return order.Order{}, err
	}
	o.Status = order.Status(status)
	if err := json.Unmarshal(shipAddr, &o.ShippingAddress); err != nil {
		return order.Order{}, fmt.Errorf("decode shipping address: %w", err)
	}
	if err := json.Unmarshal(billAddr, &o.BillingAddress); err != nil {
		return order.Order{}, fmt.Errorf("decode billing address: %w", err)
	}
	o.TrackingNumber = tracking.String
	o.Carrier = carrier.String
	o.Notes = notes.String
	if shippedAt.Valid {
		t := shippedAt.Time
		o.ShippedAt = &t
	}
	if deliveredAt.Valid {
		t := deliveredAt.Time
		o.DeliveredAt = &t
	}
	return o, nil
}
