// Package postgres implements the returns repository on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"glowcart/pkg/returns"
)

// Repository persists returns in PostgreSQL.
type Repository struct {
	db *sql.DB
}

// New creates a PostgreSQL repository.
func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const returnCols = "id,order_id,user_id,status,reason,refund_amount,admin_notes,requested_at,processed_at,created_at,updated_at"

// Create writes the return and its items in a single transaction.
func (r *Repository) Create(ctx context.Context, ret returns.Return, items []returns.Item) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO returns ("+returnCols+") VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)",
		ret.ID, ret.OrderID, ret.UserID, string(ret.Status), ret.Reason, ret.RefundAmount,
		ret.AdminNotes, ret.RequestedAt, ret.ProcessedAt, ret.CreatedAt, ret.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert return: %w", err)
	}

	for _, it := range items {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO return_items (id, return_id, order_item_id, quantity, reason) VALUES ($1,$2,$3,$4,$5)",
			it.ID, it.ReturnID, it.OrderItemID, it.Quantity, it.Reason)
		if err != nil {
			return fmt.Errorf("insert return item: %w", err)
		}
	}

	return tx.Commit()
}

// Get retrieves a return by ID.
func (r *Repository) Get(ctx context.Context, id string) (returns.Return, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+returnCols+" FROM returns WHERE id=$1", id)
	ret, err := scanReturn(row)
	if err == sql.ErrNoRows {
		return returns.Return{}, returns.ErrNotFound
	}
	return ret, err
}

// List fetches all returns, newest first.
func (r *Repository) List(ctx context.Context) ([]returns.Return, error) {
	return r.listWhere(ctx, "SELECT "+returnCols+" FROM returns ORDER BY requested_at DESC")
}

// ListByUser fetches a user's returns, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]returns.Return, error) {
	return r.listWhere(ctx, "SELECT "+returnCols+" FROM returns WHERE user_id=$1 ORDER BY requested_at DESC", userID)
}

func (r *Repository) listWhere(ctx context.Context, query string, args ...any) ([]returns.Return, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []returns.Return
	for rows.Next() {
		ret, err := scanReturn(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ret)
	}
	return out, rows.Err()
}

// Items fetches the lines for a return.
func (r *Repository) Items(ctx context.Context, returnID string) ([]returns.Item, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, return_id, order_item_id, quantity, reason FROM return_items WHERE return_id=$1",
		returnID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []returns.Item
	for rows.Next() {
		var it returns.Item
		var reason sql.NullString
		if err := rows.Scan(&it.ID, &it.ReturnID, &it.OrderItemID, &it.Quantity, &reason); err != nil {
			return nil, err
		}
		it.Reason = reason.String
		items = append(items, it)
	}
	return items, rows.Err()
}

// UpdateStatus updates the return's status fields.
func (r *Repository) UpdateStatus(ctx context.Context, ret returns.Return) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE returns SET status=$2, refund_amount=$3, admin_notes=$4, processed_at=$5, updated_at=$6 WHERE id=$1",
		ret.ID, string(ret.Status), ret.RefundAmount, ret.AdminNotes, ret.ProcessedAt, ret.UpdatedAt)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return returns.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReturn(row scanner) (returns.Return, error) {
	var ret returns.Return
	var status string
	var refund sql.NullFloat64
	var notes sql.NullString
	var processed sql.NullTime
	err := row.Scan(&ret.ID, &ret.OrderID, &ret.UserID, &status, &ret.Reason, &refund,
		&notes, &ret.RequestedAt, &processed, &ret.CreatedAt, &ret.UpdatedAt)
	if err != nil {
		return returns.Return{}, err
	}
	ret.Status = returns.Status(status)
	ret.RefundAmount = refund.Float64
	ret.AdminNotes = notes.String
	if processed.Valid {
		t := processed.Time
		ret.ProcessedAt = &t
	}
	return ret, nil
}
