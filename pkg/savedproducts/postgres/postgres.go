// Package postgres implements the saved-products repository on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"

	"glowcart/pkg/savedproducts"
)

// Repository persists saved products in PostgreSQL.
type Repository struct {
	db *sql.DB
}

// New creates a PostgreSQL repository.
func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Save inserts a saved product.
func (r *Repository) Save(ctx context.Context, sp savedproducts.SavedProduct) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO saved_products (id, user_id, product_name, ingredients, analysis_result, created_at) VALUES ($1,$2,$3,$4,$5,$6)",
		sp.ID, sp.UserID, sp.ProductName, sp.Ingredients, []byte(sp.Analysis), sp.CreatedAt)
	return err
}

// ListByUser fetches the user's saved products, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]savedproducts.SavedProduct, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, user_id, product_name, ingredients, analysis_result, created_at FROM saved_products WHERE user_id=$1 ORDER BY created_at DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []savedproducts.SavedProduct
	for rows.Next() {
		var sp savedproducts.SavedProduct
		var name sql.NullString
		var analysis []byte
		if err := rows.Scan(&sp.ID, &sp.UserID, &name, &sp.Ingredients, &analysis, &sp.CreatedAt); err != nil {
			return nil, err
		}
		sp.ProductName = name.String
		sp.Analysis = analysis
		out = append(out, sp)
	}
	return out, rows.Err()
}

// Delete removes the user's saved product by ID.
func (r *Repository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM saved_products WHERE id=$1 AND user_id=$2", id, userID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return savedproducts.ErrNotFound
	}
	return nil
}
