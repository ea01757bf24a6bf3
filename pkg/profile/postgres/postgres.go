// Package postgres implements the profile repository on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"glowcart/pkg/profile"
)

// Repository persists profiles in PostgreSQL.
type Repository struct {
	db *sql.DB
}

// New creates a PostgreSQL repository.
func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Upsert inserts or replaces the user's profile.
func (r *Repository) Upsert(ctx context.Context, p profile.Profile) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO profiles (user_id, skin_type, skin_concerns, updated_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (user_id) DO UPDATE SET
			skin_type=EXCLUDED.skin_type, skin_concerns=EXCLUDED.skin_concerns,
			updated_at=EXCLUDED.updated_at`,
		p.UserID, p.SkinType, pq.Array(p.SkinConcerns), p.UpdatedAt)
	return err
}

// Get retrieves a user's profile.
func (r *Repository) Get(ctx context.Context, userID string) (profile.Profile, error) {
	var p profile.Profile
	err := r.db.QueryRowContext(ctx,
		"SELECT user_id, skin_type, skin_concerns, updated_at FROM profiles WHERE user_id=$1",
		userID).Scan(&p.UserID, &p.SkinType, pq.Array(&p.SkinConcerns), &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p, err
}
