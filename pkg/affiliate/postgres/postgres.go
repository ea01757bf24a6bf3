// Package postgres implements the affiliate-program repository on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"

	"glowcart/pkg/affiliate"
)

// Repository persists affiliate programs in PostgreSQL.
type Repository struct {
	db *sql.DB
}

// New creates a PostgreSQL repository.
func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const programCols = "id,name,description,category,commission_rate,cookie_duration,tier,website,signup_url,is_active,created_at"

// Create inserts a new program.
func (r *Repository) Create(ctx context.Context, p affiliate.Program) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO affiliate_programs ("+programCols+") VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)",
		p.ID, p.Name, p.Description, p.Category, p.CommissionRate, p.CookieDuration,
		p.Tier, p.Website, p.SignupURL, p.IsActive, p.CreatedAt)
	return err
}

// Get retrieves a program by ID.
func (r *Repository) Get(ctx context.Context, id string) (affiliate.Program, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+programCols+" FROM affiliate_programs WHERE id=$1", id)
	p, err := scanProgram(row)
	if err == sql.ErrNoRows {
		return affiliate.Program{}, affiliate.ErrNotFound
	}
	return p, err
}

// List fetches all programs ordered by name.
func (r *Repository) List(ctx context.Context) ([]affiliate.Program, error) {
	return r.listQuery(ctx, "SELECT "+programCols+" FROM affiliate_programs ORDER BY name")
}

// ListActive fetches active programs ordered by tier descending.
func (r *Repository) ListActive(ctx context.Context) ([]affiliate.Program, error) {
	return r.listQuery(ctx, "SELECT "+programCols+" FROM affiliate_programs WHERE is_active ORDER BY tier DESC, name")
}

func (r *Repository) listQuery(ctx context.Context, query string) ([]affiliate.Program, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []affiliate.Program
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update replaces an existing program.
func (r *Repository) Update(ctx context.Context, p affiliate.Program) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE affiliate_programs SET name=$2, description=$3, category=$4, commission_rate=$5,
			cookie_duration=$6, tier=$7, website=$8, signup_url=$9, is_active=$10
		WHERE id=$1`,
		p.ID, p.Name, p.Description, p.Category, p.CommissionRate, p.CookieDuration,
		p.Tier, p.Website, p.SignupURL, p.IsActive)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return affiliate.ErrNotFound
	}
	return nil
}

// Delete removes a program by ID.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM affiliate_programs WHERE id=$1", id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return affiliate.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProgram(row scanner) (affiliate.Program, error) {
	var p affiliate.Program
	var desc, category, rate, cookie, tier, website, signup sql.NullString
	err := row.Scan(&p.ID, &p.Name, &desc, &category, &rate, &cookie, &tier, &website,
		&signup, &p.IsActive, &p.CreatedAt)
	if err != nil {
		return affiliate.Program{}, err
	}
	p.Description = desc.String
	p.Category = category.String
	p.CommissionRate = rate.String
	p.CookieDuration = cookie.String
	p.Tier = tier.String
	p.Website = website.String
	p.SignupURL = signup.String
	return p, nil
}
