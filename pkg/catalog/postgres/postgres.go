// Package postgres implements the catalog repository on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"time"

	"glowcart/pkg/catalog"
)

// Repository persists catalog records in PostgreSQL.
type Repository struct {
	db *sql.DB
}

// New creates a PostgreSQL repository.
func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const productCols = "id,name,description,sku,category,brand,image_url,my_cost,selling_price,markup_percentage,status,is_affiliate,affiliate_link,affiliate_commission_rate,created_at,updated_at"

// CreateProduct inserts a new product.
func (r *Repository) CreateProduct(ctx context.Context, p catalog.Product) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO products ("+productCols+") VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)",
		p.ID, p.Name, p.Description, p.SKU, p.Category, p.Brand, p.ImageURL,
		p.MyCost, p.SellingPrice, p.MarkupPercentage, string(p.Status),
		p.IsAffiliate, p.AffiliateLink, p.AffiliateCommissionRate, p.CreatedAt, p.UpdatedAt)
	return err
}

// GetProduct retrieves a product by ID.
func (r *Repository) GetProduct(ctx context.Context, id string) (catalog.Product, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+productCols+" FROM products WHERE id=$1", id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return catalog.Product{}, catalog.ErrNotFound
	}
	return p, err
}

// ListProducts fetches all products ordered by name.
func (r *Repository) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+productCols+" FROM products ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var products []catalog.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// UpdateProduct updates an existing product.
func (r *Repository) UpdateProduct(ctx context.Context, p catalog.Product) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET name=$2, description=$3, sku=$4, category=$5, brand=$6, image_url=$7,
			my_cost=$8, selling_price=$9, markup_percentage=$10, status=$11, is_affiliate=$12,
			affiliate_link=$13, affiliate_commission_rate=$14, updated_at=$15
		WHERE id=$1`,
		p.ID, p.Name, p.Description, p.SKU, p.Category, p.Brand, p.ImageURL,
		p.MyCost, p.SellingPrice, p.MarkupPercentage, string(p.Status),
		p.IsAffiliate, p.AffiliateLink, p.AffiliateCommissionRate, p.UpdatedAt)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

// DeleteProduct removes a product by ID.
func (r *Repository) DeleteProduct(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id=$1", id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

// GetInventory retrieves the inventory record for a product.
func (r *Repository) GetInventory(ctx context.Context, productID string) (catalog.Inventory, error) {
	var inv catalog.Inventory
	var location sql.NullString
	var restocked sql.NullTime
	err := r.db.QueryRowContext(ctx,
		`SELECT id, product_id, quantity, reserved_quantity, reorder_level, reorder_quantity,
			warehouse_location, last_restocked_at, created_at, updated_at
		FROM inventory WHERE product_id=$1`, productID).
		Scan(&inv.ID, &inv.ProductID, &inv.Quantity, &inv.ReservedQuantity, &inv.ReorderLevel,
			&inv.ReorderQuantity, &location, &restocked, &inv.CreatedAt, &inv.UpdatedAt)
	if err == sql.ErrNoRows {
		return catalog.Inventory{}, catalog.ErrNotFound
	}
	if err != nil {
		return catalog.Inventory{}, err
	}
	inv.WarehouseLocation = location.String
	if restocked.Valid {
		t := restocked.Time
		inv.LastRestockedAt = &t
	}
	return inv, nil
}

// UpsertInventory inserts or replaces the inventory record for a product.
func (r *Repository) UpsertInventory(ctx context.Context, inv catalog.Inventory) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO inventory (id, product_id, quantity, reserved_quantity, reorder_level,
			reorder_quantity, warehouse_location, last_restocked_at, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (product_id) DO UPDATE SET
			quantity=EXCLUDED.quantity, reserved_quantity=EXCLUDED.reserved_quantity,
			reorder_level=EXCLUDED.reorder_level, reorder_quantity=EXCLUDED.reorder_quantity,
			warehouse_location=EXCLUDED.warehouse_location, updated_at=EXCLUDED.updated_at`,
		inv.ID, inv.ProductID, inv.Quantity, inv.ReservedQuantity, inv.ReorderLevel,
		inv.ReorderQuantity, inv.WarehouseLocation, inv.LastRestockedAt, inv.CreatedAt, inv.UpdatedAt)
	return err
}

// Restock increases on-hand stock and stamps the restock time.
func (r *Repository) Restock(ctx context.Context, productID string, quantity int, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE inventory SET quantity = quantity + $2, last_restocked_at=$3, updated_at=$3 WHERE product_id=$1",
		productID, quantity, at)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (catalog.Product, error) {
	var p catalog.Product
	var desc, sku, category, brand, imageURL, affLink sql.NullString
	var affRate sql.NullFloat64
	var status string
	err := row.Scan(&p.ID, &p.Name, &desc, &sku, &category, &brand, &imageURL,
		&p.MyCost, &p.SellingPrice, &p.MarkupPercentage, &status,
		&p.IsAffiliate, &affLink, &affRate, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return catalog.Product{}, err
	}
	p.Description = desc.String
	p.SKU = sku.String
	p.Category = category.String
	p.Brand = brand.String
	p.ImageURL = imageURL.String
	p.AffiliateLink = affLink.String
	p.AffiliateCommissionRate = affRate.Float64
	p.Status = catalog.ProductStatus(status)
	return p, nil
}
