// Package catalog defines products and inventory records.
package catalog

import (
	"context"
	"errors"
	"time"
)

// ProductStatus tags a product's availability in the shop.
type ProductStatus string

const (
	StatusActive       ProductStatus = "active"
	StatusInactive     ProductStatus = "inactive"
	StatusOutOfStock   ProductStatus = "out_of_stock"
	StatusDiscontinued ProductStatus = "discontinued"
)

// Product represents a sellable item in the catalog.
type Product struct {
	ID                      string        `json:"id"`
	Name                    string        `json:"name"`
	Description             string        `json:"description,omitempty"`
	SKU                     string        `json:"sku,omitempty"`
	Category                string        `json:"category,omitempty"`
	Brand                   string        `json:"brand,omitempty"`
	ImageURL                string        `json:"image_url,omitempty"`
	MyCost                  float64       `json:"my_cost"`
	SellingPrice            float64       `json:"selling_price"`
	MarkupPercentage        float64       `json:"markup_percentage"`
	Status                  ProductStatus `json:"status"`
	IsAffiliate             bool          `json:"is_affiliate"`
	AffiliateLink           string        `json:"affiliate_link,omitempty"`
	AffiliateCommissionRate float64       `json:"affiliate_commission_rate,omitempty"`
	CreatedAt               time.Time     `json:"created_at"`
	UpdatedAt               time.Time     `json:"updated_at"`
}

// Inventory tracks on-hand stock for a product.
type Inventory struct {
	ID                string     `json:"id"`
	ProductID         string     `json:"product_id"`
	Quantity          int        `json:"quantity"`
	ReservedQuantity  int        `json:"reserved_quantity"`
	ReorderLevel      int        `json:"reorder_level"`
	ReorderQuantity   int        `json:"reorder_quantity"`
	WarehouseLocation string     `json:"warehouse_location,omitempty"`
	LastRestockedAt   *time.Time `json:"last_restocked_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// Repository defines behavior for persisting catalog records.
type Repository interface {
	CreateProduct(ctx context.Context, p Product) error
	GetProduct(ctx context.Context, id string) (Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
	UpdateProduct(ctx context.Context, p Product) error
	DeleteProduct(ctx context.Context, id string) error

	GetInventory(ctx context.Context, productID string) (Inventory, error)
	UpsertInventory(ctx context.Context, inv Inventory) error
	// Restock increases the on-hand quantity and stamps the restock time.
	Restock(ctx context.Context, productID string, quantity int, at time.Time) error
}

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("catalog record not found")
