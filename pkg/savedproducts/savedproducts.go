// Package savedproducts stores analyzed products a user saved as favorites.
package savedproducts

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// SavedProduct is an analyzed ingredient list a user kept for later. Analysis
// holds the compatibility assessment as it came back from the checker.
type SavedProduct struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	ProductName string          `json:"product_name,omitempty"`
	Ingredients string          `json:"ingredients"`
	Analysis    json.RawMessage `json:"analysis_result"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Repository defines behavior for persisting saved products.
// Delete is scoped to the owning user; another user's ID never matches.
type Repository interface {
	Save(ctx context.Context, sp SavedProduct) error
	ListByUser(ctx context.Context, userID string) ([]SavedProduct, error)
	Delete(ctx context.Context, id, userID string) error
}

// ErrNotFound indicates the saved product does not exist for that user.
var ErrNotFound = errors.New("saved product not found")
