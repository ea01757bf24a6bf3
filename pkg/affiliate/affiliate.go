// Package affiliate defines partner program listings.
package affiliate

import (
	"context"
	"errors"
	"time"
)

// Program is a partner brand's affiliate program. CommissionRate and
// CookieDuration are display strings, not parsed values.
type Program struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	Category       string    `json:"category,omitempty"`
	CommissionRate string    `json:"commission_rate,omitempty"`
	CookieDuration string    `json:"cookie_duration,omitempty"`
	Tier           string    `json:"tier,omitempty"`
	Website        string    `json:"website,omitempty"`
	SignupURL      string    `json:"signup_url,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

// Repository defines behavior for persisting affiliate programs.
// ListActive returns only active programs, ordered by tier descending.
type Repository interface {
	Create(ctx context.Context, p Program) error
	Get(ctx context.Context, id string) (Program, error)
	List(ctx context.Context) ([]Program, error)
	ListActive(ctx context.Context) ([]Program, error)
	Update(ctx context.Context, p Program) error
	Delete(ctx context.Context, id string) error
}

// ErrNotFound indicates the requested program does not exist.
var ErrNotFound = errors.New("affiliate program not found")
