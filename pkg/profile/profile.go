// Package profile stores skin-quiz results per user.
package profile

import (
	"context"
	"errors"
	"time"
)

// Profile is the user's skin profile captured by the quiz. The routine
// generator and ingredient checker read it as defaults.
type Profile struct {
	UserID       string    `json:"user_id"`
	SkinType     string    `json:"skin_type"`
	SkinConcerns []string  `json:"skin_concerns"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Repository defines behavior for persisting profiles.
type Repository interface {
	Upsert(ctx context.Context, p Profile) error
	Get(ctx context.Context, userID string) (Profile, error)
}

// ErrNotFound indicates the user has no stored profile.
var ErrNotFound = errors.New("profile not found")
