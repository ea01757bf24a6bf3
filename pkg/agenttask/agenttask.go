// Package agenttask stores back-office AI agent tasks.
package agenttask

import (
	"context"
	"errors"
	"time"
)

// Status tags an agent task's execution state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Task is a prompt an admin queues for the AI gateway; Result holds the
// completion text once executed.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Prompt      string     `json:"prompt"`
	Status      Status     `json:"status"`
	Result      string     `json:"result,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Repository defines behavior for persisting agent tasks.
type Repository interface {
	Create(ctx context.Context, t Task) error
	Get(ctx context.Context, id string) (Task, error)
	List(ctx context.Context) ([]Task, error)
	Update(ctx context.Context, t Task) error
}

// ErrNotFound indicates the requested task does not exist.
var ErrNotFound = errors.New("agent task not found")
