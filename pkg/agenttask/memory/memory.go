// Package memory implements an in-memory agent-task repository.
package memory

import (
	"context"
	"sort"
	"sync"

	"glowcart/pkg/agenttask"
)

// Repository provides an in-memory implementation of agenttask.Repository.
type Repository struct {
	mu    sync.RWMutex
	tasks map[string]agenttask.Task
}

// New creates a new in-memory repository.
func New() *Repository {
	return &Repository{tasks: make(map[string]agenttask.Task)}
}

// Create stores the task.
func (r *Repository) Create(ctx context.Context, t agenttask.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[t.ID] = t
	return nil
}

// Get retrieves a task by ID.
func (r *Repository) Get(ctx context.Context, id string) (agenttask.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tasks[id]
	if !ok {
		return agenttask.Task{}, agenttask.ErrNotFound
	}
	return t, nil
}

// List returns all tasks, newest first.
func (r *Repository) List(ctx context.Context) ([]agenttask.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]agenttask.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Update replaces an existing task.
func (r *Repository) Update(ctx context.Context, t agenttask.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[t.ID]; !ok {
		return agenttask.ErrNotFound
	}
	r.tasks[t.ID] = t
	return nil
}
