// Package postgres implements the agent-task repository on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"

	"glowcart/pkg/agenttask"
)

// Repository persists agent tasks in PostgreSQL.
type Repository struct {
	db *sql.DB
}

// New creates a PostgreSQL repository.
func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const taskCols = "id,title,prompt,status,result,created_at,updated_at,completed_at"

// Create inserts a new task.
func (r *Repository) Create(ctx context.Context, t agenttask.Task) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO agent_tasks ("+taskCols+") VALUES ($1,$2,$3,$4,$5,$6,$7,$8)",
		t.ID, t.Title, t.Prompt, string(t.Status), t.Result, t.CreatedAt, t.UpdatedAt, t.CompletedAt)
	return err
}

// Get retrieves a task by ID.
func (r *Repository) Get(ctx context.Context, id string) (agenttask.Task, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+taskCols+" FROM agent_tasks WHERE id=$1", id)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return agenttask.Task{}, agenttask.ErrNotFound
	}
	return t, err
}

// List fetches all tasks, newest first.
func (r *Repository) List(ctx context.Context) ([]agenttask.Task, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+taskCols+" FROM agent_tasks ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var tasks []agenttask.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Update replaces an existing task.
func (r *Repository) Update(ctx context.Context, t agenttask.Task) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE agent_tasks SET title=$2, prompt=$3, status=$4, result=$5, updated_at=$6, completed_at=$7 WHERE id=$1",
		t.ID, t.Title, t.Prompt, string(t.Status), t.Result, t.UpdatedAt, t.CompletedAt)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return agenttask.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (agenttask.Task, error) {
	var t agenttask.Task
	var status string
	var result sql.NullString
	var completed sql.NullTime
	err := row.Scan(&t.ID, &t.Title, &t.Prompt, &status, &result, &t.CreatedAt, &t.UpdatedAt, &completed)
	if err != nil {
		return agenttask.Task{}, err
	}
	t.Status = agenttask.Status(status)
	t.Result = result.String
	if completed.Valid {
		c := completed.Time
		t.CompletedAt = &c
	}
	return t, nil
}
