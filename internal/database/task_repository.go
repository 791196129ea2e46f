package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/quadodev/quado/internal/models"
)

// TaskRepo handles all task-related database operations.
type TaskRepo struct {
	db *sql.DB
}

// ListTasks retrieves all tasks, most recently updated first. Ties on
// updated_at fall back to ID descending so the order stays deterministic.
func (r *TaskRepo) ListTasks(ctx context.Context) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, group_id, title, content, status, important, urgent, created_at, updated_at
		 FROM tasks
		 ORDER BY updated_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	tasks := make([]*models.Task, 0, 16)
	for rows.Next() {
		task := &models.Task{}
		var status string
		var important, urgent int
		if err := rows.Scan(
			&task.ID, &task.GroupID, &task.Title, &task.Content,
			&status, &important, &urgent, &task.CreatedAt, &task.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		parsed, err := models.ParseStatus(status)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored task status: %w", err)
		}
		task.Status = parsed
		task.Important = important == 1
		task.Urgent = urgent == 1
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}
	return tasks, nil
}

// GetTaskByID retrieves a single task
func (r *TaskRepo) GetTaskByID(ctx context.Context, id int64) (*models.Task, error) {
	task := &models.Task{}
	var status string
	var important, urgent int
	err := r.db.QueryRowContext(ctx,
		`SELECT id, group_id, title, content, status, important, urgent, created_at, updated_at
		 FROM tasks WHERE id = ?`,
		id,
	).Scan(
		&task.ID, &task.GroupID, &task.Title, &task.Content,
		&status, &important, &urgent, &task.CreatedAt, &task.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}

	parsed, err := models.ParseStatus(status)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored task status: %w", err)
	}
	task.Status = parsed
	task.Important = important == 1
	task.Urgent = urgent == 1
	return task, nil
}

// CreateTask inserts a new task and returns it with its assigned ID and
// timestamps
func (r *TaskRepo) CreateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	now := time.Now().UnixMilli()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks(group_id, title, content, status, important, urgent, created_at, updated_at)
		 VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		task.GroupID, task.Title, task.Content, string(task.Status),
		boolToInt(task.Important), boolToInt(task.Urgent), now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert task %q: %w", task.Title, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get task ID after insert: %w", err)
	}

	created := *task
	created.ID = id
	created.CreatedAt = now
	created.UpdatedAt = now
	return &created, nil
}

// UpdateTask updates all mutable fields of an existing task and returns the
// persisted row
func (r *TaskRepo) UpdateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	now := time.Now().UnixMilli()
	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks
		 SET group_id = ?, title = ?, content = ?, status = ?, important = ?, urgent = ?, updated_at = ?
		 WHERE id = ?`,
		task.GroupID, task.Title, task.Content, string(task.Status),
		boolToInt(task.Important), boolToInt(task.Urgent), now, task.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update task %d: %w", task.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected for task %d: %w", task.ID, err)
	}
	if affected == 0 {
		return nil, ErrTaskNotFound
	}

	return r.GetTaskByID(ctx, task.ID)
}

// DeleteTask removes a task
func (r *TaskRepo) DeleteTask(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected for task %d: %w", id, err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// boolToInt encodes a flag for the 0/1 integer columns
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
