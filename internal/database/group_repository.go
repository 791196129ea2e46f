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

// GroupRepo handles all group-related database operations.
type GroupRepo struct {
	db *sql.DB
}

// ListGroups retrieves all groups ascending by ID for a stable display order
func (r *GroupRepo) ListGroups(ctx context.Context) ([]*models.Group, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_at, updated_at FROM groups ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query groups: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	groups := make([]*models.Group, 0, 8)
	for rows.Next() {
		group := &models.Group{}
		if err := rows.Scan(&group.ID, &group.Name, &group.CreatedAt, &group.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group row: %w", err)
		}
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating group rows: %w", err)
	}
	return groups, nil
}

// CreateGroup inserts a new group and returns it with its assigned ID
func (r *GroupRepo) CreateGroup(ctx context.Context, name string) (*models.Group, error) {
	now := time.Now().UnixMilli()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO groups(name, created_at, updated_at) VALUES(?, ?, ?)`,
		name, now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateGroupName
		}
		return nil, fmt.Errorf("failed to insert group %q: %w", name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get group ID after insert: %w", err)
	}

	return &models.Group{ID: id, Name: name, CreatedAt: now, UpdatedAt: now}, nil
}

// UpdateGroupName renames a group and returns the persisted row
func (r *GroupRepo) UpdateGroupName(ctx context.Context, id int64, name string) (*models.Group, error) {
	now := time.Now().UnixMilli()
	result, err := r.db.ExecContext(ctx,
		`UPDATE groups SET name = ?, updated_at = ? WHERE id = ?`,
		name, now, id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateGroupName
		}
		return nil, fmt.Errorf("failed to update group %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected for group %d: %w", id, err)
	}
	if affected == 0 {
		return nil, ErrGroupNotFound
	}

	group := &models.Group{}
	if err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM groups WHERE id = ?`,
		id,
	).Scan(&group.ID, &group.Name, &group.CreatedAt, &group.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to reload group %d: %w", id, err)
	}
	return group, nil
}

// DeleteGroup removes a group. Owned tasks go with it through the foreign
// key cascade; no separate task deletion happens here.
func (r *GroupRepo) DeleteGroup(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM groups WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete group %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected for group %d: %w", id, err)
	}
	if affected == 0 {
		return ErrGroupNotFound
	}
	return nil
}

// GroupExists reports whether a group row exists for the given ID
func (r *GroupRepo) GroupExists(ctx context.Context, id int64) (bool, error) {
	var found int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM groups WHERE id = ?`, id).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check group %d: %w", id, err)
	}
	return true, nil
}
