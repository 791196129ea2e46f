package group

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/quadodev/quado/internal/models"
)

// maxNameRunes bounds group names, measured in code points so multi-byte
// scripts get the same budget as ASCII
const maxNameRunes = 50

// Service defines all group-related business operations
type Service interface {
	ListGroups(ctx context.Context) ([]*models.Group, error)
	UpsertGroup(ctx context.Context, id int64, name string) (*models.Group, error)
	DeleteGroup(ctx context.Context, id int64) error
}

// repository defines the data access methods needed by the group service.
// This interface is private to the service layer.
type repository interface {
	ListGroups(ctx context.Context) ([]*models.Group, error)
	CreateGroup(ctx context.Context, name string) (*models.Group, error)
	UpdateGroupName(ctx context.Context, id int64, name string) (*models.Group, error)
	DeleteGroup(ctx context.Context, id int64) error
}

// service implements Service with a private repository
type service struct {
	repo repository
}

// NewService creates a new group service
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// ListGroups retrieves all groups ascending by ID
func (s *service) ListGroups(ctx context.Context) ([]*models.Group, error) {
	return s.repo.ListGroups(ctx)
}

// UpsertGroup creates a group when id is zero and renames it otherwise.
// Renaming a group to its own current name succeeds.
func (s *service) UpsertGroup(ctx context.Context, id int64, name string) (*models.Group, error) {
	if id < 0 {
		return nil, ErrInvalidGroupID
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if utf8.RuneCountInString(name) > maxNameRunes {
		return nil, ErrNameTooLong
	}

	if id == 0 {
		return s.repo.CreateGroup(ctx, name)
	}
	return s.repo.UpdateGroupName(ctx, id, name)
}

// DeleteGroup removes a group; its tasks go with it via the cascade
func (s *service) DeleteGroup(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidGroupID
	}
	return s.repo.DeleteGroup(ctx, id)
}
