package board

import (
	"context"

	"github.com/quadodev/quado/internal/models"
	"github.com/quadodev/quado/internal/services/group"
	"github.com/quadodev/quado/internal/services/settings"
	"github.com/quadodev/quado/internal/services/task"
)

// Service assembles everything the UI needs in one call
type Service interface {
	GetBoard(ctx context.Context) (*models.Board, error)
}

// service composes the entity services into the board aggregate
type service struct {
	groups   group.Service
	tasks    task.Service
	settings settings.Service
}

// NewService creates a new board service over the entity services
func NewService(groups group.Service, tasks task.Service, settings settings.Service) Service {
	return &service{groups: groups, tasks: tasks, settings: settings}
}

// GetBoard loads groups, tasks and settings together so the UI refreshes
// with a single call
func (s *service) GetBoard(ctx context.Context) (*models.Board, error) {
	groups, err := s.groups.ListGroups(ctx)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	return &models.Board{
		Groups:   groups,
		Tasks:    tasks,
		Settings: settings,
		Statuses: models.Statuses(),
	}, nil
}
