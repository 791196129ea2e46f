package task

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/quadodev/quado/internal/models"
)

// Length limits measured in code points, not bytes
const (
	maxTitleRunes   = 200
	maxContentRunes = 1000
)

// Service defines all task-related business operations
type Service interface {
	ListTasks(ctx context.Context) ([]*models.Task, error)
	UpsertTask(ctx context.Context, req UpsertTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// UpsertTaskRequest encapsulates data for creating or updating a task.
// A zero ID creates a new task; a positive ID updates an existing one.
type UpsertTaskRequest struct {
	ID        int64
	GroupID   int64
	Title     string
	Content   string
	Status    string
	Important bool
	Urgent    bool
}

// repository defines the data access methods needed by the task service.
// This interface is private to the service layer.
type repository interface {
	ListTasks(ctx context.Context) ([]*models.Task, error)
	CreateTask(ctx context.Context, task *models.Task) (*models.Task, error)
	UpdateTask(ctx context.Context, task *models.Task) (*models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// groupRepository is needed to verify task ownership before a write, so the
// caller gets a precise error instead of a raw foreign key violation
type groupRepository interface {
	GroupExists(ctx context.Context, id int64) (bool, error)
}

// service implements Service with private repositories
type service struct {
	repo      repository
	groupRepo groupRepository
}

// NewService creates a new task service
func NewService(repo repository, groupRepo groupRepository) Service {
	return &service{repo: repo, groupRepo: groupRepo}
}

// ListTasks retrieves all tasks, most recently updated first
func (s *service) ListTasks(ctx context.Context) ([]*models.Task, error) {
	return s.repo.ListTasks(ctx)
}

// UpsertTask validates the request and creates or updates a task. The
// returned task is the persisted row, including assigned ID and timestamps.
//
// Status is a plain three-state enum with no transition graph: any state is
// reachable from any other. Unchecking "done" in the UI resets status to
// todo, not to whatever it was before, which loses a prior doing state.
// That matches the product's intent of a simple checkbox, so it stays.
func (s *service) UpsertTask(ctx context.Context, req UpsertTaskRequest) (*models.Task, error) {
	if req.ID < 0 {
		return nil, ErrInvalidTaskID
	}

	task, err := s.validateRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	if req.ID == 0 {
		return s.repo.CreateTask(ctx, task)
	}
	return s.repo.UpdateTask(ctx, task)
}

// DeleteTask removes a task
func (s *service) DeleteTask(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidTaskID
	}
	return s.repo.DeleteTask(ctx, id)
}

// validateRequest checks every field in a fixed order so error reporting is
// deterministic, and builds the model the repository will persist
func (s *service) validateRequest(ctx context.Context, req UpsertTaskRequest) (*models.Task, error) {
	if req.GroupID <= 0 {
		return nil, ErrInvalidGroupID
	}
	exists, err := s.groupRepo.GroupExists(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrGroupNotFound
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > maxTitleRunes {
		return nil, ErrTitleTooLong
	}

	content := strings.TrimSpace(req.Content)
	if utf8.RuneCountInString(content) > maxContentRunes {
		return nil, ErrContentTooLong
	}

	status, err := models.ParseStatus(req.Status)
	if err != nil {
		return nil, ErrInvalidStatus
	}

	return &models.Task{
		ID:        req.ID,
		GroupID:   req.GroupID,
		Title:     title,
		Content:   content,
		Status:    status,
		Important: req.Important,
		Urgent:    req.Urgent,
	}, nil
}
