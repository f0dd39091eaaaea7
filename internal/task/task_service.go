package task

import (
	"context"
	"database/sql"
	"time"

	taskerrors "go-workforce/internal/task/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=task_service.go -destination=mock/task_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, creatorID string, req CreateTaskRequest) (TaskResponse, error)
	FindAll(ctx context.Context, page, limit int, status, projectID string) (PaginatedTasksResponse, error)
	FindByID(ctx context.Context, id string) (TaskResponse, error)
	Update(ctx context.Context, id string, req UpdateTaskRequest) (TaskResponse, error)
	Delete(ctx context.Context, id string) error

	Assign(ctx context.Context, taskID string, req AssignTaskRequest) (TaskResponse, error)
	Unassign(ctx context.Context, taskID, employeeID string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("task.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("task.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, creatorID string, req CreateTaskRequest) (TaskResponse, error) {
	creator, err := uuid.Parse(creatorID)
	if err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidTaskID
	}

	dueDate, err := parseOptionalDate(req.DueDate)
	if err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidDueDate
	}

	priority := PriorityMedium
	if req.Priority != nil {
		priority = *req.Priority
	}
	status := StatusPending
	if req.Status != nil {
		status = *req.Status
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TaskResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t := &Task{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		DueDate:     dueDate,
		Priority:    priority,
		Status:      status,
		ProjectID:   uuidPtr(req.ProjectID),
		CreatorID:   creator,
	}

	if err := qtx.Create(ctx, t); err != nil {
		return TaskResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return TaskResponse{}, err
	}

	return mapToResponse(*t, nil), nil
}

func (s *service) FindAll(ctx context.Context, page, limit int, status, projectID string) (PaginatedTasksResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	tasks, total, err := s.repo.FindAll(ctx, (page-1)*limit, limit, status, projectID)
	if err != nil {
		return PaginatedTasksResponse{}, mapRepositoryError(err)
	}

	resp := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		resp[i] = mapToResponse(t, nil)
	}

	return PaginatedTasksResponse{
		TotalItems:  total,
		Tasks:       resp,
		TotalPages:  int((total + int64(limit) - 1) / int64(limit)),
		CurrentPage: page,
	}, nil
}

func (s *service) FindByID(ctx context.Context, id string) (TaskResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TaskResponse{}, mapRepositoryError(err)
	}

	assignees, err := s.repo.FindAssignees(ctx, id)
	if err != nil {
		return TaskResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*t, assignees), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateTaskRequest) (TaskResponse, error) {
	if req.Empty() {
		return TaskResponse{}, taskerrors.ErrEmptyTaskUpdate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TaskResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t, err := qtx.FindByID(ctx, id)
	if err != nil {
		return TaskResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Description != nil {
		t.Description = req.Description
	}
	if req.DueDate != nil {
		dueDate, err := parseOptionalDate(req.DueDate)
		if err != nil {
			return TaskResponse{}, taskerrors.ErrInvalidDueDate
		}
		t.DueDate = dueDate
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if req.ProjectID != nil {
		t.ProjectID = uuidPtr(req.ProjectID)
		t.Project = nil
	}

	if err := qtx.Update(ctx, t); err != nil {
		return TaskResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return TaskResponse{}, err
	}

	return mapToResponse(*t, nil), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return mapRepositoryError(s.repo.Delete(ctx, id))
}

func (s *service) Assign(ctx context.Context, taskID string, req AssignTaskRequest) (TaskResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TaskResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t, err := qtx.FindByID(ctx, taskID)
	if err != nil {
		return TaskResponse{}, mapRepositoryError(err)
	}

	assignment := &EmployeeTask{
		ID:                uuid.New(),
		EmployeeID:        uuid.MustParse(req.EmployeeID),
		TaskID:            t.ID,
		IsMainResponsible: req.IsMainResponsible,
	}

	if err := qtx.Assign(ctx, assignment); err != nil {
		return TaskResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return TaskResponse{}, err
	}

	assignees, err := s.repo.FindAssignees(ctx, taskID)
	if err != nil {
		return TaskResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*t, assignees), nil
}

func (s *service) Unassign(ctx context.Context, taskID, employeeID string) error {
	if err := s.repo.Unassign(ctx, taskID, employeeID); err != nil {
		mapped := mapRepositoryError(err)
		if mapped == taskerrors.ErrTaskNotFound {
			return taskerrors.ErrAssignmentNotFound
		}
		return mapped
	}
	return nil
}

func parseOptionalDate(v *string) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func mapToResponse(t Task, assignments []EmployeeTask) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
		CreatorID:   t.CreatorID.String(),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
	if t.DueDate != nil {
		due := t.DueDate.Format(time.RFC3339)
		resp.DueDate = &due
	}
	if t.ProjectID != nil {
		pid := t.ProjectID.String()
		resp.ProjectID = &pid
	}
	for _, a := range assignments {
		ar := TaskAssigneeResponse{
			EmployeeID:        a.EmployeeID.String(),
			AssignmentDate:    a.AssignmentDate.Format(time.RFC3339),
			IsMainResponsible: a.IsMainResponsible,
		}
		if a.Employee != nil {
			ar.Name = a.Employee.Name
			ar.Email = a.Employee.Email
		}
		resp.Assignees = append(resp.Assignees, ar)
	}
	return resp
}

func uuidPtr(v *string) *uuid.UUID {
	if v == nil {
		return nil
	}
	id, err := uuid.Parse(*v)
	if err != nil {
		return nil
	}
	return &id
}
