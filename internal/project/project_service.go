package project

import (
	"context"
	"database/sql"
	"time"

	projecterrors "go-workforce/internal/project/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=project_service.go -destination=mock/project_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	FindAll(ctx context.Context, page, limit int, status string) (PaginatedProjectsResponse, error)
	FindByID(ctx context.Context, id string) (ProjectResponse, error)
	Update(ctx context.Context, id string, req UpdateProjectRequest) (ProjectResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("project.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error) {
	startDate, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		return ProjectResponse{}, projecterrors.ErrInvalidStartDate
	}

	var expectedEnd *time.Time
	if req.ExpectedEndDate != nil {
		t, err := time.Parse(time.RFC3339, *req.ExpectedEndDate)
		if err != nil {
			return ProjectResponse{}, projecterrors.ErrInvalidEndDate
		}
		expectedEnd = &t
	}

	status := StatusPending
	if req.Status != nil {
		status = *req.Status
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ProjectResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	proj := &Project{
		ID:              uuid.New(),
		Name:            req.Name,
		Description:     req.Description,
		StartDate:       startDate,
		ExpectedEndDate: expectedEnd,
		Status:          status,
		ManagerID:       uuid.MustParse(req.ManagerID),
	}

	if err := qtx.Create(ctx, proj); err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ProjectResponse{}, err
	}

	return mapToResponse(*proj), nil
}

func (s *service) FindAll(ctx context.Context, page, limit int, status string) (PaginatedProjectsResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	projects, total, err := s.repo.FindAll(ctx, (page-1)*limit, limit, status)
	if err != nil {
		return PaginatedProjectsResponse{}, mapRepositoryError(err)
	}

	resp := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		resp[i] = mapToResponse(p)
	}

	return PaginatedProjectsResponse{
		TotalItems:  total,
		Projects:    resp,
		TotalPages:  int((total + int64(limit) - 1) / int64(limit)),
		CurrentPage: page,
	}, nil
}

func (s *service) FindByID(ctx context.Context, id string) (ProjectResponse, error) {
	proj, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*proj), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateProjectRequest) (ProjectResponse, error) {
	if req.Empty() {
		return ProjectResponse{}, projecterrors.ErrEmptyProjectUpdate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ProjectResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	proj, err := qtx.FindByID(ctx, id)
	if err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		proj.Name = *req.Name
	}
	if req.Description != nil {
		proj.Description = req.Description
	}
	if req.StartDate != nil {
		startDate, err := time.Parse(time.RFC3339, *req.StartDate)
		if err != nil {
			return ProjectResponse{}, projecterrors.ErrInvalidStartDate
		}
		proj.StartDate = startDate
	}
	if req.ExpectedEndDate != nil {
		t, err := time.Parse(time.RFC3339, *req.ExpectedEndDate)
		if err != nil {
			return ProjectResponse{}, projecterrors.ErrInvalidEndDate
		}
		proj.ExpectedEndDate = &t
	}
	if req.Status != nil {
		proj.Status = *req.Status
	}
	if req.ManagerID != nil {
		proj.ManagerID = uuid.MustParse(*req.ManagerID)
		proj.Manager = nil
	}

	if err := qtx.Update(ctx, proj); err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ProjectResponse{}, err
	}

	return mapToResponse(*proj), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func mapToResponse(proj Project) ProjectResponse {
	resp := ProjectResponse{
		ID:          proj.ID.String(),
		Name:        proj.Name,
		Description: proj.Description,
		StartDate:   proj.StartDate.Format(time.RFC3339),
		Status:      proj.Status,
		ManagerID:   proj.ManagerID.String(),
		CreatedAt:   proj.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   proj.UpdatedAt.Format(time.RFC3339),
	}
	if proj.ExpectedEndDate != nil {
		end := proj.ExpectedEndDate.Format(time.RFC3339)
		resp.ExpectedEndDate = &end
	}
	if proj.Manager != nil {
		resp.Manager = &ProjectManagerResponse{
			ID:    proj.Manager.ID.String(),
			Name:  proj.Manager.Name,
			Email: proj.Manager.Email,
		}
	}
	return resp
}
