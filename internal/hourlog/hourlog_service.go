package hourlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-workforce/internal/events"
	hourlogerrors "go-workforce/internal/hourlog/errors"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=hourlog_service.go -destination=mock/hourlog_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateHourLogRequest) (HourLogResponse, error)
	FindAll(ctx context.Context, page, limit int, employeeID, taskID, status string) (PaginatedHourLogsResponse, error)
	FindByID(ctx context.Context, id string) (HourLogResponse, error)
	Update(ctx context.Context, id string, req UpdateHourLogRequest) (HourLogResponse, error)
	Decide(ctx context.Context, id, approverID string, req DecideHourLogRequest) (HourLogResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("hourlog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("hourlog.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateHourLogRequest) (HourLogResponse, error) {
	logDate, err := time.Parse(time.RFC3339, req.LogDate)
	if err != nil {
		return HourLogResponse{}, hourlogerrors.ErrInvalidLogDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return HourLogResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	log := &HourLog{
		ID:             uuid.New(),
		TaskID:         uuid.MustParse(req.TaskID),
		EmployeeID:     uuid.MustParse(req.EmployeeID),
		LogDate:        logDate,
		HoursWorked:    req.HoursWorked,
		Description:    req.Description,
		ApprovalStatus: ApprovalPending,
	}

	if err := qtx.Create(ctx, log); err != nil {
		return HourLogResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return HourLogResponse{}, err
	}

	return mapToResponse(*log), nil
}

func (s *service) FindAll(ctx context.Context, page, limit int, employeeID, taskID, status string) (PaginatedHourLogsResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	logs, total, err := s.repo.FindAll(ctx, (page-1)*limit, limit, employeeID, taskID, status)
	if err != nil {
		return PaginatedHourLogsResponse{}, mapRepositoryError(err)
	}

	resp := make([]HourLogResponse, len(logs))
	for i, log := range logs {
		resp[i] = mapToResponse(log)
	}

	return PaginatedHourLogsResponse{
		TotalItems:  total,
		HourLogs:    resp,
		TotalPages:  int((total + int64(limit) - 1) / int64(limit)),
		CurrentPage: page,
	}, nil
}

func (s *service) FindByID(ctx context.Context, id string) (HourLogResponse, error) {
	log, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return HourLogResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*log), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateHourLogRequest) (HourLogResponse, error) {
	if req.Empty() {
		return HourLogResponse{}, hourlogerrors.ErrEmptyHourLogUpdate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return HourLogResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	log, err := qtx.FindByID(ctx, id)
	if err != nil {
		return HourLogResponse{}, mapRepositoryError(err)
	}

	// Only pending entries may change. Decided logs are part of the
	// approval record.
	if log.ApprovalStatus != ApprovalPending {
		return HourLogResponse{}, hourlogerrors.ErrAlreadyDecided
	}

	if req.LogDate != nil {
		logDate, err := time.Parse(time.RFC3339, *req.LogDate)
		if err != nil {
			return HourLogResponse{}, hourlogerrors.ErrInvalidLogDate
		}
		log.LogDate = logDate
	}
	if req.HoursWorked != nil {
		log.HoursWorked = *req.HoursWorked
	}
	if req.Description != nil {
		log.Description = req.Description
	}

	if err := qtx.Update(ctx, log); err != nil {
		return HourLogResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return HourLogResponse{}, err
	}

	return mapToResponse(*log), nil
}

func (s *service) Decide(ctx context.Context, id, approverID string, req DecideHourLogRequest) (HourLogResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	approver, err := uuid.Parse(approverID)
	if err != nil {
		return HourLogResponse{}, hourlogerrors.ErrInvalidHourLogID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return HourLogResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	log, err := qtx.FindByID(ctx, id)
	if err != nil {
		return HourLogResponse{}, mapRepositoryError(err)
	}

	if log.ApprovalStatus != ApprovalPending {
		return HourLogResponse{}, hourlogerrors.ErrAlreadyDecided
	}

	now := time.Now().UTC()
	log.ApprovalStatus = req.Status
	log.ApproverID = &approver
	log.ApprovalDate = &now
	log.Approver = nil

	if err := qtx.Update(ctx, log); err != nil {
		return HourLogResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.HourLogDecidedEvent{
			EventType:  "hourlog_decided",
			RequestID:  rid,
			HourLogID:  log.ID.String(),
			EmployeeID: log.EmployeeID.String(),
			ApproverID: approverID,
			Status:     req.Status,
			OccurredAt: now,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return HourLogResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "hour_log",
			AggregateID:   log.ID.String(),
			EventType:     event.EventType,
			Topic:         events.HourLogDecidedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("hour log outbox persist failed",
				zap.String("hour_log_id", log.ID.String()),
				zap.Error(err),
			)
			return HourLogResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return HourLogResponse{}, err
	}

	s.logger.Info("hour log decided",
		zap.String("request_id", rid),
		zap.String("hour_log_id", log.ID.String()),
		zap.String("status", req.Status),
	)

	return mapToResponse(*log), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	log, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if log.ApprovalStatus != ApprovalPending {
		return hourlogerrors.ErrAlreadyDecided
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return hourlogerrors.ErrHourLogNotFound
	}
	return err
}

func mapToResponse(log HourLog) HourLogResponse {
	resp := HourLogResponse{
		ID:             log.ID.String(),
		TaskID:         log.TaskID.String(),
		EmployeeID:     log.EmployeeID.String(),
		LogDate:        log.LogDate.Format(time.RFC3339),
		HoursWorked:    log.HoursWorked,
		Description:    log.Description,
		ApprovalStatus: log.ApprovalStatus,
		CreatedAt:      log.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      log.UpdatedAt.Format(time.RFC3339),
	}
	if log.ApproverID != nil {
		aid := log.ApproverID.String()
		resp.ApproverID = &aid
	}
	if log.ApprovalDate != nil {
		ad := log.ApprovalDate.Format(time.RFC3339)
		resp.ApprovalDate = &ad
	}
	if log.Employee != nil {
		resp.Employee = &HourLogEmployeeResponse{
			ID:    log.Employee.ID.String(),
			Name:  log.Employee.Name,
			Email: log.Employee.Email,
		}
	}
	if log.Approver != nil {
		resp.Approver = &HourLogEmployeeResponse{
			ID:    log.Approver.ID.String(),
			Name:  log.Approver.Name,
			Email: log.Approver.Email,
		}
	}
	return resp
}
