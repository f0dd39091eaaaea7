package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	employeeerrors "go-workforce/internal/employee/errors"
	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
)

// bcryptCost matches the salt rounds the system has always used.
const bcryptCost = 10

const EmployeeOptionsKey = "employees:options"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	FindAll(ctx context.Context, page, limit int) (PaginatedEmployeesResponse, error)
	FindByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) (EmployeeResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("position_id", req.PositionID),
	)

	hiringDate, err := time.Parse(time.RFC3339, req.HiringDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidHiringDate
	}
	birthDate, err := parseOptionalDate(req.BirthDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidBirthDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// The check and the insert run in the same transaction: two concurrent
	// creates with one email cannot both pass.
	taken, err := qtx.ExistsByEmail(ctx, req.Email, uuid.Nil)
	if err != nil {
		s.logger.Error("create employee email check failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if taken {
		return EmployeeResponse{}, employeeerrors.ErrEmailAlreadyExists
	}

	// The plaintext is hashed exactly once, here. Nothing downstream ever
	// sees or stores it.
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		s.logger.Error("create employee hash failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Cellphone:    req.Cellphone,
		HiringDate:   hiringDate,
		BirthDate:    birthDate,
		Address:      req.Address,
		PositionID:   uuid.MustParse(req.PositionID),
		DepartmentID: uuid.MustParse(req.DepartmentID),
		SupervisorID: uuidPtr(req.SupervisorID),
		IsActive:     true,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee_created",
			RequestID:  rid,
			EmployeeID: empl.ID.String(),
			Email:      empl.Email,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return mapToResponse(*empl), nil
}

func (s *service) FindAll(ctx context.Context, page, limit int) (PaginatedEmployeesResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	empls, total, err := s.repo.FindAllActive(ctx, offset, limit)
	if err != nil {
		s.logger.Error("find all employees failed", zap.Error(err))
		return PaginatedEmployeesResponse{}, mapRepositoryError(err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return PaginatedEmployeesResponse{
		TotalItems:  total,
		Employees:   mapToListResponse(empls),
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

func (s *service) FindByID(ctx context.Context, id string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("find employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeOptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Collapse concurrent misses into one database read.
	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		empls, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeOptionResponse, len(empls))
		for i, e := range empls {
			resp[i] = EmployeeOptionResponse{ID: e.ID.String(), Name: e.Name}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, EmployeeOptionsKey, jsonData, time.Hour)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOptionResponse), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))

	if req.Empty() {
		return EmployeeResponse{}, employeeerrors.ErrEmptyUpdate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if req.Email != nil && *req.Email != empl.Email {
		taken, err := qtx.ExistsByEmail(ctx, *req.Email, empl.ID)
		if err != nil {
			s.logger.Error("update employee email check failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		if taken {
			return EmployeeResponse{}, employeeerrors.ErrEmailAlreadyExists
		}
		empl.Email = *req.Email
	}

	if req.Password != nil {
		// Hash once, explicitly. No write hook re-hashes this value later.
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			s.logger.Error("update employee hash failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		empl.PasswordHash = string(hash)
	}

	if err := applyPartialUpdate(empl, req); err != nil {
		return EmployeeResponse{}, err
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)

	refreshed, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(*refreshed), nil
}

func (s *service) Delete(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	// Soft delete: the row stays for referential integrity, listings skip it.
	empl.IsActive = false

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("delete employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return mapToResponse(*empl), nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache", zap.Error(err))
	}
}

func applyPartialUpdate(empl *Employee, req UpdateEmployeeRequest) error {
	if req.Name != nil {
		empl.Name = *req.Name
	}
	if req.HiringDate != nil {
		hiringDate, err := time.Parse(time.RFC3339, *req.HiringDate)
		if err != nil {
			return employeeerrors.ErrInvalidHiringDate
		}
		empl.HiringDate = hiringDate
	}
	if req.BirthDate != nil {
		birthDate, err := parseOptionalDate(req.BirthDate)
		if err != nil {
			return employeeerrors.ErrInvalidBirthDate
		}
		empl.BirthDate = birthDate
	}
	if req.Cellphone != nil {
		empl.Cellphone = req.Cellphone
	}
	if req.Address != nil {
		empl.Address = req.Address
	}
	if req.PositionID != nil {
		empl.PositionID = uuid.MustParse(*req.PositionID)
		empl.Position = nil
	}
	if req.DepartmentID != nil {
		empl.DepartmentID = uuid.MustParse(*req.DepartmentID)
		empl.Department = nil
	}
	if req.SupervisorID != nil {
		empl.SupervisorID = uuidPtr(req.SupervisorID)
		empl.Supervisor = nil
	}
	if req.IsActive != nil {
		empl.IsActive = *req.IsActive
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

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           empl.ID.String(),
		Name:         empl.Name,
		Email:        empl.Email,
		Cellphone:    empl.Cellphone,
		HiringDate:   empl.HiringDate.Format(time.RFC3339),
		Address:      empl.Address,
		PositionID:   empl.PositionID.String(),
		DepartmentID: empl.DepartmentID.String(),
		IsActive:     empl.IsActive,
		CreatedAt:    empl.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    empl.UpdatedAt.Format(time.RFC3339),
	}
	if empl.BirthDate != nil {
		bd := empl.BirthDate.Format(time.RFC3339)
		resp.BirthDate = &bd
	}
	if empl.SupervisorID != nil {
		sid := empl.SupervisorID.String()
		resp.SupervisorID = &sid
	}
	if empl.Position != nil {
		resp.Position = &EmployeePositionResponse{
			ID:                empl.Position.ID.String(),
			Name:              empl.Position.Name,
			Description:       empl.Position.Description,
			HierarchicalLevel: empl.Position.HierarchicalLevel,
		}
	}
	if empl.Department != nil {
		resp.Department = &EmployeeDepartmentResponse{
			ID:          empl.Department.ID.String(),
			Name:        empl.Department.Name,
			Description: empl.Department.Description,
		}
	}
	if empl.Supervisor != nil {
		resp.Supervisor = &EmployeeSupervisorResponse{
			ID:    empl.Supervisor.ID.String(),
			Name:  empl.Supervisor.Name,
			Email: empl.Supervisor.Email,
		}
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
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
