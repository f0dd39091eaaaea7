package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-workforce/internal/employee"
	employeeerrors "go-workforce/internal/employee/errors"
	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/shared/contextutil"

	employeeMock "go-workforce/internal/employee/mock"
	kafkaMock "go-workforce/internal/messaging/kafka/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	redismock redismock.ClientMock
	outbox    *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	dbRedis, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := employee.NewServiceWithOutbox(db, repo, outboxRepo, dbRedis)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		outbox:    outboxRepo,
		redismock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Name:         "Dana Reyes",
		Email:        "dana.reyes@example.com",
		Password:     "s3cret-pass",
		HiringDate:   "2026-01-05T00:00:00Z",
		PositionID:   uuid.New().String(),
		DepartmentID: uuid.New().String(),
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - hashes password and persists outbox event", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			ExistsByEmail(ctx, req.Email, uuid.Nil).
			Return(false, nil)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, req.Name, e.Name)
				assert.Equal(t, req.Email, e.Email)
				assert.True(t, e.IsActive)
				assert.NotEqual(t, req.Password, e.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(req.Password)))
				return nil
			})

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil).
			Times(1)

		deps.redismock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, req.Email, resp.Email)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success - outbox event carries request id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		rid := "REQ-123-ABC"
		ctx := contextutil.WithRequestID(context.Background(), rid)
		req := validCreateRequest()

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo).AnyTimes()
		deps.repo.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), MatchOutboxWithRID(rid)).
			Return(nil).
			Times(1)

		deps.redismock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		_, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("duplicate email -> conflict, no insert", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			ExistsByEmail(ctx, req.Email, uuid.Nil).
			Return(true, nil)

		_, err := deps.service.Create(ctx, req)

		assert.Error(t, err)
		assert.ErrorIs(t, err, employeeerrors.ErrEmailAlreadyExists)
	})

	t.Run("invalid hiring date -> rejected before any query", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()
		req.HiringDate = "05-01-2026"

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidHiringDate)
	})

	t.Run("unique index violation -> conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ExistsByEmail(ctx, req.Email, uuid.Nil).Return(false, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_email"})

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrEmailAlreadyExists)
	})

	t.Run("repo error -> rollback", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ExistsByEmail(ctx, req.Email, uuid.Nil).Return(false, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(errors.New("db error"))

		_, err := deps.service.Create(ctx, req)

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_FindAll(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("success - pagination metadata", func(t *testing.T) {
		mockEmployees := []employee.Employee{
			{ID: uuid.New(), Name: "Andrea", Email: "andrea@example.com", IsActive: true},
			{ID: uuid.New(), Name: "Bruno", Email: "bruno@example.com", IsActive: true},
		}

		deps.repo.EXPECT().
			FindAllActive(ctx, 10, 10).
			Return(mockEmployees, int64(25), nil).
			Times(1)

		resp, err := deps.service.FindAll(ctx, 2, 10)

		assert.NoError(t, err)
		assert.Len(t, resp.Employees, 2)
		assert.Equal(t, int64(25), resp.TotalItems)
		assert.Equal(t, 3, resp.TotalPages)
		assert.Equal(t, 2, resp.CurrentPage)
		assert.Equal(t, "Andrea", resp.Employees[0].Name)
	})

	t.Run("defaults applied for zero page and limit", func(t *testing.T) {
		deps.repo.EXPECT().
			FindAllActive(ctx, 0, 10).
			Return([]employee.Employee{}, int64(0), nil)

		resp, err := deps.service.FindAll(ctx, 0, 0)

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.CurrentPage)
		assert.Equal(t, 0, resp.TotalPages)
	})

	t.Run("error repository", func(t *testing.T) {
		deps.repo.EXPECT().
			FindAllActive(ctx, 0, 10).
			Return(nil, int64(0), errors.New("db error"))

		_, err := deps.service.FindAll(ctx, 1, 10)

		assert.Error(t, err)
	})
}

func TestEmployeeService_GetOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit - served from redis", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expected := []employee.EmployeeOptionResponse{
			{ID: uuid.New().String(), Name: "Clara"},
		}
		jsonResp, _ := json.Marshal(expected)

		deps.redismock.ExpectGet(employee.EmployeeOptionsKey).SetVal(string(jsonResp))

		resp, err := deps.service.GetOptions(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Clara", resp[0].Name)

		deps.repo.EXPECT().FindOptions(gomock.Any()).Times(0)
	})

	t.Run("cache miss - load from db, write back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(employee.EmployeeOptionsKey).RedisNil()

		mockEmployees := []employee.Employee{
			{ID: uuid.New(), Name: "Diego"},
		}
		deps.repo.EXPECT().
			FindOptions(gomock.Any()).
			Return(mockEmployees, nil).
			Times(1)

		expected := []employee.EmployeeOptionResponse{
			{ID: mockEmployees[0].ID.String(), Name: "Diego"},
		}
		jsonData, _ := json.Marshal(expected)
		deps.redismock.ExpectSet(employee.EmployeeOptionsKey, jsonData, time.Hour).SetVal("OK")

		resp, err := deps.service.GetOptions(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Diego", resp[0].Name)
	})

	t.Run("database error surfaces", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(employee.EmployeeOptionsKey).RedisNil()

		deps.repo.EXPECT().
			FindOptions(gomock.Any()).
			Return(nil, errors.New("database connection lost")).
			Times(1)

		resp, err := deps.service.GetOptions(ctx)

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Contains(t, err.Error(), "database connection lost")
	})
}

func TestEmployeeService_FindByID(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	targetID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		expected := &employee.Employee{
			ID:   uuid.MustParse(targetID),
			Name: "Erika",
		}

		deps.repo.EXPECT().
			FindByID(ctx, targetID).
			Return(expected, nil).
			Times(1)

		resp, err := deps.service.FindByID(ctx, targetID)

		assert.NoError(t, err)
		assert.Equal(t, targetID, resp.ID)
		assert.Equal(t, "Erika", resp.Name)
	})

	t.Run("not found", func(t *testing.T) {
		deps.repo.EXPECT().
			FindByID(ctx, targetID).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.FindByID(ctx, targetID)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	targetID := uuid.New()

	t.Run("success - partial update with email change", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		newName := "Renamed Employee"
		newEmail := "renamed@example.com"
		req := employee.UpdateEmployeeRequest{Name: &newName, Email: &newEmail}

		existing := &employee.Employee{
			ID:    targetID,
			Name:  "Old Name",
			Email: "old@example.com",
		}

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByID(ctx, targetID.String()).
			Return(existing, nil)
		deps.repo.EXPECT().
			ExistsByEmail(ctx, newEmail, targetID).
			Return(false, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, newName, e.Name)
				assert.Equal(t, newEmail, e.Email)
				assert.Equal(t, targetID, e.ID)
				return nil
			})

		deps.redismock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		// fresh read after commit for up to date preloads
		deps.repo.EXPECT().
			FindByID(ctx, targetID.String()).
			Return(&employee.Employee{ID: targetID, Name: newName, Email: newEmail}, nil)

		resp, err := deps.service.Update(ctx, targetID.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, newName, resp.Name)
	})

	t.Run("empty request -> rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Update(ctx, targetID.String(), employee.UpdateEmployeeRequest{})

		assert.ErrorIs(t, err, employeeerrors.ErrEmptyUpdate)
	})

	t.Run("email taken -> conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		newEmail := "taken@example.com"
		req := employee.UpdateEmployeeRequest{Email: &newEmail}

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByID(ctx, targetID.String()).
			Return(&employee.Employee{ID: targetID, Email: "old@example.com"}, nil)
		deps.repo.EXPECT().
			ExistsByEmail(ctx, newEmail, targetID).
			Return(true, nil)

		_, err := deps.service.Update(ctx, targetID.String(), req)

		assert.ErrorIs(t, err, employeeerrors.ErrEmailAlreadyExists)
	})

	t.Run("employee not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		name := "Whoever"
		req := employee.UpdateEmployeeRequest{Name: &name}

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByID(ctx, targetID.String()).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, targetID.String(), req)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("password change is rehashed once", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		newPassword := "another-secret"
		req := employee.UpdateEmployeeRequest{Password: &newPassword}

		existing := &employee.Employee{ID: targetID, PasswordHash: "old-hash"}

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, targetID.String()).Return(existing, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.NotEqual(t, "old-hash", e.PasswordHash)
				assert.NotEqual(t, newPassword, e.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(newPassword)))
				return nil
			})

		deps.redismock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)
		deps.repo.EXPECT().FindByID(ctx, targetID.String()).Return(existing, nil)

		_, err := deps.service.Update(ctx, targetID.String(), req)

		assert.NoError(t, err)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()
	targetID := uuid.New()

	t.Run("success - deactivates instead of removing the row", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		existing := &employee.Employee{ID: targetID, Name: "Leaving", IsActive: true}

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, targetID.String()).Return(existing, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.False(t, e.IsActive)
				return nil
			})

		deps.redismock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		resp, err := deps.service.Delete(ctx, targetID.String())

		assert.NoError(t, err)
		assert.False(t, resp.IsActive)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, targetID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Delete(ctx, targetID.String())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

type outboxRequestIDMatcher struct {
	expectedRID string
}

func (m outboxRequestIDMatcher) Matches(x any) bool {
	event, ok := x.(kafka.OutboxEvent)
	if !ok {
		return false
	}

	if event.RequestID != m.expectedRID {
		return false
	}

	var payload events.EmployeeCreatedEvent
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return false
	}

	return payload.RequestID == m.expectedRID
}

func (m outboxRequestIDMatcher) String() string {
	return "matches outbox event with request_id " + m.expectedRID
}

func MatchOutboxWithRID(rid string) gomock.Matcher {
	return outboxRequestIDMatcher{expectedRID: rid}
}
