package hourlog_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"go-workforce/internal/events"
	"go-workforce/internal/hourlog"
	hourlogerrors "go-workforce/internal/hourlog/errors"
	"go-workforce/internal/messaging/kafka"

	hourlogMock "go-workforce/internal/hourlog/mock"
	kafkaMock "go-workforce/internal/messaging/kafka/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service hourlog.Service
	repo    *hourlogMock.MockRepository
	outbox  *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := hourlogMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := hourlog.NewService(db, repo, outboxRepo)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		outbox:  outboxRepo,
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

func TestHourLogService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - starts pending", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := hourlog.CreateHourLogRequest{
			TaskID:      uuid.New().String(),
			EmployeeID:  uuid.New().String(),
			LogDate:     "2026-08-20T00:00:00Z",
			HoursWorked: 6.5,
		}

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, log *hourlog.HourLog) error {
				assert.Equal(t, hourlog.ApprovalPending, log.ApprovalStatus)
				assert.Equal(t, 6.5, log.HoursWorked)
				assert.Nil(t, log.ApproverID)
				return nil
			})

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, hourlog.ApprovalPending, resp.ApprovalStatus)
	})

	t.Run("invalid log date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := hourlog.CreateHourLogRequest{
			TaskID:      uuid.New().String(),
			EmployeeID:  uuid.New().String(),
			LogDate:     "20/08/2026",
			HoursWorked: 6.5,
		}

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, hourlogerrors.ErrInvalidLogDate)
	})
}

func TestHourLogService_Decide(t *testing.T) {
	ctx := context.Background()
	logID := uuid.New()
	approverID := uuid.New().String()

	pendingLog := func() *hourlog.HourLog {
		return &hourlog.HourLog{
			ID:             logID,
			TaskID:         uuid.New(),
			EmployeeID:     uuid.New(),
			HoursWorked:    4,
			ApprovalStatus: hourlog.ApprovalPending,
		}
	}

	t.Run("approve - stamps approver and publishes event", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, logID.String()).Return(pendingLog(), nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, log *hourlog.HourLog) error {
				assert.Equal(t, hourlog.ApprovalApproved, log.ApprovalStatus)
				assert.NotNil(t, log.ApproverID)
				assert.Equal(t, approverID, log.ApproverID.String())
				assert.NotNil(t, log.ApprovalDate)
				return nil
			})

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, events.HourLogDecidedTopic, ev.Topic)
				assert.Equal(t, "hour_log", ev.AggregateType)

				var payload events.HourLogDecidedEvent
				assert.NoError(t, json.Unmarshal(ev.Payload, &payload))
				assert.Equal(t, hourlog.ApprovalApproved, payload.Status)
				assert.Equal(t, approverID, payload.ApproverID)
				return nil
			})

		resp, err := deps.service.Decide(ctx, logID.String(), approverID, hourlog.DecideHourLogRequest{
			Status: hourlog.ApprovalApproved,
		})

		assert.NoError(t, err)
		assert.Equal(t, hourlog.ApprovalApproved, resp.ApprovalStatus)
		assert.NotNil(t, resp.ApproverID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("reject", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, logID.String()).Return(pendingLog(), nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := deps.service.Decide(ctx, logID.String(), approverID, hourlog.DecideHourLogRequest{
			Status: hourlog.ApprovalRejected,
		})

		assert.NoError(t, err)
		assert.Equal(t, hourlog.ApprovalRejected, resp.ApprovalStatus)
	})

	t.Run("already decided -> conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		decided := pendingLog()
		decided.ApprovalStatus = hourlog.ApprovalApproved

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, logID.String()).Return(decided, nil)

		_, err := deps.service.Decide(ctx, logID.String(), approverID, hourlog.DecideHourLogRequest{
			Status: hourlog.ApprovalRejected,
		})

		assert.ErrorIs(t, err, hourlogerrors.ErrAlreadyDecided)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, logID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Decide(ctx, logID.String(), approverID, hourlog.DecideHourLogRequest{
			Status: hourlog.ApprovalApproved,
		})

		assert.ErrorIs(t, err, hourlogerrors.ErrHourLogNotFound)
	})
}

func TestHourLogService_Update(t *testing.T) {
	ctx := context.Background()
	logID := uuid.New()

	t.Run("pending entry can change", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		hours := 7.25
		req := hourlog.UpdateHourLogRequest{HoursWorked: &hours}

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, logID.String()).Return(&hourlog.HourLog{
			ID:             logID,
			ApprovalStatus: hourlog.ApprovalPending,
			HoursWorked:    3,
		}, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, log *hourlog.HourLog) error {
				assert.Equal(t, 7.25, log.HoursWorked)
				return nil
			})

		resp, err := deps.service.Update(ctx, logID.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, 7.25, resp.HoursWorked)
	})

	t.Run("decided entry is frozen", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		hours := 7.25
		req := hourlog.UpdateHourLogRequest{HoursWorked: &hours}

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, logID.String()).Return(&hourlog.HourLog{
			ID:             logID,
			ApprovalStatus: hourlog.ApprovalRejected,
		}, nil)

		_, err := deps.service.Update(ctx, logID.String(), req)

		assert.ErrorIs(t, err, hourlogerrors.ErrAlreadyDecided)
	})

	t.Run("empty request", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Update(ctx, logID.String(), hourlog.UpdateHourLogRequest{})

		assert.ErrorIs(t, err, hourlogerrors.ErrEmptyHourLogUpdate)
	})
}

func TestHourLogService_Delete(t *testing.T) {
	ctx := context.Background()
	logID := uuid.New()

	t.Run("pending entry deleted", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, logID.String()).Return(&hourlog.HourLog{
			ID:             logID,
			ApprovalStatus: hourlog.ApprovalPending,
		}, nil)
		deps.repo.EXPECT().Delete(ctx, logID.String()).Return(nil)

		err := deps.service.Delete(ctx, logID.String())

		assert.NoError(t, err)
	})

	t.Run("decided entry stays", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, logID.String()).Return(&hourlog.HourLog{
			ID:             logID,
			ApprovalStatus: hourlog.ApprovalApproved,
		}, nil)

		err := deps.service.Delete(ctx, logID.String())

		assert.ErrorIs(t, err, hourlogerrors.ErrAlreadyDecided)
	})
}
