package task_test

import (
	"context"
	"database/sql"
	"testing"

	"go-workforce/internal/task"
	taskerrors "go-workforce/internal/task/errors"
	taskMock "go-workforce/internal/task/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service task.Service
	repo    *taskMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := taskMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: task.NewService(db, repo),
		repo:    repo,
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

func TestTaskService_Create(t *testing.T) {
	ctx := context.Background()
	creatorID := uuid.New().String()

	t.Run("success - defaults applied", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := task.CreateTaskRequest{Name: "Ship the migration"}

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, tk *task.Task) error {
				assert.Equal(t, task.PriorityMedium, tk.Priority)
				assert.Equal(t, task.StatusPending, tk.Status)
				assert.Equal(t, creatorID, tk.CreatorID.String())
				assert.Nil(t, tk.ProjectID)
				return nil
			})

		resp, err := deps.service.Create(ctx, creatorID, req)

		assert.NoError(t, err)
		assert.Equal(t, task.PriorityMedium, resp.Priority)
		assert.Equal(t, creatorID, resp.CreatorID)
	})

	t.Run("explicit priority and status", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		priority := task.PriorityUrgent
		status := task.StatusInProgress
		projectID := uuid.New().String()
		req := task.CreateTaskRequest{
			Name:      "Hotfix prod",
			Priority:  &priority,
			Status:    &status,
			ProjectID: &projectID,
		}

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, tk *task.Task) error {
				assert.Equal(t, task.PriorityUrgent, tk.Priority)
				assert.Equal(t, task.StatusInProgress, tk.Status)
				require.NotNil(t, tk.ProjectID)
				assert.Equal(t, projectID, tk.ProjectID.String())
				return nil
			})

		_, err := deps.service.Create(ctx, creatorID, req)

		assert.NoError(t, err)
	})

	t.Run("invalid due date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		due := "next tuesday"
		req := task.CreateTaskRequest{Name: "Some task", DueDate: &due}

		_, err := deps.service.Create(ctx, creatorID, req)

		assert.ErrorIs(t, err, taskerrors.ErrInvalidDueDate)
	})
}

func TestTaskService_Assign(t *testing.T) {
	ctx := context.Background()
	taskID := uuid.New()
	employeeID := uuid.New()

	existing := func() *task.Task {
		return &task.Task{
			ID:        taskID,
			Name:      "Ship the migration",
			Priority:  task.PriorityMedium,
			Status:    task.StatusPending,
			CreatorID: uuid.New(),
		}
	}

	t.Run("success - returns refreshed assignee list", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := task.AssignTaskRequest{EmployeeID: employeeID.String(), IsMainResponsible: true}

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, taskID.String()).Return(existing(), nil)
		deps.repo.EXPECT().
			Assign(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, a *task.EmployeeTask) error {
				assert.Equal(t, employeeID, a.EmployeeID)
				assert.Equal(t, taskID, a.TaskID)
				assert.True(t, a.IsMainResponsible)
				return nil
			})
		deps.repo.EXPECT().
			FindAssignees(ctx, taskID.String()).
			Return([]task.EmployeeTask{
				{
					EmployeeID:        employeeID,
					TaskID:            taskID,
					IsMainResponsible: true,
					Employee:          &task.TaskEmployee{ID: employeeID, Name: "Dana", Email: "dana@example.com"},
				},
			}, nil)

		resp, err := deps.service.Assign(ctx, taskID.String(), req)

		assert.NoError(t, err)
		require.Len(t, resp.Assignees, 1)
		assert.Equal(t, employeeID.String(), resp.Assignees[0].EmployeeID)
		assert.Equal(t, "Dana", resp.Assignees[0].Name)
		assert.True(t, resp.Assignees[0].IsMainResponsible)
	})

	t.Run("duplicate assignment -> conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := task.AssignTaskRequest{EmployeeID: employeeID.String()}

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, taskID.String()).Return(existing(), nil)
		deps.repo.EXPECT().
			Assign(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_task"})

		_, err := deps.service.Assign(ctx, taskID.String(), req)

		assert.ErrorIs(t, err, taskerrors.ErrAlreadyAssigned)
	})

	t.Run("task not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := task.AssignTaskRequest{EmployeeID: employeeID.String()}

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, taskID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Assign(ctx, taskID.String(), req)

		assert.ErrorIs(t, err, taskerrors.ErrTaskNotFound)
	})
}

func TestTaskService_Unassign(t *testing.T) {
	ctx := context.Background()
	taskID := uuid.New().String()
	employeeID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().Unassign(ctx, taskID, employeeID).Return(nil)

		assert.NoError(t, deps.service.Unassign(ctx, taskID, employeeID))
	})

	t.Run("missing assignment gets its own error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().Unassign(ctx, taskID, employeeID).Return(gorm.ErrRecordNotFound)

		err := deps.service.Unassign(ctx, taskID, employeeID)

		assert.ErrorIs(t, err, taskerrors.ErrAssignmentNotFound)
	})
}

func TestTaskService_FindAll(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("filters are passed through", func(t *testing.T) {
		projectID := uuid.New().String()

		deps.repo.EXPECT().
			FindAll(ctx, 0, 10, task.StatusInProgress, projectID).
			Return([]task.Task{
				{ID: uuid.New(), Name: "Only match", Status: task.StatusInProgress, CreatorID: uuid.New()},
			}, int64(1), nil)

		resp, err := deps.service.FindAll(ctx, 1, 10, task.StatusInProgress, projectID)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), resp.TotalItems)
		require.Len(t, resp.Tasks, 1)
		assert.Equal(t, "Only match", resp.Tasks[0].Name)
	})
}

func TestTaskService_Update(t *testing.T) {
	ctx := context.Background()
	taskID := uuid.New()

	t.Run("empty request", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Update(ctx, taskID.String(), task.UpdateTaskRequest{})

		assert.ErrorIs(t, err, taskerrors.ErrEmptyTaskUpdate)
	})

	t.Run("status transition", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		status := task.StatusCompleted
		req := task.UpdateTaskRequest{Status: &status}

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, taskID.String()).Return(&task.Task{
			ID:        taskID,
			Name:      "Ship it",
			Status:    task.StatusInReview,
			CreatorID: uuid.New(),
		}, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, tk *task.Task) error {
				assert.Equal(t, task.StatusCompleted, tk.Status)
				return nil
			})

		resp, err := deps.service.Update(ctx, taskID.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, task.StatusCompleted, resp.Status)
	})
}
