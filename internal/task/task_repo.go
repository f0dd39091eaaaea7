package task

import (
	"context"
	"database/sql"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//go:generate mockgen -source=task_repo.go -destination=mock/task_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Task) error
	FindAll(ctx context.Context, offset, limit int, status, projectID string) ([]Task, int64, error)
	FindByID(ctx context.Context, id string) (*Task, error)
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, id string) error

	Assign(ctx context.Context, assignment *EmployeeTask) error
	Unassign(ctx context.Context, taskID, employeeID string) error
	FindAssignees(ctx context.Context, taskID string) ([]EmployeeTask, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: tx}), &gorm.Config{})
	if err != nil {
		return r
	}
	return &repository{db: gdb}
}

func (r *repository) Create(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindAll(ctx context.Context, offset, limit int, status, projectID string) ([]Task, int64, error) {
	q := r.db.WithContext(ctx).Model(&Task{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if projectID != "" {
		q = q.Where("project_id = ?", projectID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []Task
	err := q.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&tasks).Error
	return tasks, total, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Task, error) {
	var t Task
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) Update(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&EmployeeTask{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&Task{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *repository) Assign(ctx context.Context, assignment *EmployeeTask) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *repository) Unassign(ctx context.Context, taskID, employeeID string) error {
	res := r.db.WithContext(ctx).
		Where("task_id = ? AND employee_id = ?", taskID, employeeID).
		Delete(&EmployeeTask{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindAssignees(ctx context.Context, taskID string) ([]EmployeeTask, error) {
	var assignments []EmployeeTask
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("task_id = ?", taskID).
		Order("assignment_date ASC").
		Find(&assignments).Error
	return assignments, err
}
