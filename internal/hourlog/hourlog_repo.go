package hourlog

import (
	"context"
	"database/sql"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//go:generate mockgen -source=hourlog_repo.go -destination=mock/hourlog_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, log *HourLog) error
	FindAll(ctx context.Context, offset, limit int, employeeID, taskID, status string) ([]HourLog, int64, error)
	FindByID(ctx context.Context, id string) (*HourLog, error)
	Update(ctx context.Context, log *HourLog) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, log *HourLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *repository) FindAll(ctx context.Context, offset, limit int, employeeID, taskID, status string) ([]HourLog, int64, error) {
	q := r.db.WithContext(ctx).Model(&HourLog{})
	if employeeID != "" {
		q = q.Where("employee_id = ?", employeeID)
	}
	if taskID != "" {
		q = q.Where("task_id = ?", taskID)
	}
	if status != "" {
		q = q.Where("approval_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []HourLog
	err := q.
		Preload("Employee").
		Order("log_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error
	return logs, total, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*HourLog, error) {
	var log HourLog
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Approver").
		Where("id = ?", id).
		First(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *repository) Update(ctx context.Context, log *HourLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&HourLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
