package project

import (
	"context"
	"database/sql"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//go:generate mockgen -source=project_repo.go -destination=mock/project_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, proj *Project) error
	FindAll(ctx context.Context, offset, limit int, status string) ([]Project, int64, error)
	FindByID(ctx context.Context, id string) (*Project, error)
	Update(ctx context.Context, proj *Project) error
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

func (r *repository) Create(ctx context.Context, proj *Project) error {
	return r.db.WithContext(ctx).Create(proj).Error
}

func (r *repository) FindAll(ctx context.Context, offset, limit int, status string) ([]Project, int64, error) {
	q := r.db.WithContext(ctx).Model(&Project{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []Project
	err := q.
		Preload("Manager").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&projects).Error
	return projects, total, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Project, error) {
	var proj Project
	err := r.db.WithContext(ctx).
		Preload("Manager").
		Where("id = ?", id).
		First(&proj).Error
	if err != nil {
		return nil, err
	}
	return &proj, nil
}

func (r *repository) Update(ctx context.Context, proj *Project) error {
	return r.db.WithContext(ctx).Save(proj).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Project{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
