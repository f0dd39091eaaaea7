package attachment

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attachment_repo.go -destination=mock/attachment_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, att *Attachment) error
	FindByID(ctx context.Context, id string) (*Attachment, error)
	FindByParent(ctx context.Context, taskID, projectID, employeeProfileID string) ([]Attachment, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, att *Attachment) error {
	return r.db.WithContext(ctx).Create(att).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Attachment, error) {
	var att Attachment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&att).Error
	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *repository) FindByParent(ctx context.Context, taskID, projectID, employeeProfileID string) ([]Attachment, error) {
	q := r.db.WithContext(ctx).Model(&Attachment{})
	if taskID != "" {
		q = q.Where("task_id = ?", taskID)
	}
	if projectID != "" {
		q = q.Where("project_id = ?", projectID)
	}
	if employeeProfileID != "" {
		q = q.Where("employee_profile_id = ?", employeeProfileID)
	}

	var atts []Attachment
	err := q.Order("created_at DESC").Find(&atts).Error
	return atts, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Attachment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
