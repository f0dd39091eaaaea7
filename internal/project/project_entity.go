package project

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive                 = "active"
	StatusCompleted              = "completed"
	StatusPending                = "pending"
	StatusCancelled              = "cancelled"
	StatusArchived               = "archived"
	StatusReopened               = "reopened"
	StatusWaitingForReview       = "waiting_for_review"
	StatusWaitingForApproval     = "waiting_for_approval"
	StatusWaitingForFeedback     = "waiting_for_feedback"
	StatusWaitingForResources    = "waiting_for_resources"
	StatusWaitingForDependencies = "waiting_for_dependencies"
)

type Project struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name            string     `gorm:"size:100;not null;uniqueIndex:uq_project_name"`
	Description     *string    `gorm:"type:text"`
	StartDate       time.Time  `gorm:"type:date;not null"`
	ExpectedEndDate *time.Time `gorm:"type:date"`
	Status          string     `gorm:"type:project_status;not null;default:pending"`
	ManagerID       uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime"`

	Manager *ProjectManager `gorm:"foreignKey:ManagerID"`
}

// ProjectManager projects the managing employee without password columns.
type ProjectManager struct {
	ID    uuid.UUID `gorm:"primaryKey"`
	Name  string
	Email string
}

func (ProjectManager) TableName() string {
	return "employees"
}
