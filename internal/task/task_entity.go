package task

import (
	"time"

	"go-workforce/internal/project"

	"github.com/google/uuid"
)

const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityUrgent   = "urgent"
	PriorityCritical = "critical"
)

const (
	StatusPending                = "pending"
	StatusInProgress             = "in_progress"
	StatusInReview               = "in_review"
	StatusCompleted              = "completed"
	StatusOnHold                 = "on_hold"
	StatusCancelled              = "cancelled"
	StatusArchived               = "archived"
	StatusDeleted                = "deleted"
	StatusReopened               = "reopened"
	StatusWaitingForReview       = "waiting_for_review"
	StatusWaitingForApproval     = "waiting_for_approval"
	StatusWaitingForFeedback     = "waiting_for_feedback"
	StatusWaitingForResources    = "waiting_for_resources"
	StatusWaitingForDependencies = "waiting_for_dependencies"
)

type Task struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"size:100;not null"`
	Description *string    `gorm:"type:text"`
	DueDate     *time.Time `gorm:"type:date"`
	Priority    string     `gorm:"type:task_priority;not null;default:medium"`
	Status      string     `gorm:"type:task_status;not null;default:pending"`
	ProjectID   *uuid.UUID `gorm:"type:uuid"`
	CreatorID   uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`

	Project *project.Project `gorm:"foreignKey:ProjectID"`
	Creator *TaskEmployee    `gorm:"foreignKey:CreatorID"`
}

// EmployeeTask is the assignment join row between employees and tasks.
type EmployeeTask struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_employee_task"`
	TaskID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_employee_task"`
	AssignmentDate    time.Time `gorm:"not null;autoCreateTime"`
	IsMainResponsible bool      `gorm:"not null;default:false"`

	Employee *TaskEmployee `gorm:"foreignKey:EmployeeID"`
}

// TaskEmployee projects employee rows referenced by tasks and assignments.
type TaskEmployee struct {
	ID    uuid.UUID `gorm:"primaryKey"`
	Name  string
	Email string
}

func (TaskEmployee) TableName() string {
	return "employees"
}
