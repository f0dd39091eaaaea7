package hourlog

import (
	"time"

	"github.com/google/uuid"
)

const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

type HourLog struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TaskID         uuid.UUID  `gorm:"type:uuid;not null"`
	EmployeeID     uuid.UUID  `gorm:"type:uuid;not null"`
	LogDate        time.Time  `gorm:"type:date;not null"`
	HoursWorked    float64    `gorm:"type:decimal(5,2);not null"`
	Description    *string    `gorm:"type:text"`
	ApprovalStatus string     `gorm:"type:approval_status;not null;default:pending"`
	ApproverID     *uuid.UUID `gorm:"type:uuid"`
	ApprovalDate   *time.Time
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`

	Employee *HourLogEmployee `gorm:"foreignKey:EmployeeID"`
	Approver *HourLogEmployee `gorm:"foreignKey:ApproverID"`
}

func (HourLog) TableName() string {
	return "hour_logs"
}

// HourLogEmployee projects the logging or approving employee.
type HourLogEmployee struct {
	ID    uuid.UUID `gorm:"primaryKey"`
	Name  string
	Email string
}

func (HourLogEmployee) TableName() string {
	return "employees"
}
