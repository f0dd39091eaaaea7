package employee

import (
	"time"

	"go-workforce/internal/department"
	"go-workforce/internal/position"

	"github.com/google/uuid"
)

type Employee struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name         string     `gorm:"size:100;not null"`
	Email        string     `gorm:"size:100;not null;uniqueIndex:uq_employee_email"`
	PasswordHash string     `gorm:"column:password_hash;size:255;not null"`
	Cellphone    *string    `gorm:"size:20"`
	HiringDate   time.Time  `gorm:"type:date;not null"`
	BirthDate    *time.Time `gorm:"type:date"`
	Address      *string    `gorm:"size:255"`
	PositionID   uuid.UUID  `gorm:"type:uuid;not null"`
	DepartmentID uuid.UUID  `gorm:"type:uuid;not null"`
	SupervisorID *uuid.UUID `gorm:"type:uuid"`
	IsActive     bool       `gorm:"not null;default:true"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`

	Position   *position.Position     `gorm:"foreignKey:PositionID"`
	Department *department.Department `gorm:"foreignKey:DepartmentID"`
	Supervisor *SupervisorRef         `gorm:"foreignKey:SupervisorID"`
}

// SupervisorRef is the minimal supervisor projection (id, name, email) used by
// the detail endpoints. It reads the employees table without the hash column.
type SupervisorRef struct {
	ID    uuid.UUID `gorm:"primaryKey"`
	Name  string
	Email string
}

func (SupervisorRef) TableName() string {
	return "employees"
}
