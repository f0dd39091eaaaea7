package department

import (
	"github.com/google/uuid"
)

type Department struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"size:100;not null;uniqueIndex:uq_department_name"`
	Description *string    `gorm:"type:text"`
	ManagerID   *uuid.UUID `gorm:"type:uuid"`

	Manager *DepartmentManager `gorm:"foreignKey:ManagerID"`
}

// DepartmentManager is a minimal projection of the employees table so the
// manager association never drags password columns into responses.
type DepartmentManager struct {
	ID    uuid.UUID `gorm:"primaryKey"`
	Name  string
	Email string
}

func (DepartmentManager) TableName() string {
	return "employees"
}
