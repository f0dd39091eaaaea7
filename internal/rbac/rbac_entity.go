package rbac

import (
	"github.com/google/uuid"
)

type Role struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:50;not null;uniqueIndex:uq_role_name"`
	Description *string   `gorm:"type:text"`
}

type Permission struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:100;not null;uniqueIndex:uq_permission_name"`
	Description *string   `gorm:"type:text"`
}

type EmployeeRole struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_employee_role"`
	RoleID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_employee_role"`
}

type RolePermission struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_role_permission"`
	PermissionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_role_permission"`
}
