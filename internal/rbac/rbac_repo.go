package rbac

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployeeRoleRow struct {
	EmployeeID string
	RoleID     string
}

type RolePermissionRow struct {
	RoleID         string
	PermissionName string
}

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetEmployeeRoles(ctx context.Context) ([]EmployeeRoleRow, error)
	GetRolePermissions(ctx context.Context) ([]RolePermissionRow, error)

	ListRoles(ctx context.Context) ([]Role, error)
	GetRoleByID(ctx context.Context, id string) (*Role, error)
	GetRoleByName(ctx context.Context, name string) (*Role, error)
	CreateRole(ctx context.Context, role *Role) error
	UpdateRole(ctx context.Context, role *Role) error
	DeleteRole(ctx context.Context, id string) error

	ListPermissions(ctx context.Context) ([]Permission, error)
	CreatePermission(ctx context.Context, perm *Permission) error
	DeletePermission(ctx context.Context, id string) error
	GetPermissionsByRoleID(ctx context.Context, roleID string) ([]Permission, error)
	SetRolePermissions(ctx context.Context, roleID string, permIDs []string) error

	AssignRole(ctx context.Context, employeeID, roleID uuid.UUID) error
	RevokeRole(ctx context.Context, employeeID, roleID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetEmployeeRoles(ctx context.Context) ([]EmployeeRoleRow, error) {
	var result []EmployeeRoleRow
	err := r.db.WithContext(ctx).
		Table("employee_roles").
		Select("employee_roles.employee_id, employee_roles.role_id").
		Scan(&result).Error
	return result, err
}

func (r *repository) GetRolePermissions(ctx context.Context) ([]RolePermissionRow, error) {
	var result []RolePermissionRow
	err := r.db.WithContext(ctx).
		Table("role_permissions").
		Select("role_permissions.role_id, permissions.name AS permission_name").
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
		Scan(&result).Error
	return result, err
}

func (r *repository) ListRoles(ctx context.Context) ([]Role, error) {
	var result []Role
	err := r.db.WithContext(ctx).Order("name ASC").Find(&result).Error
	return result, err
}

func (r *repository) GetRoleByID(ctx context.Context, id string) (*Role, error) {
	var result Role
	err := r.db.WithContext(ctx).First(&result, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *repository) GetRoleByName(ctx context.Context, name string) (*Role, error) {
	var result Role
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *repository) CreateRole(ctx context.Context, role *Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *repository) UpdateRole(ctx context.Context, role *Role) error {
	return r.db.WithContext(ctx).Save(role).Error
}

func (r *repository) DeleteRole(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM role_permissions WHERE role_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM employee_roles WHERE role_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&Role{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *repository) ListPermissions(ctx context.Context) ([]Permission, error) {
	var result []Permission
	err := r.db.WithContext(ctx).Order("name ASC").Find(&result).Error
	return result, err
}

func (r *repository) CreatePermission(ctx context.Context, perm *Permission) error {
	return r.db.WithContext(ctx).Create(perm).Error
}

func (r *repository) DeletePermission(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM role_permissions WHERE permission_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&Permission{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *repository) GetPermissionsByRoleID(ctx context.Context, roleID string) ([]Permission, error) {
	var result []Permission
	err := r.db.WithContext(ctx).
		Table("permissions").
		Select("permissions.*").
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Where("role_permissions.role_id = ?", roleID).
		Scan(&result).Error
	return result, err
}

func (r *repository) SetRolePermissions(ctx context.Context, roleID string, permIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM role_permissions WHERE role_id = ?", roleID).Error; err != nil {
			return err
		}

		for _, pID := range permIDs {
			rp := RolePermission{
				ID:           uuid.New(),
				RoleID:       uuid.MustParse(roleID),
				PermissionID: uuid.MustParse(pID),
			}
			if err := tx.Create(&rp).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repository) AssignRole(ctx context.Context, employeeID, roleID uuid.UUID) error {
	er := EmployeeRole{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		RoleID:     roleID,
	}
	return r.db.WithContext(ctx).Create(&er).Error
}

func (r *repository) RevokeRole(ctx context.Context, employeeID, roleID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("employee_id = ? AND role_id = ?", employeeID, roleID).
		Delete(&EmployeeRole{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
