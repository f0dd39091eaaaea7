package rbac

type CreateRoleRequest struct {
	Name        string  `json:"name" binding:"required,min=3,max=50"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

type UpdateRoleRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=3,max=50"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

func (r UpdateRoleRequest) Empty() bool {
	return r.Name == nil && r.Description == nil
}

type CreatePermissionRequest struct {
	Name        string  `json:"name" binding:"required,min=3,max=100"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

type AssignRoleRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	RoleID     string `json:"role_id" binding:"required,uuid"`
}

type SetRolePermissionsRequest struct {
	PermissionIDs []string `json:"permission_ids" binding:"required,dive,uuid"`
}

type RoleResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type PermissionResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type EnforceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Resource   string `json:"resource" binding:"required"`
	Action     string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}
