package department

type CreateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required,min=3,max=100"`
	Description *string `json:"description" binding:"omitempty,max=255"`
	ManagerID   *string `json:"manager_id" binding:"omitempty,uuid"`
}

type UpdateDepartmentRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=3,max=100"`
	Description *string `json:"description" binding:"omitempty,max=255"`
	ManagerID   *string `json:"manager_id" binding:"omitempty,uuid"`
}

func (r UpdateDepartmentRequest) Empty() bool {
	return r.Name == nil && r.Description == nil && r.ManagerID == nil
}

type DepartmentManagerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type DepartmentResponse struct {
	ID          string                     `json:"id"`
	Name        string                     `json:"name"`
	Description *string                    `json:"description"`
	ManagerID   *string                    `json:"manager_id"`
	Manager     *DepartmentManagerResponse `json:"manager,omitempty"`
}
