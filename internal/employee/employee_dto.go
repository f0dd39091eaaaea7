package employee

type CreateEmployeeRequest struct {
	Name         string  `json:"name" binding:"required,min=3,max=100"`
	Email        string  `json:"email" binding:"required,email"`
	Password     string  `json:"password" binding:"required,min=6"`
	HiringDate   string  `json:"hiring_date" binding:"required"`
	PositionID   string  `json:"position_id" binding:"required,uuid"`
	DepartmentID string  `json:"department_id" binding:"required,uuid"`
	Cellphone    *string `json:"cellphone" binding:"omitempty,max=20"`
	BirthDate    *string `json:"birth_date"`
	Address      *string `json:"address" binding:"omitempty,max=255"`
	SupervisorID *string `json:"supervisor_id" binding:"omitempty,uuid"`
}

// UpdateEmployeeRequest is a partial update: every field optional, at least
// one required. Pointers distinguish "absent" from zero values.
type UpdateEmployeeRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=3,max=100"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Password     *string `json:"password" binding:"omitempty,min=6"`
	HiringDate   *string `json:"hiring_date"`
	PositionID   *string `json:"position_id" binding:"omitempty,uuid"`
	DepartmentID *string `json:"department_id" binding:"omitempty,uuid"`
	Cellphone    *string `json:"cellphone" binding:"omitempty,max=20"`
	BirthDate    *string `json:"birth_date"`
	Address      *string `json:"address" binding:"omitempty,max=255"`
	SupervisorID *string `json:"supervisor_id" binding:"omitempty,uuid"`
	IsActive     *bool   `json:"is_active"`
}

func (r UpdateEmployeeRequest) Empty() bool {
	return r.Name == nil && r.Email == nil && r.Password == nil &&
		r.HiringDate == nil && r.PositionID == nil && r.DepartmentID == nil &&
		r.Cellphone == nil && r.BirthDate == nil && r.Address == nil &&
		r.SupervisorID == nil && r.IsActive == nil
}

// EmployeeResponse is the exposed form of an employee. It has no password
// fields at all, so a hash can never leak through serialization.
type EmployeeResponse struct {
	ID           string                      `json:"id"`
	Name         string                      `json:"name"`
	Email        string                      `json:"email"`
	Cellphone    *string                     `json:"cellphone,omitempty"`
	HiringDate   string                      `json:"hiring_date"`
	BirthDate    *string                     `json:"birth_date,omitempty"`
	Address      *string                     `json:"address,omitempty"`
	PositionID   string                      `json:"position_id"`
	DepartmentID string                      `json:"department_id"`
	SupervisorID *string                     `json:"supervisor_id,omitempty"`
	IsActive     bool                        `json:"is_active"`
	CreatedAt    string                      `json:"created_at"`
	UpdatedAt    string                      `json:"updated_at"`
	Position     *EmployeePositionResponse   `json:"position,omitempty"`
	Department   *EmployeeDepartmentResponse `json:"department,omitempty"`
	Supervisor   *EmployeeSupervisorResponse `json:"supervisor,omitempty"`
}

type EmployeePositionResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Description       *string `json:"description,omitempty"`
	HierarchicalLevel int     `json:"hierarchical_level"`
}

type EmployeeDepartmentResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type EmployeeSupervisorResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// EmployeeOptionResponse is the picker projection served from cache.
type EmployeeOptionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PaginatedEmployeesResponse is the list body:
// {totalItems, employees, totalPages, currentPage}.
type PaginatedEmployeesResponse struct {
	TotalItems  int64              `json:"totalItems"`
	Employees   []EmployeeResponse `json:"employees"`
	TotalPages  int                `json:"totalPages"`
	CurrentPage int                `json:"currentPage"`
}
