package task

type CreateTaskRequest struct {
	Name        string  `json:"name" binding:"required,min=3,max=100"`
	Description *string `json:"description" binding:"omitempty"`
	DueDate     *string `json:"due_date" binding:"omitempty"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high urgent critical"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending in_progress in_review completed on_hold cancelled archived deleted reopened waiting_for_review waiting_for_approval waiting_for_feedback waiting_for_resources waiting_for_dependencies"`
	ProjectID   *string `json:"project_id" binding:"omitempty,uuid"`
}

type UpdateTaskRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=3,max=100"`
	Description *string `json:"description" binding:"omitempty"`
	DueDate     *string `json:"due_date" binding:"omitempty"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high urgent critical"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending in_progress in_review completed on_hold cancelled archived deleted reopened waiting_for_review waiting_for_approval waiting_for_feedback waiting_for_resources waiting_for_dependencies"`
	ProjectID   *string `json:"project_id" binding:"omitempty,uuid"`
}

func (r UpdateTaskRequest) Empty() bool {
	return r.Name == nil && r.Description == nil && r.DueDate == nil &&
		r.Priority == nil && r.Status == nil && r.ProjectID == nil
}

type AssignTaskRequest struct {
	EmployeeID        string `json:"employee_id" binding:"required,uuid"`
	IsMainResponsible bool   `json:"is_main_responsible"`
}

type TaskAssigneeResponse struct {
	EmployeeID        string `json:"employee_id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	AssignmentDate    string `json:"assignment_date"`
	IsMainResponsible bool   `json:"is_main_responsible"`
}

type TaskResponse struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description *string                `json:"description"`
	DueDate     *string                `json:"due_date"`
	Priority    string                 `json:"priority"`
	Status      string                 `json:"status"`
	ProjectID   *string                `json:"project_id"`
	CreatorID   string                 `json:"creator_id"`
	Assignees   []TaskAssigneeResponse `json:"assignees,omitempty"`
	CreatedAt   string                 `json:"created_at"`
	UpdatedAt   string                 `json:"updated_at"`
}

type PaginatedTasksResponse struct {
	TotalItems  int64          `json:"totalItems"`
	Tasks       []TaskResponse `json:"tasks"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
}
