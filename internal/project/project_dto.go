package project

type CreateProjectRequest struct {
	Name            string  `json:"name" binding:"required,min=3,max=100"`
	Description     *string `json:"description" binding:"omitempty"`
	StartDate       string  `json:"start_date" binding:"required"`
	ExpectedEndDate *string `json:"expected_end_date" binding:"omitempty"`
	Status          *string `json:"status" binding:"omitempty,oneof=active completed pending cancelled archived reopened waiting_for_review waiting_for_approval waiting_for_feedback waiting_for_resources waiting_for_dependencies"`
	ManagerID       string  `json:"manager_id" binding:"required,uuid"`
}

type UpdateProjectRequest struct {
	Name            *string `json:"name" binding:"omitempty,min=3,max=100"`
	Description     *string `json:"description" binding:"omitempty"`
	StartDate       *string `json:"start_date" binding:"omitempty"`
	ExpectedEndDate *string `json:"expected_end_date" binding:"omitempty"`
	Status          *string `json:"status" binding:"omitempty,oneof=active completed pending cancelled archived reopened waiting_for_review waiting_for_approval waiting_for_feedback waiting_for_resources waiting_for_dependencies"`
	ManagerID       *string `json:"manager_id" binding:"omitempty,uuid"`
}

func (r UpdateProjectRequest) Empty() bool {
	return r.Name == nil && r.Description == nil && r.StartDate == nil &&
		r.ExpectedEndDate == nil && r.Status == nil && r.ManagerID == nil
}

type ProjectManagerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ProjectResponse struct {
	ID              string                  `json:"id"`
	Name            string                  `json:"name"`
	Description     *string                 `json:"description"`
	StartDate       string                  `json:"start_date"`
	ExpectedEndDate *string                 `json:"expected_end_date"`
	Status          string                  `json:"status"`
	ManagerID       string                  `json:"manager_id"`
	Manager         *ProjectManagerResponse `json:"manager,omitempty"`
	CreatedAt       string                  `json:"created_at"`
	UpdatedAt       string                  `json:"updated_at"`
}

type PaginatedProjectsResponse struct {
	TotalItems  int64             `json:"totalItems"`
	Projects    []ProjectResponse `json:"projects"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
}
