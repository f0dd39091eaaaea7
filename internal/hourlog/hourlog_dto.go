package hourlog

type CreateHourLogRequest struct {
	TaskID      string  `json:"task_id" binding:"required,uuid"`
	EmployeeID  string  `json:"employee_id" binding:"required,uuid"`
	LogDate     string  `json:"log_date" binding:"required"`
	HoursWorked float64 `json:"hours_worked" binding:"required,gt=0"`
	Description *string `json:"description" binding:"omitempty"`
}

type UpdateHourLogRequest struct {
	LogDate     *string  `json:"log_date" binding:"omitempty"`
	HoursWorked *float64 `json:"hours_worked" binding:"omitempty,gt=0"`
	Description *string  `json:"description" binding:"omitempty"`
}

func (r UpdateHourLogRequest) Empty() bool {
	return r.LogDate == nil && r.HoursWorked == nil && r.Description == nil
}

type DecideHourLogRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

type HourLogEmployeeResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type HourLogResponse struct {
	ID             string                   `json:"id"`
	TaskID         string                   `json:"task_id"`
	EmployeeID     string                   `json:"employee_id"`
	LogDate        string                   `json:"log_date"`
	HoursWorked    float64                  `json:"hours_worked"`
	Description    *string                  `json:"description"`
	ApprovalStatus string                   `json:"approval_status"`
	ApproverID     *string                  `json:"approver_id"`
	ApprovalDate   *string                  `json:"approval_date"`
	Employee       *HourLogEmployeeResponse `json:"employee,omitempty"`
	Approver       *HourLogEmployeeResponse `json:"approver,omitempty"`
	CreatedAt      string                   `json:"created_at"`
	UpdatedAt      string                   `json:"updated_at"`
}

type PaginatedHourLogsResponse struct {
	TotalItems  int64             `json:"totalItems"`
	HourLogs    []HourLogResponse `json:"hourLogs"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
}
