package attachment

type CreateAttachmentRequest struct {
	FileName          string  `json:"file_name" binding:"required,min=1,max=255"`
	StoragePath       string  `json:"storage_path" binding:"required,min=1,max=255"`
	MimeType          string  `json:"mime_type" binding:"required,min=3,max=50"`
	SizeBytes         int64   `json:"size_bytes" binding:"required,gt=0"`
	TaskID            *string `json:"task_id" binding:"omitempty,uuid"`
	ProjectID         *string `json:"project_id" binding:"omitempty,uuid"`
	EmployeeProfileID *string `json:"employee_profile_id" binding:"omitempty,uuid"`
}

type AttachmentResponse struct {
	ID                string  `json:"id"`
	FileName          string  `json:"file_name"`
	StoragePath       string  `json:"storage_path"`
	MimeType          string  `json:"mime_type"`
	SizeBytes         int64   `json:"size_bytes"`
	CreatorID         string  `json:"creator_id"`
	TaskID            *string `json:"task_id"`
	ProjectID         *string `json:"project_id"`
	EmployeeProfileID *string `json:"employee_profile_id"`
	CreatedAt         string  `json:"created_at"`
}
