package attachment

import (
	"time"

	"github.com/google/uuid"
)

// Attachment is a file-metadata row. The bytes themselves live in external
// storage at StoragePath; this service only keeps the registry.
type Attachment struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FileName          string     `gorm:"size:255;not null"`
	StoragePath       string     `gorm:"size:255;not null;uniqueIndex:uq_attachment_storage_path"`
	MimeType          string     `gorm:"size:50;not null"`
	SizeBytes         int64      `gorm:"not null"`
	CreatorID         uuid.UUID  `gorm:"type:uuid;not null"`
	TaskID            *uuid.UUID `gorm:"type:uuid"`
	ProjectID         *uuid.UUID `gorm:"type:uuid"`
	EmployeeProfileID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt         time.Time  `gorm:"autoCreateTime"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime"`
}
