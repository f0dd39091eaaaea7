package position

import (
	"github.com/google/uuid"
)

type Position struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"size:50;not null;uniqueIndex:uq_position_name"`
	Description       *string   `gorm:"type:text"`
	HierarchicalLevel int       `gorm:"not null"`
}
