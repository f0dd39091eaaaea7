package scopes

import "gorm.io/gorm"

// Active filters out soft-deleted rows (is_active = false).
func Active() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true)
	}
}
