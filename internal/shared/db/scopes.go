package db

import (
	"gorm.io/gorm"
)

// WhereIfSet adds "column = value" only when value is non-empty.
func WhereIfSet(column, value string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if value == "" {
			return db
		}
		return db.Where(column+" = ?", value)
	}
}
