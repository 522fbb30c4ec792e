package db

import (
	"gorm.io/gorm"
)

// NotDeleted is a GORM scope that filters out soft-deleted records.
// Use this scope when querying with Model().Where().Count() or similar patterns
// that may not automatically apply soft delete filtering.
func NotDeleted() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("deleted_at IS NULL")
	}
}

// OwnedByAgency scopes a query to a single tenant. Every tenant-scoped table
// carries an agency_id column; callers must apply this scope (or an explicit
// agency_id condition) on every query so usage counts and listings never
// cross the tenant boundary.
func OwnedByAgency(agencyID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("agency_id = ?", agencyID)
	}
}
