package repository

import "gorm.io/gorm"

// paginate applies limit/offset to a list query. A non-positive limit leaves
// the query unbounded; callers clamp limits before they get here.
func paginate(limit, offset int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if limit <= 0 {
			return db
		}
		return db.Offset(offset).Limit(limit)
	}
}
