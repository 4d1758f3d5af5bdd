package scope

import "gorm.io/gorm"

// Active hides soft-deleted rows. table may be empty for single-table queries.
func Active(table string) func(db *gorm.DB) *gorm.DB {
	column := "is_deleted"
	if table != "" {
		column = table + ".is_deleted"
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", false)
	}
}

const DefaultLimit = 10

func Paginate(page, limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = DefaultLimit
		}
		return db.Offset((page - 1) * limit).Limit(limit)
	}
}
