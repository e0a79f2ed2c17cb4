package pagination

import "gorm.io/gorm"

// After returns a GORM scope selecting rows whose primary key is
// strictly greater than afterKey. Zero is the sentinel minimum: keys
// start at 1, so "id > 0" matches every row and an absent cursor needs
// no special casing.
func After(afterKey uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id > ?", afterKey)
	}
}

// FieldEquals returns a GORM scope applying a parameterized equality
// filter on the given column. An empty value is a no-op that matches
// all rows. The column name must come from code, never from request
// input; only the value is caller-controlled and it is always bound as
// a query parameter.
func FieldEquals(column, value string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if value == "" {
			return db
		}
		return db.Where(column+" = ?", value)
	}
}

// OrderedPage returns a GORM scope that orders rows ascending by
// primary key and bounds the result to limit rows. The ascending
// key order is what makes the last edge's cursor a valid anchor for
// the next page.
func OrderedPage(limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC").Limit(limit)
	}
}
