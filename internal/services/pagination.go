package services

import "gorm.io/gorm"

// ItemsPerPage is the fixed page size for every listing.
const ItemsPerPage = 10

// Page is one page of a listing together with the unpaginated total.
type Page[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"total_count"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
}

// Paginate is a gorm scope applying 1-indexed offset pagination. Pages past
// the end of the result set come back empty, not as an error.
func Paginate(page int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		return db.Offset((page - 1) * ItemsPerPage).Limit(ItemsPerPage)
	}
}
