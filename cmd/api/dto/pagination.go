package dto

// Pagination is a generic page envelope for list results. Total is the
// number of items matching the filters without pagination; Page is 1-based.
type Pagination[T any] struct {
	Items    []T   `json:"items"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
	Pages    int64 `json:"pages"`
}

// NewPagination fills the envelope and derives the page count.
func NewPagination[T any](items []T, page, pageSize int, total int64) Pagination[T] {
	pages := int64(0)
	if pageSize > 0 {
		pages = (total + int64(pageSize) - 1) / int64(pageSize)
	}
	return Pagination[T]{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		Pages:    pages,
	}
}
