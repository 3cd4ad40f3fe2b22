package model

const (
	DefaultLimit = 10
	DefaultPage  = 1
	MaxLimit     = 100
)

// Pagination selects a window of a list: page is 1-based.
type Pagination struct {
	Limit int `json:"limit"`
	Page  int `json:"page"`
}

// DefaultPagination is used when neither limit nor page is supplied.
func DefaultPagination() Pagination {
	return Pagination{Limit: DefaultLimit, Page: DefaultPage}
}

// Offset is the number of rows skipped before the page starts.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}
