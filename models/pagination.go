package models

type Pagination struct {
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// NewPagination computes page metadata. Pages is ceil(total/limit) and zero
// for an empty collection.
func NewPagination(page, limit, total int64) Pagination {
	var pages int64
	if total > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}
