package types

type Pagination struct {
	Total      uint64 `json:"total"`
	Page       uint64 `json:"page"`
	Limit      uint64 `json:"limit"`
	TotalPages uint64 `json:"totalPages"`
}

func NewPagination(total, page, limit uint64) Pagination {
	p := Pagination{
		Total: total,
		Page:  page,
		Limit: limit,
	}
	if limit > 0 {
		p.TotalPages = (total + limit - 1) / limit
	}
	return p
}
