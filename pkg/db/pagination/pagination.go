package pagination

// Pagination carries page-number pagination parameters bound from the query
// string. Pages are 1-based.
type Pagination struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// Normalize clamps the parameters to sane bounds.
func (p Pagination) Normalize(defaultSize, maxSize int) Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = defaultSize
	}
	if maxSize > 0 && p.PageSize > maxSize {
		p.PageSize = maxSize
	}
	return p
}

// Offset returns the row offset for the current page.
func (p Pagination) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// PageInfo describes the result window of a list response.
type PageInfo struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
}

// NewPageInfo derives the page info for a total row count.
func NewPageInfo(p Pagination, total int64) PageInfo {
	info := PageInfo{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalCount: total,
	}
	if p.PageSize > 0 {
		info.TotalPages = int((total + int64(p.PageSize) - 1) / int64(p.PageSize))
	}
	return info
}
