package models

// ListQuery 列表查询参数。skip与page同时给出时skip优先；page从1开始
type ListQuery struct {
	Limit  int    `form:"limit" json:"limit"`
	Skip   int    `form:"skip" json:"skip"`
	Page   int    `form:"page" json:"page"`
	Search string `form:"search" json:"search"`
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Normalize 返回规范化后的limit和offset
func (q ListQuery) Normalize() (limit, offset int) {
	limit = q.Limit
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	if q.Skip > 0 {
		return limit, q.Skip
	}
	if q.Page > 1 {
		return limit, (q.Page - 1) * limit
	}
	return limit, 0
}

// PaginationResult 列表响应中的分页信息
type PaginationResult struct {
	Total    int64 `json:"total"`
	PageNum  int   `json:"pageNum"`
	PageSize int   `json:"pageSize"`
}

// NewPaginationResult 创建一个新的分页结果对象
func NewPaginationResult(total int64, pageNum, pageSize int) PaginationResult {
	return PaginationResult{
		Total:    total,
		PageNum:  pageNum,
		PageSize: pageSize,
	}
}
