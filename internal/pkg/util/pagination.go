package util

import "yatube/internal/pkg/consts"

// PageMeta 分页元信息
type PageMeta struct {
	Page       int
	PageSize   int
	TotalItems int64
	TotalPages int
}

// Paginate 根据总数和请求页码计算查询偏移量与分页元信息。
// 页码从 1 开始，越界页码会被收敛到合法区间。
func Paginate(total int64, page int) (int, PageMeta) {
	totalPages := int((total + consts.PostsPerPage - 1) / consts.PostsPerPage)
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	meta := PageMeta{
		Page:       page,
		PageSize:   consts.PostsPerPage,
		TotalItems: total,
		TotalPages: totalPages,
	}
	return (page - 1) * consts.PostsPerPage, meta
}
