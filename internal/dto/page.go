package dto

import "job-catalog/internal/domain"

// PageQuery 是列表与搜索接口共用的分页参数。
type PageQuery struct {
	Skip  int `form:"skip,default=0" binding:"min=0"`
	Limit int `form:"limit,default=100" binding:"min=1,max=100"`
}

func (q PageQuery) Page() domain.Page {
	return domain.NewPage(q.Skip, q.Limit)
}
