package request

import "github.com/Guyuepp/blog-article-api/domain"

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// Paging is bound from the query string
type Paging struct {
	PageNumber int    `form:"pageNumber,default=1" binding:"min=1"`
	PageSize   int    `form:"pageSize,default=10" binding:"min=1,max=50"`
	SortBy     string `form:"sortBy" binding:"omitempty,oneof=none recent likes"`
}

func (p *Paging) ToDomain() domain.Paging {
	return domain.Paging{PageNumber: p.PageNumber, PageSize: p.PageSize}
}

func (p *Paging) Sort() domain.SortBy {
	if p.SortBy == "" {
		return domain.SortByNone
	}
	return domain.SortBy(p.SortBy)
}

// MyStats narrows the stats listing to one author
type MyStats struct {
	Paging
	Author string `form:"author" binding:"required,notblank"`
}
