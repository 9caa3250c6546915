package response

import (
	"encoding/xml"

	"github.com/Guyuepp/blog-article-api/domain"
)

// PagedList is the envelope of every paged listing
type PagedList[T any] struct {
	XMLName         xml.Name `json:"-" xml:"pagedList"`
	Items           []T      `json:"items" xml:"items>item"`
	PageNumber      int      `json:"pageNumber" xml:"pageNumber"`
	PageSize        int      `json:"pageSize" xml:"pageSize"`
	TotalCount      int64    `json:"totalCount" xml:"totalCount"`
	TotalPages      int      `json:"totalPages" xml:"totalPages"`
	HasPreviousPage bool     `json:"hasPreviousPage" xml:"hasPreviousPage"`
	HasNextPage     bool     `json:"hasNextPage" xml:"hasNextPage"`
}

func NewPagedList[T any](items []T, paging domain.Paging, total int64) PagedList[T] {
	totalPages := 0
	if total > 0 && paging.PageSize > 0 {
		totalPages = int((total + int64(paging.PageSize) - 1) / int64(paging.PageSize))
	}
	if items == nil {
		items = []T{}
	}
	return PagedList[T]{
		Items:           items,
		PageNumber:      paging.PageNumber,
		PageSize:        paging.PageSize,
		TotalCount:      total,
		TotalPages:      totalPages,
		HasPreviousPage: paging.PageNumber > 1,
		HasNextPage:     paging.PageNumber < totalPages,
	}
}
