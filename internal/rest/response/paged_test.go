package response

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/blog-article-api/domain"
)

func TestNewPagedList(t *testing.T) {
	cases := []struct {
		name      string
		paging    domain.Paging
		total     int64
		pages     int
		prev, nxt bool
	}{
		{"empty", domain.Paging{PageNumber: 1, PageSize: 10}, 0, 0, false, false},
		{"exact fit", domain.Paging{PageNumber: 1, PageSize: 10}, 20, 2, false, true},
		{"partial last page", domain.Paging{PageNumber: 3, PageSize: 10}, 21, 3, true, false},
		{"beyond last page", domain.Paging{PageNumber: 5, PageSize: 10}, 21, 3, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagedList[Article](nil, tc.paging, tc.total)
			assert.NotNil(t, p.Items)
			assert.Equal(t, tc.pages, p.TotalPages)
			assert.Equal(t, tc.prev, p.HasPreviousPage)
			assert.Equal(t, tc.nxt, p.HasNextPage)
		})
	}
}

func TestPagedListXML(t *testing.T) {
	items := []domain.Article{{ID: 7, Title: "t1"}}
	p := NewPagedList(MapSlice(items, NewArticleFromDomain), domain.Paging{PageNumber: 1, PageSize: 10}, 1)

	out, err := xml.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<pagedList><items><item><id>7</id><title>t1</title>")
	assert.Contains(t, string(out), "<totalPages>1</totalPages>")
}
