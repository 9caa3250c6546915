package response

import (
	"encoding/xml"
	"time"

	"github.com/Guyuepp/blog-article-api/domain"
)

type Article struct {
	ID            int64      `json:"id" xml:"id"`
	Title         string     `json:"title" xml:"title"`
	Body          string     `json:"body" xml:"body"`
	Author        string     `json:"author" xml:"author"`
	PublishDate   *time.Time `json:"publishDate" xml:"publishDate,omitempty"`
	IsPublished   bool       `json:"isPublished" xml:"isPublished"`
	AddedByUserID int64      `json:"addedByUserId" xml:"addedByUserId"`
	CreatedDate   time.Time  `json:"createdDate" xml:"createdDate"`
	ModifiedDate  *time.Time `json:"modifiedDate" xml:"modifiedDate,omitempty"`
}

// FromDomain: Domain -> Response
func NewArticleFromDomain(a *domain.Article) Article {
	return Article{
		ID:            a.ID,
		Title:         a.Title,
		Body:          a.Body,
		Author:        a.Author,
		PublishDate:   a.PublishDate,
		IsPublished:   a.IsPublished,
		AddedByUserID: a.AddedByUserID,
		CreatedDate:   a.CreatedDate,
		ModifiedDate:  a.ModifiedDate,
	}
}

type ArticleStat struct {
	ID          int64      `json:"id" xml:"id"`
	Title       string     `json:"title" xml:"title"`
	Body        string     `json:"body" xml:"body"`
	Author      string     `json:"author" xml:"author"`
	PublishDate *time.Time `json:"publishDate" xml:"publishDate,omitempty"`
	IsPublished bool       `json:"isPublished" xml:"isPublished"`
	LikeCount   int64      `json:"likeCount" xml:"likeCount"`
	UnLikeCount int64      `json:"unLikeCount" xml:"unLikeCount"`
	NoneCount   int64      `json:"noneCount" xml:"noneCount"`
}

func NewArticleStatFromDomain(s *domain.ArticleStat) ArticleStat {
	return ArticleStat{
		ID:          s.ID,
		Title:       s.Title,
		Body:        s.Body,
		Author:      s.Author,
		PublishDate: s.PublishDate,
		IsPublished: s.IsPublished,
		LikeCount:   s.LikeCount,
		UnLikeCount: s.UnLikeCount,
		NoneCount:   s.NoneCount,
	}
}

type ArticleMostLiked struct {
	XMLName         xml.Name   `json:"-" xml:"articleMostLiked"`
	ID              int64      `json:"id" xml:"id"`
	Title           string     `json:"title" xml:"title"`
	Body            string     `json:"body" xml:"body"`
	Author          string     `json:"author" xml:"author"`
	PublishDate     *time.Time `json:"publishDate" xml:"publishDate,omitempty"`
	AddedByUserID   int64      `json:"addedByUserId" xml:"addedByUserId"`
	AddedByUserName string     `json:"addedByUserName" xml:"addedByUserName"`
	IsPublished     bool       `json:"isPublished" xml:"isPublished"`
	Count           int64      `json:"count" xml:"count"`
}

func NewArticleMostLikedFromDomain(m *domain.ArticleMostLiked) ArticleMostLiked {
	return ArticleMostLiked{
		ID:              m.ID,
		Title:           m.Title,
		Body:            m.Body,
		Author:          m.Author,
		PublishDate:     m.PublishDate,
		AddedByUserID:   m.AddedByUserID,
		AddedByUserName: m.AddedByUserName,
		IsPublished:     m.IsPublished,
		Count:           m.Count,
	}
}

// MapSlice converts a slice of domain values with fn
func MapSlice[D, R any](in []D, fn func(*D) R) []R {
	out := make([]R, len(in))
	for i := range in {
		out[i] = fn(&in[i])
	}
	return out
}
