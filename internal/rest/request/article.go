package request

import (
	"time"

	"github.com/Guyuepp/blog-article-api/domain"
)

// Article is the create and update payload
type Article struct {
	Title       string     `json:"title" xml:"title" binding:"required,notblank,max=255"`
	Body        string     `json:"body" xml:"body" binding:"required,notblank"`
	Author      string     `json:"author" xml:"author" binding:"required,notblank,max=255"`
	PublishDate *time.Time `json:"publishDate" xml:"publishDate,omitempty"`
	IsPublished *bool      `json:"isPublished" xml:"isPublished" binding:"required"`
}

// ToDomain: Request -> Domain
func (r *Article) ToDomain() domain.Article {
	a := domain.Article{
		Title:  r.Title,
		Body:   r.Body,
		Author: r.Author,
	}
	if r.IsPublished != nil {
		a.IsPublished = *r.IsPublished
	}
	if r.PublishDate != nil {
		at := r.PublishDate.UTC()
		a.PublishDate = &at
	}
	return a
}
