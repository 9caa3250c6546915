package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/blog-article-api/domain"
)

type Article struct {
	ID            int64      `gorm:"primaryKey;autoIncrement"`
	Title         string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_articles_title"`
	Body          string     `gorm:"type:longtext;not null"`
	Author        string     `gorm:"type:varchar(255);not null;index"`
	PublishDate   *time.Time `gorm:"type:datetime"`
	IsPublished   bool       `gorm:"not null"`
	AddedByUserID int64      `gorm:"column:added_by_user_id;not null"`
	CreatedDate   time.Time  `gorm:"type:datetime;not null"`
	ModifiedDate  *time.Time `gorm:"type:datetime"`
}

func (Article) TableName() string {
	return "articles"
}

func (Article) EntityName() string {
	return "Article"
}

func (a Article) PrimaryKey() int64 {
	return a.ID
}

func (a *Article) SetCreated(at time.Time) {
	a.CreatedDate = at
}

func (a *Article) SetModified(at time.Time) {
	a.ModifiedDate = &at
}

// BeforeSave rejects a title already used by another article. It runs in the
// transaction of the insert or update.
func (a *Article) BeforeSave(tx *gorm.DB) error {
	var count int64
	err := tx.Session(&gorm.Session{NewDB: true}).
		Model(&Article{}).
		Where("title = ? AND id <> ?", a.Title, a.ID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return &domain.DuplicateTitleError{Title: a.Title}
	}
	return nil
}

func (a *Article) ToDomain() domain.Article {
	return domain.Article{
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

func NewArticleFromDomain(a *domain.Article) *Article {
	return &Article{
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

// ArticleStat is the scan target of the feedback rollup query
type ArticleStat struct {
	ID            int64
	Title         string
	Body          string
	Author        string
	PublishDate   *time.Time
	IsPublished   bool
	AddedByUserID int64
	CreatedDate   time.Time
	ModifiedDate  *time.Time
	LikeCount     int64
	UnLikeCount   int64
	NoneCount     int64
}

func (s *ArticleStat) ToDomain() domain.ArticleStat {
	return domain.ArticleStat{
		Article: domain.Article{
			ID:            s.ID,
			Title:         s.Title,
			Body:          s.Body,
			Author:        s.Author,
			PublishDate:   s.PublishDate,
			IsPublished:   s.IsPublished,
			AddedByUserID: s.AddedByUserID,
			CreatedDate:   s.CreatedDate,
			ModifiedDate:  s.ModifiedDate,
		},
		LikeCount:   s.LikeCount,
		UnLikeCount: s.UnLikeCount,
		NoneCount:   s.NoneCount,
	}
}

// ArticleMostLiked is the scan target of the most liked query
type ArticleMostLiked struct {
	ID              int64
	Title           string
	Body            string
	Author          string
	PublishDate     *time.Time
	IsPublished     bool
	AddedByUserID   int64
	AddedByUserName string
	FeedbackCount   int64
}

func (m *ArticleMostLiked) ToDomain() domain.ArticleMostLiked {
	return domain.ArticleMostLiked{
		Article: domain.Article{
			ID:            m.ID,
			Title:         m.Title,
			Body:          m.Body,
			Author:        m.Author,
			PublishDate:   m.PublishDate,
			IsPublished:   m.IsPublished,
			AddedByUserID: m.AddedByUserID,
		},
		AddedByUserName: m.AddedByUserName,
		Count:           m.FeedbackCount,
	}
}
