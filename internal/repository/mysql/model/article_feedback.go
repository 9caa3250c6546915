package model

import (
	"time"

	"github.com/Guyuepp/blog-article-api/domain"
)

type ArticleFeedback struct {
	ID            int64      `gorm:"primaryKey;autoIncrement"`
	ArticleID     int64      `gorm:"column:article_id;not null;uniqueIndex:idx_feedback_article_user"`
	UserID        int64      `gorm:"column:user_id;not null;uniqueIndex:idx_feedback_article_user"`
	Status        int8       `gorm:"type:tinyint;not null"`
	FeedbackCount int        `gorm:"not null"`
	FeedbackDate  *time.Time `gorm:"type:datetime"`
	Comments      *string    `gorm:"type:text"`
	CommentDate   *time.Time `gorm:"type:datetime"`

	// only used by the migrator to create the foreign keys
	Article *Article `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
	User    *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (ArticleFeedback) TableName() string {
	return "article_feedbacks"
}

func (ArticleFeedback) EntityName() string {
	return "ArticleFeedback"
}

func (f ArticleFeedback) PrimaryKey() int64 {
	return f.ID
}

func (f *ArticleFeedback) ToDomain() domain.ArticleFeedback {
	return domain.ArticleFeedback{
		ID:            f.ID,
		ArticleID:     f.ArticleID,
		UserID:        f.UserID,
		Status:        domain.FeedbackStatus(f.Status),
		FeedbackCount: f.FeedbackCount,
		FeedbackDate:  f.FeedbackDate,
		Comments:      f.Comments,
		CommentDate:   f.CommentDate,
	}
}

func NewArticleFeedbackFromDomain(f *domain.ArticleFeedback) *ArticleFeedback {
	return &ArticleFeedback{
		ID:            f.ID,
		ArticleID:     f.ArticleID,
		UserID:        f.UserID,
		Status:        int8(f.Status),
		FeedbackCount: f.FeedbackCount,
		FeedbackDate:  f.FeedbackDate,
		Comments:      f.Comments,
		CommentDate:   f.CommentDate,
	}
}
