package domain

import (
	"context"
	"time"
)

// MaxArticleFeedbackAttempts is how many times a user may give feedback on one article
const MaxArticleFeedbackAttempts = 3

type FeedbackStatus int8

const (
	FeedbackNone   FeedbackStatus = 0
	FeedbackLike   FeedbackStatus = 1
	FeedbackUnLike FeedbackStatus = 2
)

func (s FeedbackStatus) String() string {
	switch s {
	case FeedbackNone:
		return "None"
	case FeedbackLike:
		return "Like"
	case FeedbackUnLike:
		return "UnLike"
	default:
		return "Unknown"
	}
}

// ArticleFeedback is one user's feedback on one article
type ArticleFeedback struct {
	ID            int64
	ArticleID     int64
	UserID        int64
	Status        FeedbackStatus
	FeedbackCount int
	FeedbackDate  *time.Time
	Comments      *string
	CommentDate   *time.Time
}

// ArticleFeedbackRepository defines the contract for feedback persistence
type ArticleFeedbackRepository interface {
	// GetByArticleAndUser returns the feedback row of the pair, or nil when none exists.
	// Inside a transaction the row is locked until commit.
	GetByArticleAndUser(ctx context.Context, articleID, userID int64) (*ArticleFeedback, error)

	// Save creates the row when f.ID is zero and updates it otherwise.
	// saveNow=false stages the change in the unit of work carried by ctx.
	Save(ctx context.Context, f *ArticleFeedback, saveNow bool) error
}
